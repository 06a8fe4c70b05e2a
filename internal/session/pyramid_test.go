package session

import (
	"testing"

	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startPyramids(t *testing.T, count int) *PyramidSession {
	t.Helper()
	s := NewPyramidSession(problemgen.NewRand(21), nil)
	s.Start(problemgen.PyramidSettings{Count: count, Max: 3})
	require.Equal(t, PhaseQuiz, s.Phase())
	return s
}

func fillCorrect(s *PyramidSession) {
	entries := s.CurrentEntries()
	for r := 0; r < len(entries)-1; r++ {
		for c := range entries[r] {
			v := entries[r][c].Correct
			s.UpdateEntry(r, c, &v)
		}
	}
}

func TestPyramidSession_StartRaisesMax(t *testing.T) {
	s := startPyramids(t, 2)
	assert.Equal(t, problemgen.PyramidMinApex, s.Settings().Max)
	assert.Equal(t, 2, s.TotalExercises())
	assert.Equal(t, 1, s.CurrentStep())

	entries := s.CurrentEntries()
	require.Len(t, entries, problemgen.PyramidBaseWidth)
	for _, e := range entries[len(entries)-1] {
		assert.True(t, e.ReadOnly)
		require.NotNil(t, e.Value)
		assert.Equal(t, e.Correct, *e.Value)
	}
	for _, e := range entries[0] {
		assert.False(t, e.ReadOnly)
		assert.Nil(t, e.Value)
	}
}

func TestPyramidSession_UpdateEntryIgnoresReadOnlyAndOutOfRange(t *testing.T) {
	s := startPyramids(t, 1)
	base := len(s.CurrentEntries()) - 1
	before := *s.CurrentEntries()[base][0].Value

	v := before + 10
	s.UpdateEntry(base, 0, &v)
	s.UpdateEntry(-1, 0, &v)
	s.UpdateEntry(0, 5, &v)
	s.UpdateEntry(9, 0, &v)

	assert.Equal(t, before, *s.CurrentEntries()[base][0].Value)
	assert.Nil(t, s.CurrentEntries()[0][0].Value)
}

func TestPyramidSession_CheckClearsOnlyWrongCells(t *testing.T) {
	s := startPyramids(t, 1)
	fillCorrect(s)

	wrong := s.CurrentEntries()[1][0].Correct + 1
	s.UpdateEntry(1, 0, &wrong)

	assert.False(t, s.CheckCurrent())
	entries := s.CurrentEntries()
	assert.Nil(t, entries[1][0].Value, "wrong cell cleared")
	require.NotNil(t, entries[1][1].Value)
	assert.Equal(t, entries[1][1].Correct, *entries[1][1].Value, "right cell kept")
	require.NotNil(t, entries[0][0].Value)

	fix := entries[1][0].Correct
	s.UpdateEntry(1, 0, &fix)
	assert.True(t, s.CheckCurrent())

	assert.Equal(t, PhaseSummary, s.Next())
	assert.Equal(t, 0, s.CorrectCount(), "a failed check still counts as a mistake")
	assert.True(t, s.IsMistake(0))
}

func TestPyramidSession_AllCorrect(t *testing.T) {
	s := startPyramids(t, 3)
	for s.Phase() == PhaseQuiz {
		fillCorrect(s)
		require.True(t, s.CheckCurrent())
		s.Next()
	}
	assert.Equal(t, 3, s.CorrectCount())

	sum := PyramidSummary("Pyramids", s)
	assert.Equal(t, 3, sum.Total)
	assert.Empty(t, sum.Mistakes)
}

func TestPyramidSession_ClearEntryAndReset(t *testing.T) {
	s := startPyramids(t, 1)
	v := 5
	s.UpdateEntry(0, 0, &v)
	require.NotNil(t, s.CurrentEntries()[0][0].Value)
	s.UpdateEntry(0, 0, nil)
	assert.Nil(t, s.CurrentEntries()[0][0].Value)

	s.Reset()
	assert.Equal(t, PhaseSetup, s.Phase())
	assert.Equal(t, 0, s.TotalExercises())
	assert.Nil(t, s.CurrentEntries())
	assert.False(t, s.CheckCurrent())
}
