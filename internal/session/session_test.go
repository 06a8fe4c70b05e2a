package session

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []problemgen.Question {
	return []problemgen.Question{
		{ID: "q0", A: 1, B: 1, Op: problemgen.OpAdd, Correct: 2},
		{ID: "q1", A: 5, B: 2, Op: problemgen.OpSub, Correct: 3},
		{ID: "q2", A: 2, B: 2, Op: problemgen.OpAdd, Correct: 4},
		{ID: "q3", A: 9, B: 4, Op: problemgen.OpSub, Correct: 5},
	}
}

func testEngine() *Engine[problemgen.Question, int] {
	e := NewEngine("test", gradeQuestion, nil)
	e.Start(testQuestions())
	return e
}

func TestEngine_StartInitializesQuiz(t *testing.T) {
	e := testEngine()

	if e.Phase() != PhaseQuiz {
		t.Fatalf("Phase = %s, want quiz", e.Phase())
	}
	if got := e.Order(); len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Errorf("Order = %v, want identity", got)
	}
	if e.Pointer() != 0 || e.CurrentStep() != 1 {
		t.Errorf("Pointer = %d, CurrentStep = %d", e.Pointer(), e.CurrentStep())
	}
	if e.Attempts() != 1 {
		t.Errorf("Attempts = %d, want 1", e.Attempts())
	}
	q, ok := e.Current()
	if !ok || q.ID != "q0" {
		t.Errorf("Current = %v, %v", q, ok)
	}
}

func TestEngine_AllCorrectGoesToSummary(t *testing.T) {
	e := testEngine()
	for _, q := range testQuestions() {
		if !e.Submit(q.Correct) {
			t.Fatalf("expected %s to be graded correct", q.ID)
		}
	}

	if e.Phase() != PhaseSummary {
		t.Fatalf("Phase = %s, want summary", e.Phase())
	}
	if e.LastRunWasReview() {
		t.Error("LastRunWasReview = true, want false")
	}
	if e.CorrectCount() != 4 || e.Attempts() != 1 {
		t.Errorf("CorrectCount = %d, Attempts = %d", e.CorrectCount(), e.Attempts())
	}
	if len(e.Order()) != 0 || e.CurrentStep() != 0 {
		t.Errorf("expected no active pass, got order %v", e.Order())
	}
}

func TestEngine_AllWrongStartsReviewThenSummary(t *testing.T) {
	e := testEngine()
	for range testQuestions() {
		e.Submit(-1)
	}

	require.Equal(t, PhaseReview, e.Phase())
	assert.Equal(t, []int{0, 1, 2, 3}, e.Order())
	assert.Equal(t, 2, e.Attempts())
	assert.Equal(t, 0, e.Pointer())

	for _, q := range testQuestions() {
		require.True(t, e.Submit(q.Correct))
	}

	assert.Equal(t, PhaseSummary, e.Phase())
	assert.True(t, e.LastRunWasReview())
	assert.Equal(t, 0, e.CorrectCount())
	assert.Equal(t, []int{0, 1, 2, 3}, e.MistakeIndices())
}

func TestEngine_ReviewKeepsOriginalRelativeOrder(t *testing.T) {
	e := testEngine()
	e.Submit(2)  // q0 right
	e.Submit(0)  // q1 wrong
	e.Submit(4)  // q2 right
	e.Submit(99) // q3 wrong

	require.Equal(t, PhaseReview, e.Phase())
	assert.Equal(t, []int{1, 3}, e.Order())
	assert.Equal(t, []int{1, 3}, e.WrongQuestions())
	assert.Equal(t, 2, e.TotalInRun())
	assert.Equal(t, 1, e.CurrentIndex())
}

func TestEngine_MistakeSurvivesCorrectReview(t *testing.T) {
	e := testEngine()
	e.Submit(2)
	e.Submit(7) // q1 wrong
	e.Submit(4)
	e.Submit(5)

	require.Equal(t, PhaseReview, e.Phase())
	require.True(t, e.Submit(3))
	require.Equal(t, PhaseSummary, e.Phase())

	got, ok := e.Answer(1)
	require.True(t, ok)
	assert.Equal(t, 3, got, "stored answer is the corrected value")

	assert.Equal(t, []int{1}, e.MistakeIndices())
	assert.Equal(t, e.TotalQuestions()-len(e.MistakeIndices()), e.CorrectCount())
	assert.Equal(t, 3, e.CorrectCount())
}

func TestEngine_ReviewBlocksOnWrongAnswer(t *testing.T) {
	e := testEngine()
	e.Submit(0) // q0 wrong
	e.Submit(3)
	e.Submit(4)
	e.Submit(5)
	require.Equal(t, PhaseReview, e.Phase())

	if e.Submit(1) {
		t.Fatal("wrong review answer graded correct")
	}
	if e.Pointer() != 0 || e.CurrentIndex() != 0 {
		t.Errorf("pointer moved to %d", e.Pointer())
	}
	if !e.ReviewError() {
		t.Error("ReviewError = false, want true")
	}
	if r, ok := e.ReviewResponse(0); !ok || r != 1 {
		t.Errorf("ReviewResponse(0) = %d, %v", r, ok)
	}
	if e.Phase() != PhaseReview || e.Attempts() != 2 {
		t.Errorf("Phase = %s, Attempts = %d; no further escalation expected", e.Phase(), e.Attempts())
	}

	if !e.Submit(2) {
		t.Fatal("correct review answer graded wrong")
	}
	if e.ReviewError() {
		t.Error("ReviewError should clear on correct submission")
	}
	if e.Phase() != PhaseSummary {
		t.Errorf("Phase = %s, want summary", e.Phase())
	}
}

func TestEngine_FirstWrongAnswerWins(t *testing.T) {
	e := testEngine()
	e.Submit(10) // q0 wrong
	e.Submit(3)
	e.Submit(4)
	e.Submit(5)

	e.Submit(11) // wrong again during review
	e.Submit(12)

	got, ok := e.MistakeAnswer(0)
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestEngine_ClearReviewError(t *testing.T) {
	e := testEngine()
	for range 4 {
		e.Submit(-1)
	}
	e.Submit(-1)
	require.True(t, e.ReviewError())

	e.ClearReviewError()
	assert.False(t, e.ReviewError())
	assert.Equal(t, PhaseReview, e.Phase())
}

func TestEngine_ResetEmptiesEverything(t *testing.T) {
	e := testEngine()
	for range 4 {
		e.Submit(-1)
	}
	for _, q := range testQuestions() {
		e.Submit(q.Correct)
	}
	require.Equal(t, PhaseSummary, e.Phase())

	e.Reset()

	assert.Equal(t, PhaseSetup, e.Phase())
	assert.Empty(t, e.Questions())
	assert.Empty(t, e.Order())
	assert.Empty(t, e.MistakeIndices())
	assert.Equal(t, 0, e.Attempts())
	assert.False(t, e.LastRunWasReview())
	_, ok := e.Answer(0)
	assert.False(t, ok)
}

func TestEngine_SubmitOutsideActivePhaseIsNoop(t *testing.T) {
	e := NewEngine("test", gradeQuestion, nil)
	if e.Submit(1) {
		t.Error("Submit in setup returned true")
	}
	if e.Phase() != PhaseSetup {
		t.Errorf("Phase = %s, want setup", e.Phase())
	}

	e.Start(testQuestions())
	for _, q := range testQuestions() {
		e.Submit(q.Correct)
	}
	before := e.CorrectCount()
	e.Submit(-1)
	if e.Phase() != PhaseSummary || e.CorrectCount() != before {
		t.Error("Submit in summary changed state")
	}
}

func TestEngine_StartWithoutQuestions(t *testing.T) {
	e := NewEngine("test", gradeQuestion, nil)
	e.Start(nil)

	assert.Equal(t, PhaseSummary, e.Phase())
	assert.Equal(t, 0, e.CorrectCount())
	_, ok := e.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, e.CurrentIndex())
}

func TestEngine_StartCopiesQuestions(t *testing.T) {
	qs := testQuestions()
	e := NewEngine("test", gradeQuestion, nil)
	e.Start(qs)
	qs[0].Correct = 100

	assert.True(t, e.Submit(2))
}

func TestEngine_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine("arith", gradeQuestion, logger)
	e.Start(testQuestions()[:1])
	e.Submit(0)
	e.Submit(2)

	out := buf.String()
	for _, msg := range []string{"session started", "pass finished", "review started", "session finished", "kind=arith"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestArithmeticSession_SettingsAreCopied(t *testing.T) {
	s := NewArithmeticSession(problemgen.NewRand(1), nil)
	settings := problemgen.ArithmeticSettings{Mode: problemgen.ModeAdd, Count: 3, Max: 10}
	s.StartSession(settings)
	settings.Count = 50

	assert.Equal(t, 3, s.Settings().Count)
	assert.Equal(t, 3, s.TotalQuestions())
	assert.Equal(t, "Addition", s.ModeLabel())

	for {
		q, ok := s.Current()
		if !ok {
			break
		}
		s.SubmitAnswer(q.Correct)
	}
	assert.Equal(t, PhaseSummary, s.Phase())
	assert.Equal(t, 3, s.CorrectCount())

	s.ResetSession()
	assert.Equal(t, PhaseSetup, s.Phase())
	assert.Equal(t, problemgen.ArithmeticSettings{}, s.Settings())
}

func TestMultiplicationSession_ReviewFlow(t *testing.T) {
	s := NewMultiplicationSession(problemgen.NewRand(7), nil)
	s.StartSession(problemgen.MultiplicationSettings{Mode: problemgen.ModeMulMix, Count: 5, Max: 30})
	require.Equal(t, 5, s.TotalQuestions())

	for range 5 {
		s.SubmitAnswer(-1)
	}
	require.Equal(t, PhaseReview, s.Phase())
	require.Equal(t, 5, s.TotalInRun())

	for {
		q, ok := s.Current()
		if !ok {
			break
		}
		s.SubmitAnswer(q.Correct)
	}
	assert.Equal(t, PhaseSummary, s.Phase())
	assert.True(t, s.LastRunWasReview())
	assert.Equal(t, 0, s.CorrectCount())
}

type fakeBank struct{}

func (fakeBank) WordProblems() []content.WordProblem {
	return []content.WordProblem{
		{ID: "apples", Text: "Apples.", A: 3, B: 4, Op: "+", Result: 7},
	}
}

func (fakeBank) Words(length int) []string {
	if length != 3 {
		return nil
	}
	return []string{"cat", "dog"}
}

func TestWordProblemSession_RequiresEveryPart(t *testing.T) {
	bank := fakeBank{}
	s := NewWordProblemSession(bank, problemgen.NewRand(3), nil)
	s.StartSession(problemgen.WordProblemSettings{Count: 2})
	require.Equal(t, 2, s.TotalQuestions())

	p, ok := s.Current()
	require.True(t, ok)
	wrongOp := problemgen.WordResponse{A: p.A, B: p.B, Result: p.Result, Op: problemgen.OpDiv}
	assert.False(t, s.SubmitResponse(wrongOp))
	assert.Equal(t, PhaseQuiz, s.Phase())

	p, _ = s.Current()
	assert.True(t, s.SubmitResponse(problemgen.WordResponse{A: p.A, B: p.B, Op: p.Op, Result: p.Result}))
	require.Equal(t, PhaseReview, s.Phase())
	assert.Equal(t, []int{0}, s.Order())
}
