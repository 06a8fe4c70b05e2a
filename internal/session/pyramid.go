package session

import (
	"log/slog"

	"github.com/abhisek/mathlab/internal/problemgen"
)

// PyramidEntry is one cell of a pyramid being solved. Read-only cells are
// the given base; their Value is the revealed correct value.
type PyramidEntry struct {
	Value    *int
	Correct  int
	ReadOnly bool
}

// Filled reports whether the cell holds a value.
func (e PyramidEntry) Filled() bool { return e.Value != nil }

// PyramidExercise is a pyramid with the learner's entries. Entries[0] is the
// apex row.
type PyramidExercise struct {
	ID      string
	Entries [][]PyramidEntry
}

func newPyramidExercise(p problemgen.Pyramid) PyramidExercise {
	last := len(p.Rows) - 1
	entries := make([][]PyramidEntry, len(p.Rows))
	for r, row := range p.Rows {
		entries[r] = make([]PyramidEntry, len(row))
		for c, v := range row {
			entries[r][c] = PyramidEntry{Correct: v, ReadOnly: r == last}
			if r == last {
				entries[r][c].Value = intPtr(v)
			}
		}
	}
	return PyramidExercise{ID: p.ID, Entries: entries}
}

func intPtr(v int) *int { return &v }

// PyramidSession walks through pyramids one at a time. Checking a pyramid
// clears the wrong cells and keeps the right ones, so the learner retries
// only what was wrong on the same pyramid. A pyramid with any failed check
// is not counted correct.
type PyramidSession struct {
	rng    problemgen.Rand
	logger *slog.Logger

	settings  problemgen.PyramidSettings
	phase     Phase
	exercises []PyramidExercise
	pointer   int
	mistakes  map[int]bool
}

// NewPyramidSession creates a session in the setup phase.
func NewPyramidSession(rng problemgen.Rand, logger *slog.Logger) *PyramidSession {
	s := &PyramidSession{
		rng:    rng,
		logger: loggerOrDiscard(logger).With("kind", "pyramid"),
	}
	s.Reset()
	return s
}

// Start generates pyramids and begins the quiz. Max is raised to at least
// the smallest possible apex.
func (s *PyramidSession) Start(settings problemgen.PyramidSettings) {
	if settings.Max < problemgen.PyramidMinApex {
		settings.Max = problemgen.PyramidMinApex
	}
	s.settings = settings
	s.exercises = nil
	for _, p := range problemgen.Pyramids(settings, s.rng) {
		s.exercises = append(s.exercises, newPyramidExercise(p))
	}
	s.pointer = 0
	s.mistakes = make(map[int]bool)
	s.phase = PhaseQuiz
	if len(s.exercises) == 0 {
		s.phase = PhaseSummary
	}
	s.logger.Debug("session started", "questions", len(s.exercises), "max", settings.Max)
}

// UpdateEntry sets the learner's value for a cell. nil clears the cell.
// Read-only and out-of-range cells are ignored.
func (s *PyramidSession) UpdateEntry(row, col int, value *int) {
	entries := s.currentEntries()
	if entries == nil || row < 0 || row >= len(entries) {
		return
	}
	if col < 0 || col >= len(entries[row]) {
		return
	}
	e := &entries[row][col]
	if e.ReadOnly {
		return
	}
	if value == nil {
		e.Value = nil
		return
	}
	e.Value = intPtr(*value)
}

// CheckCurrent grades every editable cell of the current pyramid. Right
// cells are snapped to the correct value and wrong ones cleared.
func (s *PyramidSession) CheckCurrent() bool {
	entries := s.currentEntries()
	if len(entries) == 0 {
		return false
	}
	allCorrect := true
	for r := 0; r < len(entries)-1; r++ {
		for c := range entries[r] {
			e := &entries[r][c]
			if e.Value != nil && *e.Value == e.Correct {
				e.Value = intPtr(e.Correct)
				continue
			}
			e.Value = nil
			allCorrect = false
		}
	}
	if !allCorrect {
		s.mistakes[s.pointer] = true
	}
	return allCorrect
}

// Next moves to the following pyramid, or to summary after the last one.
func (s *PyramidSession) Next() Phase {
	if s.phase != PhaseQuiz {
		return s.phase
	}
	if s.pointer < len(s.exercises)-1 {
		s.pointer++
		return s.phase
	}
	s.phase = PhaseSummary
	s.logger.Debug("session finished", "correct", s.CorrectCount(), "total", len(s.exercises))
	return s.phase
}

// Reset returns the session to setup and discards all state.
func (s *PyramidSession) Reset() {
	s.phase = PhaseSetup
	s.settings = problemgen.PyramidSettings{}
	s.exercises = nil
	s.pointer = 0
	s.mistakes = make(map[int]bool)
}

func (s *PyramidSession) currentEntries() [][]PyramidEntry {
	if s.phase != PhaseQuiz || s.pointer >= len(s.exercises) {
		return nil
	}
	return s.exercises[s.pointer].Entries
}

// Phase returns the current phase.
func (s *PyramidSession) Phase() Phase { return s.phase }

// Settings returns the settings the session was started with.
func (s *PyramidSession) Settings() problemgen.PyramidSettings { return s.settings }

// Current returns the pyramid being solved.
func (s *PyramidSession) Current() (PyramidExercise, bool) {
	if s.currentEntries() == nil {
		return PyramidExercise{}, false
	}
	return s.exercises[s.pointer], true
}

// CurrentEntries returns the cells of the current pyramid. The slice is
// live: UpdateEntry and CheckCurrent change it.
func (s *PyramidSession) CurrentEntries() [][]PyramidEntry { return s.currentEntries() }

// CurrentIndex returns the index being served, or -1.
func (s *PyramidSession) CurrentIndex() int {
	if s.phase != PhaseQuiz {
		return -1
	}
	return s.pointer
}

// CurrentStep returns the 1-based position, or 0 when nothing is generated.
func (s *PyramidSession) CurrentStep() int {
	if len(s.exercises) == 0 {
		return 0
	}
	return s.pointer + 1
}

// TotalExercises returns the number of pyramids.
func (s *PyramidSession) TotalExercises() int { return len(s.exercises) }

// CorrectCount returns the number of pyramids never checked wrong.
func (s *PyramidSession) CorrectCount() int {
	return correctCount(len(s.exercises), len(s.mistakes))
}

// IsMistake reports whether pyramid index ever failed a check.
func (s *PyramidSession) IsMistake(index int) bool { return s.mistakes[index] }
