package session

import (
	"log/slog"
	"slices"
)

// Phase represents the current phase of a session.
type Phase int

const (
	PhaseSetup   Phase = iota // Configuring, nothing generated yet
	PhaseQuiz                 // First pass over every exercise
	PhaseReview               // Second pass over the exercises missed in the quiz
	PhaseSummary              // Finished; results are read-only
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseQuiz:
		return "quiz"
	case PhaseReview:
		return "review"
	case PhaseSummary:
		return "summary"
	}
	return "unknown"
}

// Active reports whether exercises are being served.
func (p Phase) Active() bool {
	return p == PhaseQuiz || p == PhaseReview
}

// Grader reports whether answer is correct for q.
type Grader[Q, A any] func(q Q, answer A) bool

// mistakeBook records every exercise index ever answered wrong, with the
// first wrong answer given for it. Entries are never removed by a later
// correct answer.
type mistakeBook[A any] struct {
	answers map[int]A
}

func newMistakeBook[A any]() mistakeBook[A] {
	return mistakeBook[A]{answers: make(map[int]A)}
}

// record adds index unless it is already present.
func (m mistakeBook[A]) record(index int, answer A) {
	if _, ok := m.answers[index]; ok {
		return
	}
	m.answers[index] = answer
}

func (m mistakeBook[A]) has(index int) bool {
	_, ok := m.answers[index]
	return ok
}

func (m mistakeBook[A]) answer(index int) (A, bool) {
	a, ok := m.answers[index]
	return a, ok
}

func (m mistakeBook[A]) len() int {
	return len(m.answers)
}

// indices returns the recorded indices in ascending order.
func (m mistakeBook[A]) indices() []int {
	out := make([]int, 0, len(m.answers))
	for i := range m.answers {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// correctCount is total minus mistakes, floored at zero.
func correctCount(total, mistakes int) int {
	if c := total - mistakes; c > 0 {
		return c
	}
	return 0
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
