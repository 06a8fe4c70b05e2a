package session

import (
	"log/slog"
	"slices"
)

// Engine runs a quiz over a fixed list of exercises, followed by at most one
// review pass restricted to the exercises missed in the quiz.
//
// A wrong answer in the quiz is recorded and the quiz moves on. A wrong
// answer in the review sets ReviewError and keeps the same exercise current
// until it is answered correctly. An exercise missed in either pass stays
// counted as a mistake, so CorrectCount reflects first-attempt accuracy.
//
// Calls that do not fit the current phase are silently ignored.
// An Engine is not safe for concurrent use.
type Engine[Q, A any] struct {
	kind   string
	grade  Grader[Q, A]
	logger *slog.Logger

	phase     Phase
	questions []Q
	order     []int
	pointer   int

	answers         map[int]A
	reviewResponses map[int]A
	mistakes        mistakeBook[A]
	wrong           []int

	reviewError      bool
	attempts         int
	lastRunWasReview bool
}

// NewEngine creates an engine in the setup phase. kind labels log records;
// logger may be nil.
func NewEngine[Q, A any](kind string, grade Grader[Q, A], logger *slog.Logger) *Engine[Q, A] {
	e := &Engine[Q, A]{
		kind:   kind,
		grade:  grade,
		logger: loggerOrDiscard(logger).With("kind", kind),
	}
	e.Reset()
	return e
}

// Start begins the quiz over questions in their given order. Any previous
// run is discarded. With no questions the engine goes straight to summary.
func (e *Engine[Q, A]) Start(questions []Q) {
	e.Reset()
	e.questions = slices.Clone(questions)
	e.attempts = 1
	if len(e.questions) == 0 {
		e.phase = PhaseSummary
		e.logger.Debug("session started without questions")
		return
	}
	e.order = make([]int, len(e.questions))
	for i := range e.order {
		e.order[i] = i
	}
	e.phase = PhaseQuiz
	e.logger.Debug("session started", "questions", len(e.questions))
}

// Submit grades answer against the current exercise and reports whether it
// was correct. Outside the quiz and review phases it does nothing and
// returns false.
func (e *Engine[Q, A]) Submit(answer A) bool {
	idx, ok := e.currentIndex()
	if !ok {
		return false
	}
	correct := e.grade(e.questions[idx], answer)

	switch e.phase {
	case PhaseQuiz:
		e.answers[idx] = answer
		if !correct {
			e.mistakes.record(idx, answer)
		}
		e.reviewError = false
		e.advance()

	case PhaseReview:
		e.reviewResponses[idx] = answer
		if !correct {
			e.mistakes.record(idx, answer)
			e.reviewError = true
			return false
		}
		e.answers[idx] = answer
		e.reviewError = false
		e.advance()
	}
	return correct
}

func (e *Engine[Q, A]) advance() {
	if e.pointer < len(e.order)-1 {
		e.pointer++
		return
	}
	e.finishRun()
}

// finishRun closes the current pass. Wrong indices are recomputed over every
// exercise, not only the ones served in this pass.
func (e *Engine[Q, A]) finishRun() {
	wasReview := e.phase == PhaseReview

	e.order = nil
	e.pointer = 0
	e.reviewResponses = make(map[int]A)
	e.wrong = e.wrong[:0]
	for i, q := range e.questions {
		a, answered := e.answers[i]
		if !answered {
			e.wrong = append(e.wrong, i)
			continue
		}
		if !e.grade(q, a) {
			e.wrong = append(e.wrong, i)
			e.mistakes.record(i, a)
		}
	}
	e.reviewError = false

	e.logger.Debug("pass finished", "attempts", e.attempts, "wrong", len(e.wrong), "review", wasReview)

	if !wasReview && len(e.wrong) > 0 {
		e.beginRetry()
		return
	}
	e.phase = PhaseSummary
	e.lastRunWasReview = wasReview
	e.logger.Debug("session finished",
		"attempts", e.attempts,
		"correct", e.CorrectCount(),
		"total", len(e.questions))
}

func (e *Engine[Q, A]) beginRetry() {
	e.order = slices.Clone(e.wrong)
	e.pointer = 0
	e.phase = PhaseReview
	e.attempts++
	e.reviewError = false
	e.logger.Debug("review started", "attempts", e.attempts, "wrong", len(e.order))
}

// Reset returns the engine to setup and discards all state.
func (e *Engine[Q, A]) Reset() {
	e.phase = PhaseSetup
	e.questions = nil
	e.order = nil
	e.pointer = 0
	e.answers = make(map[int]A)
	e.reviewResponses = make(map[int]A)
	e.mistakes = newMistakeBook[A]()
	e.wrong = nil
	e.reviewError = false
	e.attempts = 0
	e.lastRunWasReview = false
}

// ClearReviewError dismisses the "try again" signal without submitting.
func (e *Engine[Q, A]) ClearReviewError() {
	e.reviewError = false
}

func (e *Engine[Q, A]) currentIndex() (int, bool) {
	if !e.phase.Active() || e.pointer < 0 || e.pointer >= len(e.order) {
		return 0, false
	}
	return e.order[e.pointer], true
}

// Kind returns the label given at construction.
func (e *Engine[Q, A]) Kind() string { return e.kind }

// Phase returns the current phase.
func (e *Engine[Q, A]) Phase() Phase { return e.phase }

// Current returns the exercise being served.
func (e *Engine[Q, A]) Current() (Q, bool) {
	idx, ok := e.currentIndex()
	if !ok {
		var zero Q
		return zero, false
	}
	return e.questions[idx], true
}

// CurrentIndex returns the question index being served, or -1.
func (e *Engine[Q, A]) CurrentIndex() int {
	idx, ok := e.currentIndex()
	if !ok {
		return -1
	}
	return idx
}

// TotalInRun returns the number of exercises in the active pass.
func (e *Engine[Q, A]) TotalInRun() int { return len(e.order) }

// CurrentStep returns the 1-based position in the active pass, or 0.
func (e *Engine[Q, A]) CurrentStep() int {
	if _, ok := e.currentIndex(); !ok {
		return 0
	}
	return e.pointer + 1
}

// TotalQuestions returns the number of generated exercises.
func (e *Engine[Q, A]) TotalQuestions() int { return len(e.questions) }

// CorrectCount is TotalQuestions minus the number of exercises ever missed.
func (e *Engine[Q, A]) CorrectCount() int {
	return correctCount(len(e.questions), e.mistakes.len())
}

// WrongQuestions returns the indices found wrong when the last pass ended.
func (e *Engine[Q, A]) WrongQuestions() []int { return slices.Clone(e.wrong) }

// MistakeIndices returns every index ever answered wrong, ascending.
func (e *Engine[Q, A]) MistakeIndices() []int { return e.mistakes.indices() }

// IsMistake reports whether index was ever answered wrong.
func (e *Engine[Q, A]) IsMistake(index int) bool { return e.mistakes.has(index) }

// MistakeAnswer returns the first wrong answer recorded for index.
func (e *Engine[Q, A]) MistakeAnswer(index int) (A, bool) { return e.mistakes.answer(index) }

// Answer returns the stored answer for index: the last quiz submission, or
// the correct review submission that replaced it.
func (e *Engine[Q, A]) Answer(index int) (A, bool) {
	a, ok := e.answers[index]
	return a, ok
}

// ReviewResponse returns the latest review submission for index in the
// active review pass.
func (e *Engine[Q, A]) ReviewResponse(index int) (A, bool) {
	a, ok := e.reviewResponses[index]
	return a, ok
}

// Attempts returns the number of passes started.
func (e *Engine[Q, A]) Attempts() int { return e.attempts }

// ReviewError reports whether the last review submission was wrong.
func (e *Engine[Q, A]) ReviewError() bool { return e.reviewError }

// LastRunWasReview reports whether the session ended on a review pass.
func (e *Engine[Q, A]) LastRunWasReview() bool { return e.lastRunWasReview }

// Order returns the question indices of the active pass.
func (e *Engine[Q, A]) Order() []int { return slices.Clone(e.order) }

// Pointer returns the position within Order.
func (e *Engine[Q, A]) Pointer() int { return e.pointer }

// Questions returns the generated exercises.
func (e *Engine[Q, A]) Questions() []Q { return slices.Clone(e.questions) }
