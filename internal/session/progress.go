package session

import (
	"log/slog"
	"slices"
)

// Scoring selects how a Drill counts correct exercises.
type Scoring int

const (
	// ScoreFirstTry counts an exercise correct only if it was never
	// evaluated wrong.
	ScoreFirstTry Scoring = iota
	// ScoreLatest counts an exercise correct if its latest evaluation was.
	ScoreLatest
)

// Drill is a single linear pass over exercises with no review pass.
// Evaluate may be called several times for the current exercise; Next
// moves on.
type Drill[Q, A any] struct {
	kind    string
	grade   Grader[Q, A]
	scoring Scoring
	logger  *slog.Logger

	phase     Phase
	questions []Q
	pointer   int
	results   map[int]bool
	answers   map[int]A
	mistakes  mistakeBook[A]
}

// NewDrill creates a drill in the setup phase. logger may be nil.
func NewDrill[Q, A any](kind string, grade Grader[Q, A], scoring Scoring, logger *slog.Logger) *Drill[Q, A] {
	d := &Drill[Q, A]{
		kind:    kind,
		grade:   grade,
		scoring: scoring,
		logger:  loggerOrDiscard(logger).With("kind", kind),
	}
	d.Reset()
	return d
}

// Start begins the drill. With no questions it goes straight to summary.
func (d *Drill[Q, A]) Start(questions []Q) {
	d.Reset()
	d.questions = slices.Clone(questions)
	if len(d.questions) == 0 {
		d.phase = PhaseSummary
		return
	}
	d.phase = PhaseQuiz
	d.logger.Debug("session started", "questions", len(d.questions))
}

// Evaluate grades answer for the current exercise without advancing.
func (d *Drill[Q, A]) Evaluate(answer A) bool {
	if d.phase != PhaseQuiz || d.pointer >= len(d.questions) {
		return false
	}
	correct := d.grade(d.questions[d.pointer], answer)
	d.answers[d.pointer] = answer
	d.results[d.pointer] = correct
	if !correct {
		d.mistakes.record(d.pointer, answer)
	}
	return correct
}

// Next moves to the following exercise, or to summary after the last one.
func (d *Drill[Q, A]) Next() Phase {
	if d.phase != PhaseQuiz {
		return d.phase
	}
	if d.pointer < len(d.questions)-1 {
		d.pointer++
		return d.phase
	}
	d.phase = PhaseSummary
	d.logger.Debug("session finished", "correct", d.CorrectCount(), "total", len(d.questions))
	return d.phase
}

// Reset returns the drill to setup and discards all state.
func (d *Drill[Q, A]) Reset() {
	d.phase = PhaseSetup
	d.questions = nil
	d.pointer = 0
	d.results = make(map[int]bool)
	d.answers = make(map[int]A)
	d.mistakes = newMistakeBook[A]()
}

// Kind returns the label given at construction.
func (d *Drill[Q, A]) Kind() string { return d.kind }

// Phase returns the current phase.
func (d *Drill[Q, A]) Phase() Phase { return d.phase }

// Scoring returns the scoring policy.
func (d *Drill[Q, A]) Scoring() Scoring { return d.scoring }

// Current returns the exercise being served.
func (d *Drill[Q, A]) Current() (Q, bool) {
	if d.phase != PhaseQuiz || d.pointer >= len(d.questions) {
		var zero Q
		return zero, false
	}
	return d.questions[d.pointer], true
}

// CurrentIndex returns the index being served, or -1.
func (d *Drill[Q, A]) CurrentIndex() int {
	if d.phase != PhaseQuiz {
		return -1
	}
	return d.pointer
}

// CurrentStep returns the 1-based position, or 0 when nothing is generated.
func (d *Drill[Q, A]) CurrentStep() int {
	if len(d.questions) == 0 {
		return 0
	}
	return d.pointer + 1
}

// TotalQuestions returns the number of generated exercises.
func (d *Drill[Q, A]) TotalQuestions() int { return len(d.questions) }

// CorrectCount applies the drill's scoring policy.
func (d *Drill[Q, A]) CorrectCount() int {
	if d.scoring == ScoreLatest {
		n := 0
		for _, ok := range d.results {
			if ok {
				n++
			}
		}
		return n
	}
	return correctCount(len(d.questions), d.mistakes.len())
}

// Result returns the latest evaluation of index, if any.
func (d *Drill[Q, A]) Result(index int) (correct, evaluated bool) {
	correct, evaluated = d.results[index]
	return correct, evaluated
}

// Answer returns the latest answer evaluated for index.
func (d *Drill[Q, A]) Answer(index int) (A, bool) {
	a, ok := d.answers[index]
	return a, ok
}

// MistakeIndices returns every index ever evaluated wrong, ascending.
func (d *Drill[Q, A]) MistakeIndices() []int { return d.mistakes.indices() }

// MistakeAnswer returns the first wrong answer recorded for index.
func (d *Drill[Q, A]) MistakeAnswer(index int) (A, bool) { return d.mistakes.answer(index) }

// Questions returns the generated exercises.
func (d *Drill[Q, A]) Questions() []Q { return slices.Clone(d.questions) }
