package practice

import (
	"strconv"

	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/abhisek/mathlab/internal/session"
)

// Prompt is what to show the learner for the current exercise.
type Prompt struct {
	Kind  Kind
	Title string
	// Step is 1-based within the active pass; Total is the pass length.
	Step  int
	Total int
	// Review is true while re-asking missed exercises.
	Review bool
	// Retry is true when the last answer to this exercise was wrong and it
	// must be answered again.
	Retry bool
	Text  string
	// Hint describes the expected input format.
	Hint string
	// Choices lists the accepted inputs when the answer is picked from a
	// fixed set. Empty for free-form answers.
	Choices []string
}

// Feedback is the outcome of one submission.
type Feedback struct {
	Correct bool
	Message string
	// Advanced is true when the submission moved to another exercise.
	Advanced bool
	// ReviewStarted is true when the submission ended the quiz and began a
	// review of the missed exercises.
	ReviewStarted bool
}

// Exercise is one exercise session driven by text input.
type Exercise interface {
	Kind() Kind
	// Start generates a fresh set of exercises from the settings.
	Start()
	// Prompt describes the current exercise. ok is false when none is showing.
	Prompt() (p Prompt, ok bool)
	// Submit parses and grades input. Parse failures return ErrInvalidInput
	// and change nothing.
	Submit(input string) (Feedback, error)
	Done() bool
	Summary() session.Summary
	Reset()
}

const (
	msgCorrect  = "Correct!"
	msgTryAgain = "Not quite. Try again."
	msgReview   = "Now let's go over the ones you missed."
)

// engineExercise adapts a quiz/review session.
type engineExercise[Q, A any] struct {
	kind   Kind
	title  func() string
	hint   string
	engine *session.Engine[Q, A]
	start  func()
	reset  func()
	parse  func(string) (A, error)
	render func(Q) string
	desc   session.Describer[Q, A]
}

func (x *engineExercise[Q, A]) Kind() Kind { return x.kind }
func (x *engineExercise[Q, A]) Start()     { x.start() }
func (x *engineExercise[Q, A]) Reset()     { x.reset() }
func (x *engineExercise[Q, A]) Done() bool { return x.engine.Phase() == session.PhaseSummary }

func (x *engineExercise[Q, A]) Prompt() (Prompt, bool) {
	q, ok := x.engine.Current()
	if !ok {
		return Prompt{}, false
	}
	return Prompt{
		Kind:   x.kind,
		Title:  x.title(),
		Step:   x.engine.CurrentStep(),
		Total:  x.engine.TotalInRun(),
		Review: x.engine.Phase() == session.PhaseReview,
		Retry:  x.engine.ReviewError(),
		Text:   x.render(q),
		Hint:   x.hint,
	}, true
}

func (x *engineExercise[Q, A]) Submit(input string) (Feedback, error) {
	q, ok := x.engine.Current()
	if !ok {
		return Feedback{}, ErrNotActive
	}
	answer, err := x.parse(input)
	if err != nil {
		return Feedback{}, err
	}
	wasReview := x.engine.Phase() == session.PhaseReview

	fb := Feedback{Correct: x.engine.Submit(answer)}
	// The quiz always moves on; the review only past a right answer.
	fb.Advanced = fb.Correct || !wasReview

	switch {
	case fb.Correct:
		fb.Message = msgCorrect
	case wasReview:
		fb.Message = msgTryAgain
	default:
		fb.Message = "Not quite. The answer was " + x.desc.Expected(q) + "."
	}
	if !wasReview && x.engine.Phase() == session.PhaseReview {
		fb.ReviewStarted = true
		fb.Message += " " + msgReview
	}
	return fb, nil
}

func (x *engineExercise[Q, A]) Summary() session.Summary {
	return session.EngineSummary(x.title(), x.engine, x.desc)
}

// drillExercise adapts a linear drill. Under ScoreFirstTry a wrong answer
// keeps the exercise showing; under ScoreLatest the drill moves on.
type drillExercise[Q, A any] struct {
	kind    Kind
	title   string
	hint    string
	choices []string
	drill   *session.Drill[Q, A]
	start   func()
	parse   func(string) (A, error)
	render  func(Q) string
	desc    session.Describer[Q, A]
}

func (x *drillExercise[Q, A]) Kind() Kind { return x.kind }
func (x *drillExercise[Q, A]) Start()     { x.start() }
func (x *drillExercise[Q, A]) Reset()     { x.drill.Reset() }
func (x *drillExercise[Q, A]) Done() bool { return x.drill.Phase() == session.PhaseSummary }

func (x *drillExercise[Q, A]) Prompt() (Prompt, bool) {
	q, ok := x.drill.Current()
	if !ok {
		return Prompt{}, false
	}
	correct, evaluated := x.drill.Result(x.drill.CurrentIndex())
	return Prompt{
		Kind:    x.kind,
		Title:   x.title,
		Step:    x.drill.CurrentStep(),
		Total:   x.drill.TotalQuestions(),
		Retry:   evaluated && !correct,
		Text:    x.render(q),
		Hint:    x.hint,
		Choices: x.choices,
	}, true
}

func (x *drillExercise[Q, A]) Submit(input string) (Feedback, error) {
	q, ok := x.drill.Current()
	if !ok {
		return Feedback{}, ErrNotActive
	}
	answer, err := x.parse(input)
	if err != nil {
		return Feedback{}, err
	}
	fb := Feedback{Correct: x.drill.Evaluate(answer)}
	switch {
	case fb.Correct:
		fb.Message = msgCorrect
		x.drill.Next()
		fb.Advanced = true
	case x.drill.Scoring() == session.ScoreLatest:
		fb.Message = "Not quite. It was " + x.desc.Expected(q) + "."
		x.drill.Next()
		fb.Advanced = true
	default:
		fb.Message = msgTryAgain
	}
	return fb, nil
}

func (x *drillExercise[Q, A]) Summary() session.Summary {
	return session.DrillSummary(x.title, x.drill, x.desc)
}

// pyramidExercise adapts the pyramid session. Input fills the blank cells
// top to bottom, left to right.
type pyramidExercise struct {
	title    string
	pyramid  *session.PyramidSession
	settings problemgen.PyramidSettings
}

func (x *pyramidExercise) Kind() Kind { return KindPyramid }
func (x *pyramidExercise) Start()     { x.pyramid.Start(x.settings) }
func (x *pyramidExercise) Reset()     { x.pyramid.Reset() }
func (x *pyramidExercise) Done() bool { return x.pyramid.Phase() == session.PhaseSummary }

func (x *pyramidExercise) blanks() [][2]int {
	var out [][2]int
	entries := x.pyramid.CurrentEntries()
	for r, row := range entries {
		for c, e := range row {
			if !e.ReadOnly && e.Value == nil {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

func (x *pyramidExercise) Prompt() (Prompt, bool) {
	entries := x.pyramid.CurrentEntries()
	if entries == nil {
		return Prompt{}, false
	}
	n := len(x.blanks())
	return Prompt{
		Kind:  KindPyramid,
		Title: x.title,
		Step:  x.pyramid.CurrentStep(),
		Total: x.pyramid.TotalExercises(),
		Retry: x.pyramid.IsMistake(x.pyramid.CurrentIndex()),
		Text:  renderPyramid(entries),
		Hint:  pluralHint(n),
	}, true
}

func pluralHint(n int) string {
	if n == 1 {
		return "Each block is the sum of the two below it. Enter the missing number."
	}
	return "Each block is the sum of the two below it. Enter the " + strconv.Itoa(n) + " missing numbers, top row first."
}

func (x *pyramidExercise) Submit(input string) (Feedback, error) {
	if x.pyramid.CurrentEntries() == nil {
		return Feedback{}, ErrNotActive
	}
	blanks := x.blanks()
	values, err := parseInts(input, len(blanks))
	if err != nil {
		return Feedback{}, err
	}
	for i, cell := range blanks {
		x.pyramid.UpdateEntry(cell[0], cell[1], &values[i])
	}
	if !x.pyramid.CheckCurrent() {
		return Feedback{Message: "Some blocks were wrong and have been cleared. Try again."}, nil
	}
	x.pyramid.Next()
	return Feedback{Correct: true, Message: msgCorrect, Advanced: true}, nil
}

func (x *pyramidExercise) Summary() session.Summary {
	return session.PyramidSummary(x.title, x.pyramid)
}
