package practice

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/abhisek/mathlab/internal/session"
)

// New builds the exercise session for kind k. Settings are copied; later
// changes to s do not affect the returned exercise. logger may be nil.
func New(k Kind, s Settings, rng problemgen.Rand, logger *slog.Logger) (Exercise, error) {
	info, err := Info(k)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = problemgen.NewRand(0)
	}

	questionDesc := session.Describer[problemgen.Question, int]{
		Prompt:   problemgen.Question.Text,
		Answer:   strconv.Itoa,
		Expected: func(q problemgen.Question) string { return strconv.Itoa(q.Correct) },
	}

	switch k {
	case KindArithmetic:
		sess := session.NewArithmeticSession(rng, logger)
		settings := s.Arithmetic
		return &engineExercise[problemgen.Question, int]{
			kind:   k,
			title:  func() string { return info.Title + " · " + problemgen.ArithmeticModeLabel(settings.Mode) },
			hint:   "Type the answer and press Enter.",
			engine: sess.Engine,
			start:  func() { sess.StartSession(settings) },
			reset:  sess.ResetSession,
			parse:  parseInt,
			render: renderQuestion,
			desc:   questionDesc,
		}, nil

	case KindMultiplication:
		sess := session.NewMultiplicationSession(rng, logger)
		settings := s.Multiplication
		return &engineExercise[problemgen.Question, int]{
			kind:   k,
			title:  func() string { return info.Title + " · " + problemgen.MultiplicationModeLabel(settings.Mode) },
			hint:   "Type the answer and press Enter.",
			engine: sess.Engine,
			start:  func() { sess.StartSession(settings) },
			reset:  sess.ResetSession,
			parse:  parseInt,
			render: renderQuestion,
			desc:   questionDesc,
		}, nil

	case KindWordProblems:
		bank, err := content.Load()
		if err != nil {
			return nil, fmt.Errorf("load word problems: %w", err)
		}
		sess := session.NewWordProblemSession(bank, rng, logger)
		settings := s.WordProblems
		return &engineExercise[problemgen.WordProblem, problemgen.WordResponse]{
			kind:   k,
			title:  func() string { return info.Title },
			hint:   "Write the whole equation, like 3 + 4 = 7.",
			engine: sess.Engine,
			start:  func() { sess.StartSession(settings) },
			reset:  sess.ResetSession,
			parse:  parseEquation,
			render: renderWordProblem,
			desc: session.Describer[problemgen.WordProblem, problemgen.WordResponse]{
				Prompt:   renderWordProblem,
				Answer:   formatWordResponse,
				Expected: problemgen.WordProblem.Equation,
			},
		}, nil

	case KindPyramid:
		return &pyramidExercise{
			title:    info.Title,
			pyramid:  session.NewPyramidSession(rng, logger),
			settings: s.Pyramid,
		}, nil

	case KindClock:
		sess := session.NewClockSession(rng, logger)
		settings := s.Clock
		return &drillExercise[problemgen.ClockTime, session.ClockReading]{
			kind:   k,
			title:  info.Title,
			hint:   "Write the time as h:mm, like 3:05.",
			drill:  sess.Drill,
			start:  func() { sess.StartSession(settings) },
			parse:  parseClock,
			render: renderClock,
			desc: session.Describer[problemgen.ClockTime, session.ClockReading]{
				Prompt:   renderClock,
				Answer:   formatClockReading,
				Expected: problemgen.ClockTime.String,
			},
		}, nil

	case KindComparison:
		sess := session.NewComparisonSession(rng, logger)
		settings := s.Comparison
		return &drillExercise[problemgen.Comparison, problemgen.Relation]{
			kind:    k,
			title:   info.Title,
			hint:    "Type <, > or =.",
			choices: []string{string(problemgen.Less), string(problemgen.Equal), string(problemgen.Greater)},
			drill:   sess.Drill,
			start:   func() { sess.StartSession(settings) },
			parse:   parseRelation,
			render:  renderComparison,
			desc: session.Describer[problemgen.Comparison, problemgen.Relation]{
				Prompt: renderComparison,
				Answer: formatRelation,
				Expected: func(c problemgen.Comparison) string {
					return fmt.Sprintf("%d %s %d", c.Left, c.Correct, c.Right)
				},
			},
		}, nil

	case KindDecomposition:
		sess := session.NewDecompositionSession(rng, logger)
		settings := s.Decomposition
		return &drillExercise[problemgen.Decomposition, session.Parts]{
			kind:   k,
			title:  info.Title,
			hint:   "Write two numbers, like 3 + 4.",
			drill:  sess.Drill,
			start:  func() { sess.StartSession(settings) },
			parse:  parseParts,
			render: renderDecomposition,
			desc: session.Describer[problemgen.Decomposition, session.Parts]{
				Prompt: renderDecomposition,
				Answer: formatParts,
				Expected: func(d problemgen.Decomposition) string {
					return fmt.Sprintf("two numbers adding up to %d", d.Total)
				},
			},
		}, nil

	case KindDice:
		sess := session.NewDiceSession(rng, logger)
		settings := s.Dice
		return &drillExercise[problemgen.DiceThrow, int]{
			kind:   k,
			title:  info.Title,
			hint:   "Type the sum and press Enter.",
			drill:  sess.Drill,
			start:  func() { sess.StartSession(settings) },
			parse:  parseInt,
			render: renderDice,
			desc: session.Describer[problemgen.DiceThrow, int]{
				Prompt:   renderDice,
				Answer:   strconv.Itoa,
				Expected: func(d problemgen.DiceThrow) string { return strconv.Itoa(d.Sum) },
			},
		}, nil

	case KindNumberWriting:
		sess := session.NewNumberWritingSession(rng, logger)
		settings := s.NumberWriting
		return &drillExercise[problemgen.NumberWriting, int]{
			kind:   k,
			title:  info.Title,
			hint:   "Type the number and press Enter.",
			drill:  sess.Drill,
			start:  func() { sess.StartSession(settings) },
			parse:  parseInt,
			render: renderNumberWriting,
			desc: session.Describer[problemgen.NumberWriting, int]{
				Prompt:   renderNumberWriting,
				Answer:   strconv.Itoa,
				Expected: func(n problemgen.NumberWriting) string { return strconv.Itoa(n.Total) },
			},
		}, nil

	case KindWordLab:
		bank, err := content.Load()
		if err != nil {
			return nil, fmt.Errorf("load words: %w", err)
		}
		sess := session.NewWordLabSession(bank, rng, logger)
		settings := s.WordLab
		return &drillExercise[problemgen.SpellingWord, string]{
			kind:   k,
			title:  info.Title,
			hint:   "Type the word and press Enter.",
			drill:  sess.Drill,
			start:  func() { sess.StartSession(settings) },
			parse:  parseWord,
			render: renderSpelling,
			desc: session.Describer[problemgen.SpellingWord, string]{
				Prompt:   renderSpelling,
				Answer:   identity,
				Expected: func(w problemgen.SpellingWord) string { return w.Word },
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}
