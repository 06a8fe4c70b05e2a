package practice

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/problemgen"
)

// Settings holds the settings of every exercise kind.
type Settings struct {
	Arithmetic     problemgen.ArithmeticSettings     `yaml:"arithmetic"`
	Multiplication problemgen.MultiplicationSettings `yaml:"multiplication"`
	WordProblems   problemgen.WordProblemSettings    `yaml:"word_problems"`
	Pyramid        problemgen.PyramidSettings        `yaml:"pyramid"`
	Clock          problemgen.ClockSettings          `yaml:"clock"`
	Comparison     problemgen.ComparisonSettings     `yaml:"comparison"`
	Decomposition  problemgen.DecompositionSettings  `yaml:"decomposition"`
	Dice           problemgen.DiceSettings           `yaml:"dice"`
	NumberWriting  problemgen.NumberWritingSettings  `yaml:"number_writing"`
	WordLab        problemgen.WordLabSettings        `yaml:"word_lab"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Arithmetic:     problemgen.ArithmeticSettings{Mode: problemgen.ModeMix, Count: 10, Max: 20},
		Multiplication: problemgen.MultiplicationSettings{Mode: problemgen.ModeMul, Count: 10, Max: 20},
		WordProblems:   problemgen.WordProblemSettings{Count: 3},
		Pyramid:        problemgen.PyramidSettings{Count: 3, Max: 20},
		Clock:          problemgen.ClockSettings{Count: 3},
		Comparison:     problemgen.ComparisonSettings{Count: 10, Max: 50},
		Decomposition:  problemgen.DecompositionSettings{Count: 10, Max: 50},
		Dice:           problemgen.DiceSettings{Dice: 2, Throws: 5},
		NumberWriting:  problemgen.NumberWritingSettings{Count: 10},
		WordLab:        problemgen.WordLabSettings{Letters: 3, Count: 5},
	}
}

// Override adjusts one kind's settings from command-line flags. Zero values
// and an empty mode leave the setting unchanged.
type Override struct {
	Count int
	Max   int
	Mode  string
}

// With returns a copy of s with o applied to kind k. Count means throws for
// dice; Max means dice per throw for dice and letters for the word lab.
func (s Settings) With(k Kind, o Override) (Settings, error) {
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	if o.Mode != "" && k != KindArithmetic && k != KindMultiplication {
		return s, fmt.Errorf("%s has no modes", k)
	}

	switch k {
	case KindArithmetic:
		setInt(&s.Arithmetic.Count, o.Count)
		setInt(&s.Arithmetic.Max, o.Max)
		if o.Mode != "" {
			m := problemgen.ArithmeticMode(o.Mode)
			if m != problemgen.ModeAdd && m != problemgen.ModeSub && m != problemgen.ModeMix {
				return s, fmt.Errorf("arithmetic mode %q: want add, sub or mix", o.Mode)
			}
			s.Arithmetic.Mode = m
		}
	case KindMultiplication:
		setInt(&s.Multiplication.Count, o.Count)
		setInt(&s.Multiplication.Max, o.Max)
		if o.Mode != "" {
			m := problemgen.MultiplicationMode(o.Mode)
			if m != problemgen.ModeMul && m != problemgen.ModeDiv && m != problemgen.ModeMulMix {
				return s, fmt.Errorf("multiplication mode %q: want mul, div or mix", o.Mode)
			}
			s.Multiplication.Mode = m
		}
	case KindWordProblems:
		setInt(&s.WordProblems.Count, o.Count)
	case KindPyramid:
		setInt(&s.Pyramid.Count, o.Count)
		setInt(&s.Pyramid.Max, o.Max)
	case KindClock:
		setInt(&s.Clock.Count, o.Count)
	case KindComparison:
		setInt(&s.Comparison.Count, o.Count)
		setInt(&s.Comparison.Max, o.Max)
	case KindDecomposition:
		setInt(&s.Decomposition.Count, o.Count)
		setInt(&s.Decomposition.Max, o.Max)
	case KindDice:
		setInt(&s.Dice.Throws, o.Count)
		setInt(&s.Dice.Dice, o.Max)
	case KindNumberWriting:
		setInt(&s.NumberWriting.Count, o.Count)
	case KindWordLab:
		setInt(&s.WordLab.Count, o.Count)
		setInt(&s.WordLab.Letters, o.Max)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	return s, nil
}

// Describe returns a one-line description of the settings for kind k.
func (s Settings) Describe(k Kind) string {
	switch k {
	case KindArithmetic:
		return fmt.Sprintf("%s, %d questions, up to %d", problemgen.ArithmeticModeLabel(s.Arithmetic.Mode), s.Arithmetic.Count, s.Arithmetic.Max)
	case KindMultiplication:
		return fmt.Sprintf("%s, %d questions, up to %d", problemgen.MultiplicationModeLabel(s.Multiplication.Mode), s.Multiplication.Count, s.Multiplication.Max)
	case KindWordProblems:
		return fmt.Sprintf("%d problems", s.WordProblems.Count)
	case KindPyramid:
		return fmt.Sprintf("%d pyramids, top up to %d", s.Pyramid.Count, s.Pyramid.Max)
	case KindClock:
		return fmt.Sprintf("%d clocks", s.Clock.Count)
	case KindComparison:
		return fmt.Sprintf("%d pairs, up to %d", s.Comparison.Count, s.Comparison.Max)
	case KindDecomposition:
		return fmt.Sprintf("%d numbers, up to %d", s.Decomposition.Count, s.Decomposition.Max)
	case KindDice:
		return fmt.Sprintf("%d throws of %d dice", s.Dice.Throws, s.Dice.Dice)
	case KindNumberWriting:
		return fmt.Sprintf("%d numbers", s.NumberWriting.Count)
	case KindWordLab:
		return fmt.Sprintf("%d words of %d letters", s.WordLab.Count, s.WordLab.Letters)
	}
	return ""
}
