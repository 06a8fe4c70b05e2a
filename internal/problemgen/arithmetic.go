package problemgen

import "fmt"

func newAddition(r Rand, max int) Question {
	a := randomInt(r, 0, max)
	b := randomInt(r, 0, max-a)
	return Question{A: a, B: b, Op: OpAdd, Correct: a + b}
}

func newSubtraction(r Rand, max int) Question {
	a := randomInt(r, 0, max)
	b := randomInt(r, 0, a)
	return Question{A: a, B: b, Op: OpSub, Correct: a - b}
}

func buildArithmetic(r Rand, mode ArithmeticMode, max int) Question {
	switch mode {
	case ModeAdd:
		return newAddition(r, max)
	case ModeSub:
		return newSubtraction(r, max)
	}
	if coin(r) {
		return newAddition(r, max)
	}
	return newSubtraction(r, max)
}

// Arithmetic generates an addition/subtraction batch of exactly s.Count
// questions. Sums never exceed s.Max and differences are never negative.
// Questions are unique by (a, op, b) when the range allows it, and at most
// one question has a zero operand and at most one a zero result.
// The batch is returned shuffled.
func Arithmetic(s ArithmeticSettings, r Rand) []Question {
	max := s.Max
	if max < 0 {
		max = 0
	}
	questions := generateUnique(s.Count, true, func() Question {
		return buildArithmetic(r, s.Mode, max)
	})
	for i := range questions {
		questions[i].ID = fmt.Sprintf("%s-%s", questions[i].Key(), shortID())
	}
	r.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

// ArithmeticModeLabel returns the human label for a mode.
func ArithmeticModeLabel(m ArithmeticMode) string {
	switch m {
	case ModeAdd:
		return "Addition"
	case ModeSub:
		return "Subtraction"
	case ModeMix:
		return "Mixed + / -"
	}
	return string(m)
}
