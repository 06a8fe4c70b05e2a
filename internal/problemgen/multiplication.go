package problemgen

import "fmt"

// FactorLimit is the largest factor in multiplication and division drills.
const FactorLimit = 10

// maxPairAttempts bounds random sampling before the deterministic scan.
const maxPairAttempts = 100

// Pair is a factor pair and its product.
type Pair struct {
	A, B    int
	Product int
}

// MultiplicationPair draws factors uniformly from [1, FactorLimit] until the
// product is at most maxProduct. After maxPairAttempts misses it scans the
// factor grid in row-major order and returns the first pair that fits,
// falling back to 1×1.
func MultiplicationPair(r Rand, maxProduct int) Pair {
	for i := 0; i < maxPairAttempts; i++ {
		a := randomInt(r, 1, FactorLimit)
		b := randomInt(r, 1, FactorLimit)
		if a*b <= maxProduct {
			return Pair{A: a, B: b, Product: a * b}
		}
	}
	for a := 1; a <= FactorLimit; a++ {
		for b := 1; b <= FactorLimit; b++ {
			if a*b <= maxProduct {
				return Pair{A: a, B: b, Product: a * b}
			}
		}
	}
	return Pair{A: 1, B: 1, Product: 1}
}

func newMultiplication(r Rand, max int) Question {
	p := MultiplicationPair(r, max)
	return Question{
		ID:      fmt.Sprintf("mul-%dx%d-%s", p.A, p.B, shortID()),
		A:       p.A,
		B:       p.B,
		Op:      OpMul,
		Correct: p.Product,
	}
}

// newDivision reuses the multiplication pair: product ÷ a = b or product ÷ b = a.
func newDivision(r Rand, max int) Question {
	p := MultiplicationPair(r, max)
	divisor, quotient := p.A, p.B
	if !coin(r) {
		divisor, quotient = p.B, p.A
	}
	return Question{
		ID:      fmt.Sprintf("div-%d:%d-%s", p.Product, divisor, shortID()),
		A:       p.Product,
		B:       divisor,
		Op:      OpDiv,
		Correct: quotient,
	}
}

func buildMultiplication(r Rand, mode MultiplicationMode, max int) Question {
	switch mode {
	case ModeMul:
		return newMultiplication(r, max)
	case ModeDiv:
		return newDivision(r, max)
	}
	if coin(r) {
		return newMultiplication(r, max)
	}
	return newDivision(r, max)
}

// Multiplication generates exactly s.Count multiplication/division
// questions, unique by (a, op, b) when the range allows it.
func Multiplication(s MultiplicationSettings, r Rand) []Question {
	return generateUnique(s.Count, false, func() Question {
		return buildMultiplication(r, s.Mode, s.Max)
	})
}

// MultiplicationModeLabel returns the human label for a mode.
func MultiplicationModeLabel(m MultiplicationMode) string {
	switch m {
	case ModeMul:
		return "Multiplication"
	case ModeDiv:
		return "Division"
	case ModeMulMix:
		return "Mixed × / ÷"
	}
	return string(m)
}
