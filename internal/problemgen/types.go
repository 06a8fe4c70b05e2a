package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Rand is the random source generators draw from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomInt returns a uniform integer in [min, max]. If max < min, min is returned.
func randomInt(r Rand, min, max int) int {
	if max < min {
		return min
	}
	return r.IntN(max-min+1) + min
}

// coin returns true with probability 0.5.
func coin(r Rand) bool {
	return r.Float64() < 0.5
}

// shortID returns a short random suffix for display keys.
func shortID() string {
	return uuid.NewString()[:8]
}

// Operator is the arithmetic operator of a binary exercise.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "×"
	OpDiv Operator = "÷"
)

// Apply evaluates a <op> b. Division by zero yields 0.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	}
	return 0
}

// ParseOperator accepts the display symbols plus common ASCII spellings.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-", "−":
		return OpSub, nil
	case "×", "x", "*":
		return OpMul, nil
	case "÷", "/", ":":
		return OpDiv, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Question is a binary arithmetic exercise: A <Op> B = Correct.
type Question struct {
	// ID is a display key; it carries no meaning.
	ID      string
	A       int
	B       int
	Op      Operator
	Correct int
}

// Key identifies the (operand, operator, operand) triple for uniqueness checks.
func (q Question) Key() string {
	return fmt.Sprintf("%d|%s|%d", q.A, q.Op, q.B)
}

// Text renders the question prompt, e.g. "7 + 5 = ?".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d = ?", q.A, q.Op, q.B)
}

// Check reports whether answer is the correct result.
func (q Question) Check(answer int) bool {
	return answer == q.Correct
}
