package problemgen

import "fmt"

// Relation is the answer to a comparison exercise.
type Relation string

const (
	Less    Relation = "<"
	Greater Relation = ">"
	Equal   Relation = "="
)

// equalChance is how often both sides are forced equal so "=" shows up.
const equalChance = 0.2

// Comparison asks which of <, > or = holds between Left and Right.
type Comparison struct {
	ID      string
	Left    int
	Right   int
	Correct Relation
}

// Check reports whether rel is the right relation.
func (c Comparison) Check(rel Relation) bool {
	return rel == c.Correct
}

func relationOf(left, right int) Relation {
	switch {
	case left > right:
		return Greater
	case left < right:
		return Less
	}
	return Equal
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Comparisons generates s.Count comparisons with operands in [0, max],
// max clamped to [0, 100].
func Comparisons(s ComparisonSettings, r Rand) []Comparison {
	if s.Count <= 0 {
		return []Comparison{}
	}
	max := clamp(s.Max, 0, 100)
	out := make([]Comparison, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		left := randomInt(r, 0, max)
		right := randomInt(r, 0, max)
		if r.Float64() < equalChance {
			left = randomInt(r, 0, max)
			right = left
		}
		out = append(out, Comparison{
			ID:      fmt.Sprintf("%d-%d-%s", left, right, shortID()),
			Left:    left,
			Right:   right,
			Correct: relationOf(left, right),
		})
	}
	return out
}
