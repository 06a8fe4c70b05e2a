package problemgen

import "fmt"

// Decomposition asks for two parts that add up to Total.
type Decomposition struct {
	ID    string
	Total int
}

// Check reports whether the parts sum to the total.
func (d Decomposition) Check(a, b int) bool {
	return a+b == d.Total
}

// Decompositions generates s.Count totals in [1, max], max clamped to [1, 100].
func Decompositions(s DecompositionSettings, r Rand) []Decomposition {
	if s.Count <= 0 {
		return []Decomposition{}
	}
	max := clamp(s.Max, 1, 100)
	out := make([]Decomposition, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		total := randomInt(r, 1, max)
		out = append(out, Decomposition{
			ID:    fmt.Sprintf("%d-%s", total, shortID()),
			Total: total,
		})
	}
	return out
}

// NumberWriting asks to write the number made of Tens tens and Units units.
type NumberWriting struct {
	ID    string
	Tens  int
	Units int
	Total int
}

// Check reports whether answer is the written number.
func (n NumberWriting) Check(answer int) bool {
	return answer == n.Total
}

// NumberWritings generates s.Count numbers in [0, 100].
func NumberWritings(s NumberWritingSettings, r Rand) []NumberWriting {
	if s.Count <= 0 {
		return []NumberWriting{}
	}
	out := make([]NumberWriting, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		tens := randomInt(r, 0, 10)
		units := randomInt(r, 0, 9)
		if tens == 10 {
			units = 0
		}
		out = append(out, NumberWriting{
			ID:    fmt.Sprintf("%d-%d-%s", tens, units, shortID()),
			Tens:  tens,
			Units: units,
			Total: tens*10 + units,
		})
	}
	return out
}
