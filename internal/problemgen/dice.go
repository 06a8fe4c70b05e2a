package problemgen

import "fmt"

// DiceThrow is one throw of several dice; the learner estimates the sum.
type DiceThrow struct {
	ID     string
	Values []int
	Sum    int
}

// Check reports whether answer is the sum of the dice.
func (d DiceThrow) Check(answer int) bool {
	return answer == d.Sum
}

// DiceThrows generates s.Throws throws of s.Dice six-sided dice.
func DiceThrows(s DiceSettings, r Rand) []DiceThrow {
	if s.Throws <= 0 || s.Dice <= 0 {
		return []DiceThrow{}
	}
	out := make([]DiceThrow, 0, s.Throws)
	for i := 0; i < s.Throws; i++ {
		values := make([]int, s.Dice)
		sum := 0
		for d := range values {
			values[d] = r.IntN(6) + 1
			sum += values[d]
		}
		out = append(out, DiceThrow{
			ID:     fmt.Sprintf("dice-%d-%s", i, shortID()),
			Values: values,
			Sum:    sum,
		})
	}
	return out
}
