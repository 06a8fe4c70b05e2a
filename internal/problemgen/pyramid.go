package problemgen

import "fmt"

// PyramidMinApex is the apex of a pyramid whose base is all ones.
const PyramidMinApex = 8

// PyramidBaseWidth is the number of cells in the base row.
const PyramidBaseWidth = 4

// Pyramid is a number pyramid: every cell is the sum of the two cells
// below it. Rows[0] holds the apex, Rows[len-1] the base.
type Pyramid struct {
	ID   string
	Rows [][]int
}

// Apex returns the top value.
func (p Pyramid) Apex() int {
	return p.Rows[0][0]
}

// Base returns the bottom row.
func (p Pyramid) Base() []int {
	return p.Rows[len(p.Rows)-1]
}

// pyramidBase works backward from a target apex in [8, max]. With base
// [a b c d] the apex is a + 3b + 3c + d, so the excess over the all-ones
// base is spread as y triples into b, z triples into c, and the rest split
// between a and d.
func pyramidBase(r Rand, max int) [PyramidBaseWidth]int {
	upper := max
	if upper < PyramidMinApex {
		upper = PyramidMinApex
	}
	target := randomInt(r, PyramidMinApex, upper)
	delta := target - PyramidMinApex

	y := randomInt(r, 0, delta/3)
	afterB := delta - y*3

	z := randomInt(r, 0, afterB/3)
	afterC := afterB - z*3

	x := randomInt(r, 0, afterC)
	w := afterC - x

	return [PyramidBaseWidth]int{1 + x, 1 + y, 1 + z, 1 + w}
}

// pyramidRows builds every row from the base, apex first.
func pyramidRows(base []int) [][]int {
	rows := [][]int{append([]int(nil), base...)}
	for cur := base; len(cur) > 1; {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = cur[i] + cur[i+1]
		}
		rows = append([][]int{next}, rows...)
		cur = next
	}
	return rows
}

// Pyramids generates s.Count pyramids with apex in [8, max(8, s.Max)].
func Pyramids(s PyramidSettings, r Rand) []Pyramid {
	if s.Count <= 0 {
		return []Pyramid{}
	}
	out := make([]Pyramid, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		base := pyramidBase(r, s.Max)
		out = append(out, Pyramid{
			ID:   fmt.Sprintf("pyramid-%d-%s", i, shortID()),
			Rows: pyramidRows(base[:]),
		})
	}
	return out
}
