package practice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/abhisek/mathlab/internal/session"
)

// dieFaces are the Unicode die faces for 1..6.
var dieFaces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

func renderQuestion(q problemgen.Question) string { return q.Text() }

func renderWordProblem(p problemgen.WordProblem) string { return p.Text }

// renderClock describes the hands: the long hand points at the minute mark
// (12 for o'clock) and the short hand at or just past the hour.
func renderClock(c problemgen.ClockTime) string {
	mark := c.Minutes / 5
	if mark == 0 {
		mark = 12
	}
	short := fmt.Sprintf("on the %d", c.Hours)
	if c.Minutes > 0 {
		short = fmt.Sprintf("just past the %d", c.Hours)
	}
	return fmt.Sprintf("The short hand is %s.\nThe long hand points at the %d.\nWhat time is it?", short, mark)
}

func renderComparison(c problemgen.Comparison) string {
	return fmt.Sprintf("%d  ?  %d", c.Left, c.Right)
}

func renderDecomposition(d problemgen.Decomposition) string {
	return fmt.Sprintf("Split %d into two numbers.", d.Total)
}

func renderDice(d problemgen.DiceThrow) string {
	faces := make([]string, len(d.Values))
	for i, v := range d.Values {
		faces[i] = fmt.Sprintf("%s (%d)", dieFaces[v-1], v)
	}
	return strings.Join(faces, "   ") + "\nWhat do the dice add up to?"
}

func renderNumberWriting(n problemgen.NumberWriting) string {
	return fmt.Sprintf("%d tens and %d units make?", n.Tens, n.Units)
}

func renderSpelling(w problemgen.SpellingWord) string {
	return "Copy this word:  " + strings.ToUpper(w.Word)
}

// renderPyramid draws the pyramid centered, apex first. Blank cells show
// as "?".
func renderPyramid(entries [][]session.PyramidEntry) string {
	width := 0
	cells := make([][]string, len(entries))
	for r, row := range entries {
		cells[r] = make([]string, len(row))
		for c, e := range row {
			s := "?"
			if e.Value != nil {
				s = strconv.Itoa(*e.Value)
			}
			cells[r][c] = s
			width = max(width, len(s))
		}
	}
	width += 2

	var b strings.Builder
	base := len(entries)
	for r, row := range cells {
		b.WriteString(strings.Repeat(" ", (base-r-1)*width/2))
		for _, s := range row {
			pad := width - len(s)
			b.WriteString(strings.Repeat(" ", pad/2))
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", pad-pad/2))
		}
		if r < len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func formatWordResponse(r problemgen.WordResponse) string {
	op := string(r.Op)
	if op == "" {
		op = "?"
	}
	return fmt.Sprintf("%d %s %d = %d", r.A, op, r.B, r.Result)
}

func formatClockReading(r session.ClockReading) string {
	return fmt.Sprintf("%d:%02d", r.Hours, r.Minutes)
}

func formatParts(p session.Parts) string {
	return fmt.Sprintf("%d + %d", p.A, p.B)
}

func formatRelation(r problemgen.Relation) string { return string(r) }

func identity(s string) string { return s }
