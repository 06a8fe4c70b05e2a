package problemgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mathlab/internal/content"
)

// WordProblem is one drawn instance of a word problem template. The learner
// must supply both operands, the operator and the result.
type WordProblem struct {
	ID         string
	TemplateID string
	Text       string
	A          int
	B          int
	Op         Operator
	Result     int
}

// WordResponse is a learner's full answer to a word problem. An empty Op
// means no operator was chosen.
type WordResponse struct {
	A      int
	B      int
	Op     Operator
	Result int
}

// Check requires every component of the response to match.
func (w WordProblem) Check(resp WordResponse) bool {
	return resp.Op != "" &&
		resp.A == w.A &&
		resp.B == w.B &&
		resp.Op == w.Op &&
		resp.Result == w.Result
}

// Equation renders the solved equation, e.g. "7 + 5 = 12".
func (w WordProblem) Equation() string {
	return fmt.Sprintf("%d %s %d = %d", w.A, w.Op, w.B, w.Result)
}

// cycle returns count items drawn from a shuffled copy of src, starting
// over from the beginning when src runs out.
func cycle[T any](src []T, count int, r Rand) []T {
	if count <= 0 || len(src) == 0 {
		return nil
	}
	pool := slices.Clone(src)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	out := make([]T, count)
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	return out
}

// WordProblems draws s.Count problems from the template bank, repeating
// templates when the bank is smaller than the count.
func WordProblems(bank []content.WordProblem, s WordProblemSettings, r Rand) []WordProblem {
	picked := cycle(bank, s.Count, r)
	out := make([]WordProblem, 0, len(picked))
	for i, t := range picked {
		op, err := ParseOperator(t.Op)
		if err != nil {
			op = OpAdd
		}
		out = append(out, WordProblem{
			ID:         fmt.Sprintf("%s-%d", t.ID, i),
			TemplateID: t.ID,
			Text:       t.Text,
			A:          t.A,
			B:          t.B,
			Op:         op,
			Result:     t.Result,
		})
	}
	return out
}

// SpellingWord is a word the learner copies letter by letter.
type SpellingWord struct {
	ID   string
	Word string
}

// Check compares the typed word ignoring case and surrounding space.
func (w SpellingWord) Check(typed string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), w.Word)
}

// SpellingWords draws s.Count words of s.Letters letters from words.
func SpellingWords(words []string, s WordLabSettings, r Rand) []SpellingWord {
	picked := cycle(words, s.Count, r)
	out := make([]SpellingWord, 0, len(picked))
	for i, w := range picked {
		out = append(out, SpellingWord{ID: fmt.Sprintf("%s-%d", w, i), Word: w})
	}
	return out
}
