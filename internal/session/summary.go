package session

import (
	"fmt"
	"strings"
)

// MistakeRecord describes one missed exercise for the summary screen.
type MistakeRecord struct {
	Index    int
	Prompt   string
	Given    string
	Expected string
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Kind         string
	Title        string
	Total        int
	Correct      int
	Accuracy     float64
	Attempts     int
	ReviewedPass bool
	Mistakes     []MistakeRecord
}

// Describer renders exercises and answers as text.
type Describer[Q, A any] struct {
	Prompt   func(Q) string
	Answer   func(A) string
	Expected func(Q) string
}

func (d Describer[Q, A]) record(index int, q Q, given A, answered bool) MistakeRecord {
	rec := MistakeRecord{Index: index, Given: "-"}
	if d.Prompt != nil {
		rec.Prompt = d.Prompt(q)
	}
	if answered && d.Answer != nil {
		rec.Given = d.Answer(given)
	}
	if d.Expected != nil {
		rec.Expected = d.Expected(q)
	}
	return rec
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// EngineSummary summarizes a quiz/review session. Mistakes carry the first
// wrong answer given.
func EngineSummary[Q, A any](title string, e *Engine[Q, A], d Describer[Q, A]) Summary {
	s := Summary{
		Kind:         e.Kind(),
		Title:        title,
		Total:        e.TotalQuestions(),
		Correct:      e.CorrectCount(),
		Attempts:     e.Attempts(),
		ReviewedPass: e.LastRunWasReview(),
	}
	s.Accuracy = accuracy(s.Correct, s.Total)
	questions := e.Questions()
	for _, i := range e.MistakeIndices() {
		given, ok := e.MistakeAnswer(i)
		s.Mistakes = append(s.Mistakes, d.record(i, questions[i], given, ok))
	}
	return s
}

// DrillSummary summarizes a linear drill. Under ScoreLatest the mistakes are
// the exercises whose latest evaluation was wrong or missing.
func DrillSummary[Q, A any](title string, dr *Drill[Q, A], d Describer[Q, A]) Summary {
	s := Summary{
		Kind:    dr.Kind(),
		Title:   title,
		Total:   dr.TotalQuestions(),
		Correct: dr.CorrectCount(),
	}
	if s.Total > 0 {
		s.Attempts = 1
	}
	s.Accuracy = accuracy(s.Correct, s.Total)
	questions := dr.Questions()

	if dr.Scoring() == ScoreLatest {
		for i, q := range questions {
			if ok, _ := dr.Result(i); ok {
				continue
			}
			given, answered := dr.Answer(i)
			s.Mistakes = append(s.Mistakes, d.record(i, q, given, answered))
		}
		return s
	}
	for _, i := range dr.MistakeIndices() {
		given, ok := dr.MistakeAnswer(i)
		s.Mistakes = append(s.Mistakes, d.record(i, questions[i], given, ok))
	}
	return s
}

// PyramidSummary summarizes a pyramid session.
func PyramidSummary(title string, p *PyramidSession) Summary {
	s := Summary{
		Kind:    "pyramid",
		Title:   title,
		Total:   p.TotalExercises(),
		Correct: p.CorrectCount(),
	}
	if s.Total > 0 {
		s.Attempts = 1
	}
	s.Accuracy = accuracy(s.Correct, s.Total)
	for i, ex := range p.exercises {
		if !p.IsMistake(i) {
			continue
		}
		base := ex.Entries[len(ex.Entries)-1]
		values := make([]string, len(base))
		for c, e := range base {
			values[c] = fmt.Sprint(e.Correct)
		}
		s.Mistakes = append(s.Mistakes, MistakeRecord{
			Index:    i,
			Prompt:   "base " + strings.Join(values, " "),
			Given:    "-",
			Expected: fmt.Sprintf("apex %d", ex.Entries[0][0].Correct),
		})
	}
	return s
}
