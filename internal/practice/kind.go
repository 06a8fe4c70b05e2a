// Package practice adapts every exercise session to a text surface: a
// prompt to show and a line of learner input to grade. The CLI drill and
// the TUI practice screen both drive sessions through it.
package practice

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names an exercise type.
type Kind string

const (
	KindArithmetic     Kind = "arithmetic"
	KindMultiplication Kind = "multiplication"
	KindWordProblems   Kind = "word-problems"
	KindPyramid        Kind = "pyramid"
	KindClock          Kind = "clock"
	KindComparison     Kind = "comparison"
	KindDecomposition  Kind = "decomposition"
	KindDice           Kind = "dice"
	KindNumberWriting  Kind = "number-writing"
	KindWordLab        Kind = "word-lab"
)

var (
	// ErrUnknownKind is returned for an unrecognized exercise kind.
	ErrUnknownKind = errors.New("unknown exercise kind")
	// ErrInvalidInput is returned when learner input cannot be parsed.
	// The session is left untouched.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotActive is returned when input arrives with no exercise showing.
	ErrNotActive = errors.New("no exercise in progress")
)

// KindInfo describes an exercise kind for menus and listings.
type KindInfo struct {
	Kind        Kind
	Title       string
	Description string
	// Review is true for kinds that re-ask missed exercises.
	Review bool
}

var kinds = []KindInfo{
	{KindArithmetic, "Plus & Minus", "Addition and subtraction within a limit", true},
	{KindMultiplication, "Times Tables", "Multiplication and division up to 10×10", true},
	{KindWordProblems, "Word Problems", "Read a story and write its equation", true},
	{KindPyramid, "Number Pyramids", "Fill in the sums above the base", false},
	{KindClock, "Clock", "Read the time from the hands", false},
	{KindComparison, "Compare", "Pick <, > or = between two numbers", false},
	{KindDecomposition, "Split It", "Break a number into two parts", false},
	{KindDice, "Dice", "Add up the dice", false},
	{KindNumberWriting, "Tens & Units", "Write the number from tens and units", false},
	{KindWordLab, "Word Lab", "Copy the word letter by letter", false},
}

// Kinds returns every exercise kind in menu order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kinds))
	copy(out, kinds)
	return out
}

// Info returns the description of k.
func Info(k Kind) (KindInfo, error) {
	for _, info := range kinds {
		if info.Kind == k {
			return info, nil
		}
	}
	return KindInfo{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// ParseKind accepts a kind name, case-insensitively, with _ or - separators.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, err := Info(k); err != nil {
		return "", err
	}
	return k, nil
}
