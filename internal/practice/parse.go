package practice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/abhisek/mathlab/internal/session"
)

// Input normalization rules:
// - Whitespace is trimmed
// - Integers may carry leading zeros ("007" is 7)
// - Operators accept display symbols and ASCII spellings (x, *, /, :)
// - Times accept "h:mm", "h.mm" or "h mm"

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// parseInt parses a single whole number.
func parseInt(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, invalid("enter a number")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid("%q is not a whole number", s)
	}
	return n, nil
}

// parseInts parses exactly n whitespace or comma separated numbers.
func parseInts(input string, n int) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) != n {
		return nil, invalid("expected %d numbers, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseClock parses a time such as "3:05".
func parseClock(input string) (session.ClockReading, error) {
	s := strings.TrimSpace(input)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == '.' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return session.ClockReading{}, invalid("write the time as h:mm")
	}
	h, err := parseInt(fields[0])
	if err != nil {
		return session.ClockReading{}, err
	}
	m, err := parseInt(fields[1])
	if err != nil {
		return session.ClockReading{}, err
	}
	if h < 0 || h > 12 || m < 0 || m > 59 {
		return session.ClockReading{}, invalid("%q is not a clock time", s)
	}
	return session.ClockReading{Hours: h, Minutes: m}, nil
}

// parseRelation parses <, > or =.
func parseRelation(input string) (problemgen.Relation, error) {
	switch strings.TrimSpace(input) {
	case "<":
		return problemgen.Less, nil
	case ">":
		return problemgen.Greater, nil
	case "=", "==":
		return problemgen.Equal, nil
	}
	return "", invalid("choose <, > or =")
}

// parseParts parses two addends such as "12 + 5" or "12 5".
func parseParts(input string) (session.Parts, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '+' || r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return session.Parts{}, invalid("write two numbers, like 3 + 4")
	}
	a, err := parseInt(fields[0])
	if err != nil {
		return session.Parts{}, err
	}
	b, err := parseInt(fields[1])
	if err != nil {
		return session.Parts{}, err
	}
	return session.Parts{A: a, B: b}, nil
}

// parseEquation parses "a op b = result", spaces optional.
func parseEquation(input string) (problemgen.WordResponse, error) {
	left, right, ok := strings.Cut(input, "=")
	if !ok {
		return problemgen.WordResponse{}, invalid("write the whole equation, like 3 + 4 = 7")
	}
	result, err := parseInt(right)
	if err != nil {
		return problemgen.WordResponse{}, err
	}

	left = strings.TrimSpace(left)
	// Skip the first rune so a leading minus stays part of the operand.
	opAt := strings.IndexFunc(left[min(1, len(left)):], isOperatorRune)
	if opAt < 0 {
		return problemgen.WordResponse{}, invalid("the equation needs + or -")
	}
	opAt += min(1, len(left))
	_, size := firstRune(left[opAt:])
	op, err := problemgen.ParseOperator(left[opAt : opAt+size])
	if err != nil {
		return problemgen.WordResponse{}, invalid("%v", err)
	}
	a, err := parseInt(left[:opAt])
	if err != nil {
		return problemgen.WordResponse{}, err
	}
	b, err := parseInt(left[opAt+size:])
	if err != nil {
		return problemgen.WordResponse{}, err
	}
	return problemgen.WordResponse{A: a, B: b, Op: op, Result: result}, nil
}

func isOperatorRune(r rune) bool {
	return strings.ContainsRune("+-−×x*÷/:", r)
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// parseWord accepts any non-empty typed word.
func parseWord(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", invalid("type the word")
	}
	return s, nil
}
