package problemgen

// uniqueAttemptMultiplier bounds the unique-fill phase to count*12 draws.
const uniqueAttemptMultiplier = 12

// maxZeroRerolls bounds how often a fallback slot is re-drawn to honor the
// zero throttle before the candidate is taken as is.
const maxZeroRerolls = 64

// batch accumulates questions under the uniqueness and zero-throttle rules.
type batch struct {
	seen          map[string]bool
	out           []Question
	throttleZeros bool
	zeroOperands  int
	zeroResults   int
}

func newBatch(count int, throttleZeros bool) *batch {
	return &batch{
		seen:          make(map[string]bool, count),
		out:           make([]Question, 0, count),
		throttleZeros: throttleZeros,
	}
}

// admissible reports whether q passes the zero throttle: at most one
// question with a zero operand and at most one with a zero result.
func (b *batch) admissible(q Question) bool {
	if !b.throttleZeros {
		return true
	}
	if hasZeroOperand(q) && b.zeroOperands >= 1 {
		return false
	}
	if q.Correct == 0 && b.zeroResults >= 1 {
		return false
	}
	return true
}

func (b *batch) add(q Question) {
	b.seen[q.Key()] = true
	b.out = append(b.out, q)
	if hasZeroOperand(q) {
		b.zeroOperands++
	}
	if q.Correct == 0 {
		b.zeroResults++
	}
}

func hasZeroOperand(q Question) bool {
	return q.A == 0 || q.B == 0
}

// generateUnique fills exactly count questions from build.
//
// Phase one draws up to count*uniqueAttemptMultiplier candidates and keeps
// only unseen, admissible ones. Phase two fills any remaining slots without
// the uniqueness check, re-drawing a bounded number of times for the zero
// throttle, so it always terminates.
func generateUnique(count int, throttleZeros bool, build func() Question) []Question {
	if count <= 0 {
		return []Question{}
	}
	b := newBatch(count, throttleZeros)

	maxAttempts := count * uniqueAttemptMultiplier
	for attempts := 0; len(b.out) < count && attempts < maxAttempts; attempts++ {
		q := build()
		if b.seen[q.Key()] || !b.admissible(q) {
			continue
		}
		b.add(q)
	}

	for len(b.out) < count {
		q := build()
		for i := 0; i < maxZeroRerolls && !b.admissible(q); i++ {
			q = build()
		}
		b.add(q)
	}

	return b.out
}
