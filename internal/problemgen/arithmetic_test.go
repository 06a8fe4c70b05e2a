package problemgen

import (
	"math/rand/v2"
	"testing"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestArithmetic_ExactCount(t *testing.T) {
	tests := []ArithmeticSettings{
		{Mode: ModeAdd, Count: 1, Max: 5},
		{Mode: ModeSub, Count: 10, Max: 20},
		{Mode: ModeMix, Count: 10, Max: 20},
		{Mode: ModeMix, Count: 50, Max: 3}, // more slots than unique pairs
		{Mode: ModeAdd, Count: 5, Max: 0},
	}
	for _, s := range tests {
		for seed := uint64(1); seed <= 50; seed++ {
			got := Arithmetic(s, seeded(seed))
			if len(got) != s.Count {
				t.Fatalf("Arithmetic(%+v) seed %d: got %d questions, want %d", s, seed, len(got), s.Count)
			}
		}
	}
}

func TestArithmetic_ZeroCount(t *testing.T) {
	got := Arithmetic(ArithmeticSettings{Mode: ModeAdd, Count: 0, Max: 10}, seeded(1))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestArithmetic_Bounds(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		for _, q := range Arithmetic(ArithmeticSettings{Mode: ModeMix, Count: 10, Max: 20}, seeded(seed)) {
			if q.Correct != q.Op.Apply(q.A, q.B) {
				t.Fatalf("%s: stored answer %d does not match", q.Text(), q.Correct)
			}
			switch q.Op {
			case OpAdd:
				if q.Correct > 20 {
					t.Fatalf("%s: sum %d exceeds max 20", q.Text(), q.Correct)
				}
			case OpSub:
				if q.Correct < 0 {
					t.Fatalf("%s: negative difference %d", q.Text(), q.Correct)
				}
			default:
				t.Fatalf("unexpected operator %q", q.Op)
			}
		}
	}
}

func TestArithmetic_AddCountOneMaxFive(t *testing.T) {
	for seed := uint64(1); seed <= 500; seed++ {
		got := Arithmetic(ArithmeticSettings{Mode: ModeAdd, Count: 1, Max: 5}, seeded(seed))
		q := got[0]
		if q.Op != OpAdd || q.A+q.B > 5 || q.A < 0 || q.B < 0 {
			t.Fatalf("seed %d: bad question %s", seed, q.Text())
		}
	}
}

func TestArithmetic_ModeRestrictsOperator(t *testing.T) {
	for _, mode := range []ArithmeticMode{ModeAdd, ModeSub} {
		want := OpAdd
		if mode == ModeSub {
			want = OpSub
		}
		for _, q := range Arithmetic(ArithmeticSettings{Mode: mode, Count: 20, Max: 50}, seeded(7)) {
			if q.Op != want {
				t.Errorf("mode %s produced %s", mode, q.Text())
			}
		}
	}
}

func TestArithmetic_Unique(t *testing.T) {
	// max 20 addition has 231 pairs; 10 is well within reach.
	for seed := uint64(1); seed <= 200; seed++ {
		seen := map[string]bool{}
		for _, q := range Arithmetic(ArithmeticSettings{Mode: ModeMix, Count: 10, Max: 20}, seeded(seed)) {
			if seen[q.Key()] {
				t.Fatalf("seed %d: duplicate %s", seed, q.Key())
			}
			seen[q.Key()] = true
		}
	}
}

func TestArithmetic_ZeroThrottle(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		zeroOperands, zeroResults := 0, 0
		for _, q := range Arithmetic(ArithmeticSettings{Mode: ModeMix, Count: 15, Max: 10}, seeded(seed)) {
			if q.A == 0 || q.B == 0 {
				zeroOperands++
			}
			if q.Correct == 0 {
				zeroResults++
			}
		}
		if zeroOperands > 1 || zeroResults > 1 {
			t.Fatalf("seed %d: %d zero operands, %d zero results", seed, zeroOperands, zeroResults)
		}
	}
}

func TestArithmetic_MaxZeroTerminates(t *testing.T) {
	got := Arithmetic(ArithmeticSettings{Mode: ModeMix, Count: 4, Max: 0}, seeded(3))
	if len(got) != 4 {
		t.Fatalf("got %d questions, want 4", len(got))
	}
	for _, q := range got {
		if q.Correct != 0 {
			t.Errorf("max 0 produced %s", q.Text())
		}
	}
}

func TestArithmetic_Deterministic(t *testing.T) {
	s := ArithmeticSettings{Mode: ModeMix, Count: 10, Max: 20}
	a := Arithmetic(s, seeded(42))
	b := Arithmetic(s, seeded(42))
	for i := range a {
		if a[i].Key() != b[i].Key() {
			t.Fatalf("index %d: %s vs %s", i, a[i].Key(), b[i].Key())
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
		ok   bool
	}{
		{"+", OpAdd, true},
		{"-", OpSub, true},
		{"−", OpSub, true},
		{"x", OpMul, true},
		{"*", OpMul, true},
		{"/", OpDiv, true},
		{":", OpDiv, true},
		{"?", "", false},
	}
	for _, tc := range tests {
		got, err := ParseOperator(tc.in)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("ParseOperator(%q) = %q, %v; want %q ok=%v", tc.in, got, err, tc.want, tc.ok)
		}
	}
}
