package wide

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIfSkipsEmptyMask(t *testing.T) {
	ran := false
	If(All[int32](), None[int32](), func(Mask[int32]) { ran = true })
	if ran {
		t.Error("If: body ran with no active lane")
	}
	If(None[int32](), All[int32](), func(Mask[int32]) { ran = true })
	if ran {
		t.Error("If: body ran outside the enclosing mask")
	}
}

func TestIfElseMasksPartitionOuter(t *testing.T) {
	for _, po := range maskPatterns() {
		for _, pc := range maskPatterns() {
			outer, cond := MaskFromBits[float32](po), MaskFromBits[float32](pc)
			var thenBits, elseBits uint64
			IfElse(outer, cond,
				func(m Mask[float32]) { thenBits = BitsFromMask(m) },
				func(m Mask[float32]) { elseBits = BitsFromMask(m) },
			)
			if thenBits&elseBits != 0 {
				t.Errorf("IfElse(%#x, %#x): branches overlap: %#x & %#x", po, pc, thenBits, elseBits)
			}
			if thenBits|elseBits != po {
				t.Errorf("IfElse(%#x, %#x): branches cover %#x, want %#x", po, pc, thenBits|elseBits, po)
			}
			if thenBits != po&pc {
				t.Errorf("IfElse(%#x, %#x): then mask %#x, want %#x", po, pc, thenBits, po&pc)
			}
		}
	}
}

func TestIfElseOrder(t *testing.T) {
	var order []string
	IfElse(All[int8](), FirstN[int8](1),
		func(Mask[int8]) { order = append(order, "then") },
		func(Mask[int8]) { order = append(order, "else") },
	)
	want := []string{"then"}
	if Width > 1 {
		want = append(want, "else")
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("IfElse order mismatch (-want +got):\n%s", diff)
	}
}

// Nested masked conditionals must give the same per-lane result as ordinary
// scalar branches.
func TestNestedIfElseMatchesScalar(t *testing.T) {
	x := lanesOf(func(i int) int32 { return int32(i*5 - 7) })
	y := Zero[int32]()
	two, zero := Set[int32](2), Zero[int32]()

	IfElse(All[int32](), NotEqual(Mod(x, two), zero),
		func(m Mask[int32]) {
			IfElse(m, GreaterThan(x, two),
				func(m Mask[int32]) { y.Assign(m.Where(Set[int32](1))) },
				func(m Mask[int32]) { y.Assign(m.Where(Set[int32](2))) },
			)
		},
		func(m Mask[int32]) {
			If(m, LessThan(x, zero), func(m Mask[int32]) {
				y.Assign(m.Where(Neg(x)))
			})
		},
	)

	for i := range Width {
		xi := x.Lane(i)
		var want int32
		if xi%2 != 0 {
			if xi > 2 {
				want = 1
			} else {
				want = 2
			}
		} else if xi < 0 {
			want = -xi
		}
		if y.Lane(i) != want {
			t.Errorf("nested IfElse: lane %d (x=%d): got %v, want %v", i, xi, y.Lane(i), want)
		}
	}
}

func TestWhileMatchesScalar(t *testing.T) {
	x := lanesOf(func(i int) float64 { return float64(i) * 1.5 })
	steps := Zero[float64]()
	limit := Set[float64](10)

	While(All[float64](), func() Mask[float64] { return LessThan(x, limit) }, func(m Mask[float64]) {
		x.Assign(m.Where(Add(x, Set[float64](3))))
		steps.Assign(m.Where(Inc(steps)))
	})

	for i := range Width {
		xi, n := float64(i)*1.5, 0.0
		for xi < 10 {
			xi += 3
			n++
		}
		if x.Lane(i) != xi {
			t.Errorf("While: lane %d: got %v, want %v", i, x.Lane(i), xi)
		}
		if steps.Lane(i) != n {
			t.Errorf("While: lane %d: got %v steps, want %v", i, steps.Lane(i), n)
		}
	}
}

func TestWhileRespectsOuter(t *testing.T) {
	x := Zero[int32]()
	outer := FirstN[int32](1)
	While(outer, func() Mask[int32] { return LessThan(x, Set[int32](5)) }, func(m Mask[int32]) {
		x.Assign(m.Where(Inc(x)))
	})
	for i := range Width {
		want := int32(0)
		if i == 0 {
			want = 5
		}
		if x.Lane(i) != want {
			t.Errorf("While: lane %d: got %v, want %v", i, x.Lane(i), want)
		}
	}
}

func TestWhileNeverTrue(t *testing.T) {
	ran := false
	While(All[uint32](), None[uint32], func(Mask[uint32]) { ran = true })
	if ran {
		t.Error("While: body ran with a false condition")
	}
}

func TestDoWhileRunsOnce(t *testing.T) {
	x := Set[int64](100)
	DoWhile(All[int64](), func(m Mask[int64]) {
		x.Assign(m.Where(Mul(x, Set[int64](2))))
	}, func() Mask[int64] { return LessThan(x, Set[int64](20)) })
	for i := range Width {
		if x.Lane(i) != 200 {
			t.Errorf("DoWhile: lane %d: got %v, want 200", i, x.Lane(i))
		}
	}
}

func TestDoWhileMatchesScalar(t *testing.T) {
	x := lanesOf(func(i int) int64 { return int64(i + 1) })
	DoWhile(All[int64](), func(m Mask[int64]) {
		x.Assign(m.Where(Mul(x, Set[int64](2))))
	}, func() Mask[int64] { return LessThan(x, Set[int64](20)) })
	for i := range Width {
		xi := int64(i + 1)
		for {
			xi *= 2
			if xi >= 20 {
				break
			}
		}
		if x.Lane(i) != xi {
			t.Errorf("DoWhile: lane %d: got %v, want %v", i, x.Lane(i), xi)
		}
	}
}

func TestDoWhileEmptyOuter(t *testing.T) {
	ran := false
	DoWhile(None[int8](), func(Mask[int8]) { ran = true }, All[int8])
	if ran {
		t.Error("DoWhile: body ran with an empty enclosing mask")
	}
}
