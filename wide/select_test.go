package wide

import (
	"math"
	"testing"
)

// Every one of the 2^Width mask patterns must pick lane i from yes when bit
// i is set and from no otherwise.
func TestIfThenElseAllPatterns(t *testing.T) {
	yes := lanesOf(func(i int) int32 { return int32(100 + i) })
	no := lanesOf(func(i int) int32 { return int32(-1 - i) })
	for pattern := uint64(0); pattern < 1<<Width; pattern++ {
		got := IfThenElse(MaskFromBits[int32](pattern), yes, no)
		for i := range Width {
			want := no.Lane(i)
			if pattern&(1<<uint(i)) != 0 {
				want = yes.Lane(i)
			}
			if got.Lane(i) != want {
				t.Errorf("IfThenElse(%#x): lane %d: got %v, want %v", pattern, i, got.Lane(i), want)
			}
		}
	}
}

func TestIfThenElseFloatPatterns(t *testing.T) {
	yes := lanesOf(func(i int) float64 { return float64(i) + 0.5 })
	no := Set(math.Inf(-1))
	for pattern := uint64(0); pattern < 1<<Width; pattern++ {
		got := Select(MaskFromBits[float64](pattern), yes, no)
		for i := range Width {
			want := no.Lane(i)
			if pattern&(1<<uint(i)) != 0 {
				want = yes.Lane(i)
			}
			if got.Lane(i) != want {
				t.Errorf("Select(%#x): lane %d: got %v, want %v", pattern, i, got.Lane(i), want)
			}
		}
	}
}

func TestIfThenElseDiscardsNaN(t *testing.T) {
	nan := Set(float32(math.NaN()))
	got := IfThenElse(None[float32](), nan, Set[float32](3))
	for i := range Width {
		if got.Lane(i) != 3 {
			t.Errorf("IfThenElse: lane %d: got %v, want 3", i, got.Lane(i))
		}
	}
}

func TestIfThenElseZero(t *testing.T) {
	m := FirstN[uint16](1)
	v := Set[uint16](9)
	a := IfThenElseZero(m, v)
	b := IfThenZeroElse(m, v)
	for i := range Width {
		wantA, wantB := uint16(0), uint16(9)
		if i == 0 {
			wantA, wantB = 9, 0
		}
		if a.Lane(i) != wantA {
			t.Errorf("IfThenElseZero: lane %d: got %v, want %v", i, a.Lane(i), wantA)
		}
		if b.Lane(i) != wantB {
			t.Errorf("IfThenZeroElse: lane %d: got %v, want %v", i, b.Lane(i), wantB)
		}
	}
}

func TestSelectMask(t *testing.T) {
	full := uint64(1)<<Width - 1
	for pm := uint64(0); pm < 1<<Width; pm++ {
		yes, no := uint64(0b1010)&full, uint64(0b0110)&full
		got := SelectMask(MaskFromBits[int8](pm), MaskFromBits[int8](yes), MaskFromBits[int8](no))
		want := (pm & yes) | (^pm & no & full)
		if BitsFromMask(got) != want {
			t.Errorf("SelectMask(%#x): got %#x, want %#x", pm, BitsFromMask(got), want)
		}
	}
}

func TestAssignWritesOnlyActiveLanes(t *testing.T) {
	v := Iota[int32]()
	m := FirstN[int32](1)
	v.Assign(m.Where(Set[int32](77)))
	for i := range Width {
		want := int32(i)
		if i == 0 {
			want = 77
		}
		if v.Lane(i) != want {
			t.Errorf("Assign: lane %d: got %v, want %v", i, v.Lane(i), want)
		}
	}
}

func TestMaskAssign(t *testing.T) {
	b := None[float32]()
	b.Assign(FirstN[float32](2).WhereMask(All[float32]()))
	if got, want := b.CountTrue(), min(2, Width); got != want {
		t.Errorf("Mask.Assign: CountTrue got %d, want %d", got, want)
	}
}
