// Copyright 2025 go-wide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wide

// All returns a mask with every lane active.
func All[T Lanes]() Mask[T] {
	return MaskOf[T](true)
}

// None returns a mask with no lane active.
func None[T Lanes]() Mask[T] {
	return Mask[T]{}
}

// MaskOf broadcasts b to every lane.
func MaskOf[T Lanes](b bool) Mask[T] {
	var m Mask[T]
	lane := laneBool[T](b)
	for i := range Width {
		m.bits[i] = lane
	}
	return m
}

// MaskFromBools creates a mask from one bool per lane.
func MaskFromBools[T Lanes](bools [Width]bool) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](bools[i])
	}
	return m
}

// MaskFromBits creates a mask from a bitfield; bit i set activates lane i.
func MaskFromBits[T Lanes](bits uint64) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](bits&(1<<uint(i)) != 0)
	}
	return m
}

// BitsFromMask packs the mask into a bitfield, lane i at bit i.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var bits uint64
	for i := range Width {
		if mask.GetBit(i) {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// FirstN returns a mask with the first n lanes active.
func FirstN[T Lanes](n int) Mask[T] {
	var m Mask[T]
	for i := range min(max(n, 0), Width) {
		m.bits[i] = laneBool[T](true)
	}
	return m
}

// MaskFromVec returns a mask with lane i active when v's lane i is nonzero.
func MaskFromVec[T Lanes](v Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](v.lanes[i] != 0)
	}
	return m
}

// VecFromMask converts a mask to a vector of 1 (active) and 0 (inactive).
func VecFromMask[T Lanes](mask Mask[T]) Vec[T] {
	var v Vec[T]
	for i := range Width {
		if mask.GetBit(i) {
			v.lanes[i] = 1
		}
	}
	return v
}

// MaskAs re-expresses a mask at the depth of U, keeping each lane's truth.
// Use it to drive a select on one lane type with a comparison made on another,
// for example a float merge decided by an integer parity test.
func MaskAs[U, T Lanes](mask Mask[T]) Mask[U] {
	var m Mask[U]
	for i := range Width {
		m.bits[i] = laneBool[U](mask.GetBit(i))
	}
	return m
}

// MaskAnd performs a logical AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	for i := range Width {
		a.bits[i] = fromBits[T](toBits(a.bits[i]) & toBits(b.bits[i]))
	}
	return a
}

// MaskOr performs a logical OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	for i := range Width {
		a.bits[i] = fromBits[T](toBits(a.bits[i]) | toBits(b.bits[i]))
	}
	return a
}

// MaskXor performs a logical XOR on two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	for i := range Width {
		a.bits[i] = fromBits[T](toBits(a.bits[i]) ^ toBits(b.bits[i]))
	}
	return a
}

// MaskNot inverts every lane of a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	for i := range Width {
		mask.bits[i] = fromBits[T](^toBits(mask.bits[i]))
	}
	return mask
}

// MaskAndNot returns (NOT a) AND b.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	for i := range Width {
		a.bits[i] = fromBits[T](^toBits(a.bits[i]) & toBits(b.bits[i]))
	}
	return a
}

// MaskEqual returns lanes where a and b hold the same truth value.
func MaskEqual[T Lanes](a, b Mask[T]) Mask[T] {
	return MaskNot(MaskXor(a, b))
}

// MaskNotEqual returns lanes where a and b differ.
func MaskNotEqual[T Lanes](a, b Mask[T]) Mask[T] {
	return MaskXor(a, b)
}

// MaskLess returns lanes where a is false and b is true (false < true).
func MaskLess[T Lanes](a, b Mask[T]) Mask[T] {
	return MaskAndNot(a, b)
}

// MaskGreater returns lanes where a is true and b is false.
func MaskGreater[T Lanes](a, b Mask[T]) Mask[T] {
	return MaskAndNot(b, a)
}

// CountTrue returns the number of active lanes.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if every lane is active.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if no lane is active.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i := range Width {
		if mask.GetBit(i) {
			return i
		}
	}
	return -1
}
