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

// This file provides the elementwise lane operations. Each operation applies
// the scalar Go operator to every lane pair independently, so overflow,
// rounding and IEEE behavior are exactly those of T.

// Load creates a vector from the first Width elements of src.
// Lane i receives src[i]; lanes past the end of src are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.lanes[:], src)
	return v
}

// LoadArray creates a vector from exactly Width scalars, preserving lane order.
func LoadArray[T Lanes](src [Width]T) Vec[T] {
	return Vec[T]{lanes: src}
}

// Store writes a vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.lanes[:])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range Width {
		v.lanes[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	var v Vec[T]
	for i := range Width {
		v.lanes[i] = T(i)
	}
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] += b.lanes[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] -= b.lanes[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] *= b.lanes[i]
	}
	return a
}

// Div performs element-wise division.
// Integer lanes truncate toward zero and panic on a zero divisor, as scalar
// Go division does. Float lanes follow IEEE 754 (x/0 is ±Inf or NaN).
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] /= b.lanes[i]
	}
	return a
}

// Mod computes the element-wise remainder. The sign of the result follows the
// dividend.
func Mod[T Integers](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] %= b.lanes[i]
	}
	return a
}

// Neg negates all lanes. Unsigned lanes wrap around.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

// Inc adds one to every lane.
func Inc[T Lanes](v Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i]++
	}
	return v
}

// Dec subtracts one from every lane.
func Dec[T Lanes](v Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i]--
	}
	return v
}

// MulAdd computes a*b + c per lane. It is not fused.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] = a.lanes[i]*b.lanes[i] + c.lanes[i]
	}
	return a
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] &= b.lanes[i]
	}
	return a
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] |= b.lanes[i]
	}
	return a
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] ^= b.lanes[i]
	}
	return a
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers](v Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i] = ^v.lanes[i]
	}
	return v
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	for i := range Width {
		a.lanes[i] = ^a.lanes[i] & b.lanes[i]
	}
	return a
}

// Shl shifts each lane of v left by the matching lane of count.
// A negative count panics, as it does for scalar Go shifts.
func Shl[T Integers](v, count Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i] <<= count.lanes[i]
	}
	return v
}

// Shr shifts each lane of v right by the matching lane of count.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func Shr[T Integers](v, count Vec[T]) Vec[T] {
	for i := range Width {
		v.lanes[i] >>= count.lanes[i]
	}
	return v
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range Width {
		v.lanes[i] <<= bits
	}
	return v
}

// ShiftRight performs element-wise right shift by a constant number of bits.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range Width {
		v.lanes[i] >>= bits
	}
	return v
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range Width {
		sum += v.lanes[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	out := v.lanes[0]
	for i := 1; i < Width; i++ {
		if v.lanes[i] < out {
			out = v.lanes[i]
		}
	}
	return out
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	out := v.lanes[0]
	for i := 1; i < Width; i++ {
		if v.lanes[i] > out {
			out = v.lanes[i]
		}
	}
	return out
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] == b.lanes[i])
	}
	return m
}

// NotEqual performs element-wise inequality comparison.
// NaN lanes compare unequal to everything, including themselves.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] != b.lanes[i])
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] < b.lanes[i])
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] > b.lanes[i])
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] <= b.lanes[i])
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](a.lanes[i] >= b.lanes[i])
	}
	return m
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range Width {
		m.bits[i] = laneBool[T](v.lanes[i] != v.lanes[i])
	}
	return m
}
