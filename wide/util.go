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

// Lane utilities built from comparisons and IfThenElse only.

// Signed is a constraint for lane types with a meaningful negation.
type Signed interface {
	SignedInts | Floats
}

// Min returns the element-wise minimum. When a lane of a is NaN the lane of
// b is returned.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return IfThenElse(LessThan(a, b), a, b)
}

// Max returns the element-wise maximum. When a lane of b is NaN the lane of
// a is returned.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return IfThenElse(LessThan(a, b), b, a)
}

// Abs returns the element-wise absolute value.
// The most negative integer stays negative, as in two's complement.
func Abs[T Signed](v Vec[T]) Vec[T] {
	return Max(v, Neg(v))
}

// Clamp limits every lane of x to the inclusive range [lo, hi].
func Clamp[T Lanes](lo, x, hi Vec[T]) Vec[T] {
	return Min(Max(x, lo), hi)
}

// Sign returns -1, 0 or +1 per lane. NaN lanes yield 0.
func Sign[T Signed](x Vec[T]) Vec[T] {
	zero := Zero[T]()
	return IfThenElse(GreaterThan(x, zero), Set[T](1),
		IfThenElse(LessThan(x, zero), Set[T](-1), zero))
}

// Trunc rounds every lane toward zero. Lanes at or above 2^52 in magnitude
// are already integral and pass through unchanged, as do Inf and NaN.
func Trunc[T Floats](x Vec[T]) Vec[T] {
	t := Convert[T](Convert[int64](x))
	return IfThenElse(LessThan(Abs(x), Set[T](1<<52)), t, x)
}

// Frac returns the signed fractional part of every lane: x - Trunc(x).
func Frac[T Floats](x Vec[T]) Vec[T] {
	return Sub(x, Trunc(x))
}

// Modf splits every lane into its integer and fractional parts, both with
// the sign of x.
func Modf[T Floats](x Vec[T]) (intPart, frac Vec[T]) {
	intPart = Trunc(x)
	return intPart, Sub(x, intPart)
}

// Floor rounds every lane toward negative infinity. Inf and NaN pass through.
func Floor[T Floats](x Vec[T]) Vec[T] {
	f := Frac(x)
	down := IfThenElse(GreaterEqual(x, Zero[T]()), Sub(x, f), Sub(x, Add(Set[T](1), f)))
	return IfThenElse(GreaterThan(Abs(f), Zero[T]()), down, x)
}

// Ceil rounds every lane toward positive infinity.
func Ceil[T Floats](x Vec[T]) Vec[T] {
	f := Frac(x)
	up := IfThenElse(GreaterEqual(x, Zero[T]()), Add(x, Sub(Set[T](1), f)), Sub(x, f))
	return IfThenElse(GreaterThan(Abs(f), Zero[T]()), up, x)
}

// Round rounds every lane to the nearest integer, halves away from zero.
// The fraction x - Trunc(x) is exact, so values just below a half never
// round up through an inexact x + 0.5.
func Round[T Floats](x Vec[T]) Vec[T] {
	t := Trunc(x)
	step := IfThenElse(GreaterEqual(x, Zero[T]()), Set[T](1), Set[T](-1))
	return IfThenElse(GreaterEqual(Abs(Sub(x, t)), Set[T](0.5)), Add(t, step), t)
}

// Wrap wraps every lane into [0, 1). Tiny negative lanes, where x - Floor(x)
// rounds up to 1, wrap to 0.
func Wrap[T Floats](x Vec[T]) Vec[T] {
	r := Sub(x, Floor(x))
	return IfThenElse(GreaterEqual(r, Set[T](1)), Zero[T](), r)
}

// WrapTo wraps every lane into [0, max).
func WrapTo[T Floats](x, max Vec[T]) Vec[T] {
	r := Mul(max, Wrap(Div(x, max)))
	return IfThenElse(GreaterEqual(r, max), Zero[T](), r)
}

// WrapRange wraps every lane into [min, max).
func WrapRange[T Floats](min, x, max Vec[T]) Vec[T] {
	r := Add(WrapTo(Sub(x, min), Sub(max, min)), min)
	return IfThenElse(GreaterEqual(r, max), min, r)
}
