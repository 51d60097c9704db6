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

package math

import "github.com/go-wide/go-wide/wide"

// sinPoly evaluates the sine approximation on an argument already in
// [-π, π]:
//
//	s1 = B·r - C·r·|r|
//	s  = P·(s1·|s1| - s1) + s1
func sinPoly[T wide.Floats](r wide.Vec[T]) wide.Vec[T] {
	s1 := wide.Sub(wide.Mul(splat[T](sinB), r), wide.Mul(wide.Mul(splat[T](sinC), r), wide.Abs(r)))
	return wide.Add(wide.Mul(splat[T](sinP), wide.Sub(wide.Mul(s1, wide.Abs(s1)), s1)), s1)
}

// sinPolyDeriv is the derivative of sinPoly with respect to r.
func sinPolyDeriv[T wide.Floats](r wide.Vec[T]) wide.Vec[T] {
	s1 := wide.Sub(wide.Mul(splat[T](sinB), r), wide.Mul(wide.Mul(splat[T](sinC), r), wide.Abs(r)))
	ds1 := wide.Sub(splat[T](sinB), wide.Mul(splat[T](2*sinC), wide.Abs(r)))
	// d/dr [P·(s1·|s1| - s1) + s1] = ds1·(P·(2|s1| - 1) + 1)
	k := wide.Add(wide.Mul(splat[T](sinP), wide.Sub(wide.Mul(splat[T](2), wide.Abs(s1)), splat[T](1))), splat[T](1))
	return wide.Mul(ds1, k)
}

// Sin approximates sin(x) for every lane. The argument is wrapped into
// [-π, π) first, so any finite input is accepted. The absolute error stays
// below about 0.001.
func Sin[T wide.Floats](x wide.Vec[T]) wide.Vec[T] {
	r := wide.WrapRange(splat[T](-Pi), x, splat[T](Pi))
	return sinPoly(r)
}

// Cos approximates cos(x) as Sin(π/2 - x).
func Cos[T wide.Floats](x wide.Vec[T]) wide.Vec[T] {
	return Sin(wide.Sub(splat[T](PiOver2), x))
}

// Tan approximates tan(x) as Sin(x)/Cos(x). Lanes where the cosine
// approximation is zero give ±Inf or NaN.
func Tan[T wide.Floats](x wide.Vec[T]) wide.Vec[T] {
	return wide.Div(Sin(x), Cos(x))
}
