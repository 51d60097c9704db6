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

// Pow computes base^ex for every lane by case analysis:
//
//	base == 0         -> 0
//	ex == 0           -> 1
//	ex < 0            -> 1 / Pow(base, -ex)
//	0 < ex < 1        -> NthRoot(base, trunc(1/ex))
//	trunc(ex) even    -> Pow(base, ex/2)²
//	otherwise         -> base · Pow(base, ex-1)
//
// A case is evaluated for the whole vector whenever any lane needs it, and
// the lanes outside the case receive a neutral exponent in the recursive call
// so the recursion depth is set only by the lanes that take that path.
// Exponents in (0, 1) that are not reciprocals of integers are approximated
// by the nearest lower root. Lanes with an Inf or NaN exponent give NaN.
func Pow[T wide.Floats](base, ex wide.Vec[T]) wide.Vec[T] {
	zero, one := wide.Zero[T](), splat[T](1)
	out := zero

	finite := wide.LessThan(wide.Abs(ex), inf[T]())
	nonZero := wide.MaskAnd(wide.NotEqual(base, zero), finite)

	wide.IfElse(nonZero, wide.Equal(ex, zero),
		func(m wide.Mask[T]) { out.Assign(m.Where(one)) },
		func(m wide.Mask[T]) {
			wide.IfElse(m, wide.LessThan(ex, zero),
				func(neg wide.Mask[T]) {
					e := wide.IfThenElseZero(neg, wide.Neg(ex))
					out.Assign(neg.Where(wide.Div(one, Pow(base, e))))
				},
				func(pos wide.Mask[T]) { powPositive(base, ex, pos, &out) },
			)
		},
	)

	return wide.IfThenElse(finite, out, nan[T]())
}

// powPositive handles the lanes of m whose exponent is positive.
func powPositive[T wide.Floats](base, ex wide.Vec[T], m wide.Mask[T], out *wide.Vec[T]) {
	zero, one, two := wide.Zero[T](), splat[T](1), splat[T](2)

	wide.IfElse(m, wide.LessThan(ex, one),
		func(frac wide.Mask[T]) {
			e := wide.IfThenElse(frac, ex, one)
			out.Assign(frac.Where(NthRoot(base, wide.Trunc(wide.Div(one, e)))))
		},
		func(whole wide.Mask[T]) {
			t := wide.Trunc(ex)
			even := wide.Equal(wide.Mul(wide.Trunc(wide.Div(t, two)), two), t)
			wide.IfElse(whole, even,
				func(m wide.Mask[T]) {
					h := Pow(base, wide.IfThenElseZero(m, wide.Div(ex, two)))
					out.Assign(m.Where(wide.Mul(h, h)))
				},
				func(m wide.Mask[T]) {
					e := wide.IfThenElse(m, wide.Sub(ex, one), zero)
					out.Assign(m.Where(wide.Mul(base, Pow(base, e))))
				},
			)
		},
	)
}

// NthRoot approximates the n-th root of every lane of a with a fixed number
// of Newton steps, x ← ((n-1)·x + a/x^(n-1)) / n, starting from x = 1.
// n holds integer counts; fractional parts are ignored.
func NthRoot[T wide.Floats](a, n wide.Vec[T]) wide.Vec[T] {
	one := splat[T](1)
	n = wide.Trunc(n)
	nm1 := wide.Sub(n, one)
	invN := wide.Div(one, n)

	x := one
	for range nthRootSteps {
		x = wide.Mul(invN, wide.Add(wide.Mul(nm1, x), wide.Div(a, Pow(x, nm1))))
	}
	return x
}
