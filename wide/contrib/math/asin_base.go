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

// The inverse sines invert the same polynomial Sin uses, not the true sine,
// so AsinNR(Sin(x)) ≈ x on [-π/2, π/2] where the polynomial is monotonic.
// Both stop once a lane's step falls under asinTolerance. Lanes with
// |s| > 1 have no root there and come back as NaN.

// AsinNR approximates asin(s) by Newton-Raphson on sinPoly(x) - s,
// starting from x = s.
func AsinNR[T wide.Floats](s wide.Vec[T]) wide.Vec[T] {
	inRange := wide.LessEqual(wide.Abs(s), splat[T](1))
	tol := splat[T](asinTolerance)

	step := func(x wide.Vec[T]) wide.Vec[T] {
		return wide.Sub(x, wide.Div(wide.Sub(sinPoly(x), s), sinPolyDeriv(x)))
	}

	x0 := wide.IfThenElse(inRange, s, wide.Zero[T]())
	x1 := step(x0)
	steps := 1
	wide.While(inRange, func() wide.Mask[T] {
		if steps >= maxAsinSteps {
			return wide.None[T]()
		}
		return wide.GreaterEqual(wide.Abs(wide.Sub(x1, x0)), tol)
	}, func(m wide.Mask[T]) {
		x0.Assign(m.Where(x1))
		x1.Assign(m.Where(step(x0)))
		steps++
	})

	return wide.IfThenElse(inRange, x1, nan[T]())
}

// AsinBS approximates asin(s) by bisection of sinPoly(x) - s over
// [-π/2, π/2]. The polynomial increases on that interval, so the sign of
// sinPoly(c) - s alone says which half holds the root.
func AsinBS[T wide.Floats](s wide.Vec[T]) wide.Vec[T] {
	inRange := wide.LessEqual(wide.Abs(s), splat[T](1))
	s = wide.Clamp(splat[T](-1), s, splat[T](1))
	tol := splat[T](asinTolerance)
	half := splat[T](0.5)
	zero := wide.Zero[T]()

	a := splat[T](-PiOver2)
	b := splat[T](PiOver2)
	wide.While(inRange, func() wide.Mask[T] {
		return wide.GreaterThan(wide.Abs(wide.Sub(b, a)), tol)
	}, func(m wide.Mask[T]) {
		c := wide.Mul(wide.Add(a, b), half)
		fc := wide.Sub(sinPoly(c), s)
		wide.IfElse(m, wide.GreaterEqual(fc, zero),
			func(m wide.Mask[T]) { b.Assign(m.Where(c)) },
			func(m wide.Mask[T]) { a.Assign(m.Where(c)) },
		)
	})

	return wide.IfThenElse(inRange, wide.Mul(wide.Add(a, b), half), nan[T]())
}
