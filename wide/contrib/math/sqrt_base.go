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

import (
	stdmath "math"

	"github.com/go-wide/go-wide/wide"
)

// splat broadcasts a float64 constant to every lane of T.
func splat[T wide.Floats](x float64) wide.Vec[T] {
	return wide.Set(T(x))
}

// epsilon returns the machine epsilon of T.
func epsilon[T wide.Floats]() float64 {
	if wide.Depth[T]() == 32 {
		return 0x1p-23
	}
	return 0x1p-52
}

// maxNewtonSteps returns the SqrtNR iteration bound for T.
func maxNewtonSteps[T wide.Floats]() int {
	if wide.Depth[T]() == 32 {
		return MaxNewtonSteps32
	}
	return MaxNewtonSteps64
}

// nan returns a vector of quiet NaNs.
func nan[T wide.Floats]() wide.Vec[T] {
	return splat[T](stdmath.NaN())
}

// inf returns a vector of +Inf.
func inf[T wide.Floats]() wide.Vec[T] {
	return splat[T](stdmath.Inf(1))
}

// SqrtNR computes the square root of every lane by Newton-Raphson iteration.
//
// Starting from a guess of 1, each active lane is refined with
// guess = (x/guess + guess) / 2 until the guess stops changing or
// |guess² - x| drops below the machine epsilon of T. At most MaxNewtonSteps32
// (float32) or MaxNewtonSteps64 (float64) iterations run. Negative lanes
// take no part and come back as NaN.
func SqrtNR[T wide.Floats](x wide.Vec[T]) wide.Vec[T] {
	notNaN := wide.GreaterEqual(x, wide.Zero[T]())
	guess := splat[T](1)
	last := guess
	half := splat[T](0.5)
	eps := splat[T](epsilon[T]())

	limit := maxNewtonSteps[T]()
	steps := 0
	wide.DoWhile(notNaN, func(m wide.Mask[T]) {
		last = guess
		guess.Assign(m.Where(wide.Mul(wide.Add(wide.Div(x, guess), guess), half)))
		steps++
	}, func() wide.Mask[T] {
		if steps >= limit {
			return wide.None[T]()
		}
		moved := wide.NotEqual(last, guess)
		far := wide.GreaterEqual(wide.Abs(wide.Sub(wide.Mul(guess, guess), x)), eps)
		return wide.MaskAnd(moved, far)
	})

	return wide.IfThenElse(notNaN, guess, nan[T]())
}

// SqrtBS computes the square root of every lane by bisection.
//
// The bracket starts at [min(1, x), max(1, x)] and is tightened by decades
// (lo *= 10 while 100·lo² < x, hi *= 0.1 while 0.01·hi² > x). Then Depth[T]()
// bisection steps run; a lane whose midpoint squares exactly to x stops early.
// Zero maps to zero and negative lanes come back as NaN.
func SqrtBS[T wide.Floats](x wide.Vec[T]) wide.Vec[T] {
	zero := wide.Zero[T]()
	notNaN := wide.GreaterEqual(x, zero)
	positive := wide.GreaterThan(x, zero)
	one := splat[T](1)
	half := splat[T](0.5)

	lo := wide.Min(one, x)
	hi := wide.Max(one, x)

	p100, p10 := splat[T](100), splat[T](10)
	wide.While(positive, func() wide.Mask[T] {
		return wide.LessThan(wide.Mul(p100, wide.Mul(lo, lo)), x)
	}, func(m wide.Mask[T]) {
		lo.Assign(m.Where(wide.Mul(lo, p10)))
	})

	p001, p01 := splat[T](0.01), splat[T](0.1)
	wide.While(positive, func() wide.Mask[T] {
		return wide.GreaterThan(wide.Mul(p001, wide.Mul(hi, hi)), x)
	}, func(m wide.Mask[T]) {
		hi.Assign(m.Where(wide.Mul(hi, p01)))
	})

	mid := wide.Mul(wide.Add(lo, hi), half)
	active := positive
	for range wide.Depth[T]() {
		mid.Assign(active.Where(wide.Mul(wide.Add(lo, hi), half)))
		mid2 := wide.Mul(mid, mid)
		active = wide.MaskAnd(active, wide.NotEqual(mid2, x))
		wide.IfElse(active, wide.GreaterThan(mid2, x),
			func(m wide.Mask[T]) { hi.Assign(m.Where(mid)) },
			func(m wide.Mask[T]) { lo.Assign(m.Where(mid)) },
		)
		if !active.AnyTrue() {
			break
		}
	}

	mid = wide.IfThenElse(positive, mid, zero)
	return wide.IfThenElse(notNaN, mid, nan[T]())
}
