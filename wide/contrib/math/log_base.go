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

// Log2 returns floor(log2(n)) for every lane by counting right shifts until
// the lane reaches zero. Lanes that are zero or negative yield -1, which is
// the all-ones value for unsigned lanes.
func Log2[T wide.Integers](n wide.Vec[T]) wide.Vec[T] {
	zero := wide.Zero[T]()
	log := wide.Sub(zero, wide.Set[T](1))

	wide.While(wide.GreaterThan(n, zero), func() wide.Mask[T] {
		return wide.NotEqual(n, zero)
	}, func(m wide.Mask[T]) {
		log.Assign(m.Where(wide.Inc(log)))
		n.Assign(m.Where(wide.ShiftRight(n, 1)))
	})
	return log
}

// Log10 returns Log2(n) / Log2(10) with integer division, which is a coarse
// approximation of floor(log10(n)). Non-positive signed lanes yield 0.
func Log10[T wide.Integers](n wide.Vec[T]) wide.Vec[T] {
	return wide.Div(Log2(n), Log2(wide.Set[T](10)))
}

// Even reports the lanes where n % 2 == 0.
func Even[T wide.Integers](n wide.Vec[T]) wide.Mask[T] {
	return wide.Equal(wide.Mod(n, wide.Set[T](2)), wide.Zero[T]())
}

// Odd reports the lanes where n % 2 == 1. The remainder of a negative odd
// lane is -1, so such lanes are neither Even nor Odd.
func Odd[T wide.Integers](n wide.Vec[T]) wide.Mask[T] {
	return wide.Equal(wide.Mod(n, wide.Set[T](2)), wide.Set[T](1))
}
