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

// Masked control flow.
//
// Each construct takes the enclosing active mask and hands the body the
// narrowed mask it must write through. A body sees the mask as a parameter,
// so nesting is ordinary function nesting and the inner mask is always a
// subset of the outer one. At the top level pass All[T]().
//
// A body runs only when its mask has an active lane. Lanes outside the mask
// still compute, but writes made with v.Assign(m.Where(x)) leave them alone.

// If runs then with cond AND outer when any lane satisfies it.
func If[T Lanes](outer, cond Mask[T], then func(m Mask[T])) {
	m := MaskAnd(cond, outer)
	if m.AnyTrue() {
		then(m)
	}
}

// IfElse runs then under cond AND outer and orElse under (NOT cond) AND outer.
// The two masks are disjoint and together cover outer; each body is skipped
// when its mask is empty. then always runs before orElse.
func IfElse[T Lanes](outer, cond Mask[T], then, orElse func(m Mask[T])) {
	m := MaskAnd(cond, outer)
	if m.AnyTrue() {
		then(m)
	}
	e := MaskAndNot(m, outer)
	if e.AnyTrue() {
		orElse(e)
	}
}

// While re-evaluates cond before every iteration and runs body under
// cond() AND outer until no lane is active. The mask is rebuilt from outer
// each time, never from the previous iteration's mask.
//
// Termination is the caller's responsibility.
func While[T Lanes](outer Mask[T], cond func() Mask[T], body func(m Mask[T])) {
	for m := MaskAnd(cond(), outer); m.AnyTrue(); m = MaskAnd(cond(), outer) {
		body(m)
	}
}

// DoWhile runs body once under outer, then keeps running it under
// cond() AND outer while any lane is active.
func DoWhile[T Lanes](outer Mask[T], body func(m Mask[T]), cond func() Mask[T]) {
	for m := outer; m.AnyTrue(); m = MaskAnd(cond(), outer) {
		body(m)
	}
}
