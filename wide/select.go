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

// IfThenElse selects elements based on mask: result = mask ? yes : no.
//
// The merge is computed on the raw lane bits, (yes & m) | (no &^ m), so it is
// branch-free and never inspects the values. NaN or Inf in a discarded lane
// does not leak into the result.
func IfThenElse[T Lanes](mask Mask[T], yes, no Vec[T]) Vec[T] {
	for i := range Width {
		m := toBits(mask.bits[i])
		no.lanes[i] = fromBits[T]((toBits(yes.lanes[i]) & m) | (toBits(no.lanes[i]) &^ m))
	}
	return no
}

// Select is an alias for IfThenElse.
func Select[T Lanes](mask Mask[T], yes, no Vec[T]) Vec[T] {
	return IfThenElse(mask, yes, no)
}

// IfThenElseZero returns yes where mask is true, zero elsewhere.
func IfThenElseZero[T Lanes](mask Mask[T], yes Vec[T]) Vec[T] {
	return IfThenElse(mask, yes, Vec[T]{})
}

// IfThenZeroElse returns zero where mask is true, no elsewhere.
func IfThenZeroElse[T Lanes](mask Mask[T], no Vec[T]) Vec[T] {
	return IfThenElse(mask, Vec[T]{}, no)
}

// SelectMask merges two masks lane by lane: mask ? yes : no.
func SelectMask[T Lanes](mask, yes, no Mask[T]) Mask[T] {
	return MaskOr(MaskAnd(mask, yes), MaskAndNot(mask, no))
}

// Pending is a value waiting to be written under a mask.
// It is produced by Mask.Where and consumed by Vec.Assign.
type Pending[T Lanes] struct {
	mask  Mask[T]
	value Vec[T]
}

// PendingMask is the mask counterpart of Pending.
type PendingMask[T Lanes] struct {
	mask  Mask[T]
	value Mask[T]
}

// Where binds value to the active lanes of m for a later Assign.
func (m Mask[T]) Where(value Vec[T]) Pending[T] {
	return Pending[T]{mask: m, value: value}
}

// WhereMask binds a mask value to the active lanes of m for a later Assign.
func (m Mask[T]) WhereMask(value Mask[T]) PendingMask[T] {
	return PendingMask[T]{mask: m, value: value}
}

// Assign writes the pending value into the lanes of v that were active when
// the token was created and leaves the other lanes untouched.
//
//	v.Assign(m.Where(x)) // v = IfThenElse(m, x, v)
func (v *Vec[T]) Assign(p Pending[T]) {
	*v = IfThenElse(p.mask, p.value, *v)
}

// Assign writes the pending mask value into the active lanes of m.
func (m *Mask[T]) Assign(p PendingMask[T]) {
	*m = SelectMask(p.mask, p.value, *m)
}
