// Package wide provides fixed-width lane vectors and a mask-based control-flow
// discipline for writing branchy numeric code as branchless, data-parallel code.
//
// Every vector holds Width independent lanes of a scalar type T. The bit depth
// of a lane is the size of T, so Vec[float32] and Vec[int32] share depth 32 and
// Vec[uint8] has depth 8. Operators apply to each lane independently, comparisons
// produce a Mask of the same shape, and IfThenElse merges two candidates lane by
// lane.
//
// Basic usage:
//
//	import "github.com/go-wide/go-wide/wide"
//
//	a := wide.LoadArray([wide.Width]int32{1, 2, 3, 4})
//	b := wide.Zero[int32]()
//
//	// if a is odd { b = a } else { b = -1 }
//	wide.IfElse(wide.All[int32](), wide.NotEqual(wide.Mod(a, wide.Set[int32](2)), wide.Zero[int32]()),
//	    func(m wide.Mask[int32]) { b.Assign(m.Where(a)) },
//	    func(m wide.Mask[int32]) { b.Assign(m.Where(wide.Set[int32](-1))) },
//	)
package wide

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector of Width lanes of T.
//
// The signed, unsigned and floating-point families are all Vec; which one you
// get is decided by T, and operations that only make sense for one family
// (Mod, ShiftLeft, Sin, ...) constrain T accordingly.
//
// Vec is a plain value: copying it copies the lanes.
type Vec[T Lanes] struct {
	lanes [Width]T
}

// Mask is the boolean vector matching Vec[T]: Width lanes of the same depth.
// Each lane holds either all-zero bits (false) or all-one bits (true), never a
// partial pattern, so masks can be merged into values with plain AND/OR.
type Mask[T Lanes] struct {
	bits [Width]T
}

// Common vector shapes.
type (
	I8  = Vec[int8]
	I16 = Vec[int16]
	I32 = Vec[int32]
	I64 = Vec[int64]
	U8  = Vec[uint8]
	U16 = Vec[uint16]
	U32 = Vec[uint32]
	U64 = Vec[uint64]
	F32 = Vec[float32]
	F64 = Vec[float64]
)

// Depth returns the bit depth of one lane of T (8, 16, 32 or 64).
func Depth[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return Width
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.lanes[i]
}

// Array returns a copy of the lanes in lane order.
func (v Vec[T]) Array() [Width]T {
	return v.lanes
}

// Data returns the lanes as a newly allocated slice.
// This is primarily for testing and printing.
func (v Vec[T]) Data() []T {
	out := make([]T, Width)
	copy(out, v.lanes[:])
	return out
}

// Store writes the vector's lanes to dst.
// This is the method form of the wide.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return Width
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for i := range Width {
		if !m.GetBit(i) {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
// This is the reduction used whenever a mask decides a real branch.
func (m Mask[T]) AnyTrue() bool {
	var acc uint64
	for i := range Width {
		acc |= toBits(m.bits[i])
	}
	return acc != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := range Width {
		if m.GetBit(i) {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= Width {
		return false
	}
	return toBits(m.bits[i]) != 0
}

// Bits returns the serial form of the mask: each lane's raw bit pattern,
// zero-extended to 64 bits. True lanes are all-ones at the lane depth.
func (m Mask[T]) Bits() [Width]uint64 {
	var out [Width]uint64
	for i := range Width {
		out[i] = toBits(m.bits[i])
	}
	return out
}

// Bools returns the mask as one bool per lane.
func (m Mask[T]) Bools() [Width]bool {
	var out [Width]bool
	for i := range Width {
		out[i] = m.GetBit(i)
	}
	return out
}

// toBits reinterprets x as an unsigned integer of the same size.
func toBits[T Lanes](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// fromBits is the inverse of toBits; bits above the lane depth are dropped.
func fromBits[T Lanes](b uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = b
	}
	return x
}

// trueBits returns the all-ones pattern at the depth of T.
func trueBits[T Lanes]() uint64 {
	return ^uint64(0) >> (64 - Depth[T]())
}

// laneBool returns the lane value encoding b.
func laneBool[T Lanes](b bool) T {
	if b {
		return fromBits[T](trueBits[T]())
	}
	return fromBits[T](0)
}
