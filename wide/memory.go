package wide

import (
	"log/slog"
	"unsafe"
)

// This file provides the serial form of vectors and masks and the aligned
// reinterpretation of caller-owned buffers.

// Serialize returns the lanes of v as a slice that aliases v.
// Writing through the slice modifies v. Lane i is element i.
func Serialize[T Lanes](v *Vec[T]) []T {
	return v.lanes[:]
}

// SerializeMask returns the raw lane patterns of m as a slice that aliases m.
// Each element is either zero or the all-ones pattern of T; writing any other
// pattern breaks the mask invariant.
func SerializeMask[T Lanes](m *Mask[T]) []T {
	return m.bits[:]
}

// VecAlignment returns the natural alignment of Vec[T] in bytes: the size of
// the vector.
func VecAlignment[T Lanes]() int {
	var v Vec[T]
	return int(unsafe.Sizeof(v))
}

// AlignedView reinterprets the first Width elements of buf as a vector,
// without copying. Writes through the returned pointer are visible in buf.
//
// alignment is in bytes; 0 selects VecAlignment[T](). AlignedView returns
// nil when &buf[0] is not a multiple of alignment, when buf is shorter than
// Width, or when alignment is not a power of two. Use AlignedSlice to obtain
// a buffer that always qualifies.
func AlignedView[T Lanes](buf []T, alignment int) *Vec[T] {
	if alignment == 0 {
		alignment = VecAlignment[T]()
	}
	if alignment < 0 || alignment&(alignment-1) != 0 {
		Logger().Debug("wide: aligned view rejected", slog.String("reason", "alignment"), slog.Int("alignment", alignment))
		return nil
	}
	if len(buf) < Width {
		Logger().Debug("wide: aligned view rejected", slog.String("reason", "short"), slog.Int("len", len(buf)))
		return nil
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	if addr&uintptr(alignment-1) != 0 {
		Logger().Debug("wide: aligned view rejected", slog.String("reason", "misaligned"),
			slog.Int("alignment", alignment), slog.Uint64("addr", uint64(addr)))
		return nil
	}
	return (*Vec[T])(unsafe.Pointer(&buf[0]))
}

// AlignedSlice allocates a zeroed slice of n elements whose first element is
// aligned to VecAlignment[T]() bytes, so AlignedView(s[i*Width:], 0) succeeds
// for every full vector in it.
func AlignedSlice[T Lanes](n int) []T {
	var dummy T
	elem := int(unsafe.Sizeof(dummy))
	alignment := VecAlignment[T]()
	buf := make([]T, n+alignment/elem)
	if len(buf) == 0 {
		return buf
	}
	addr := int(uintptr(unsafe.Pointer(&buf[0])))
	off := ((alignment - addr%alignment) % alignment) / elem
	return buf[off : off+n : off+n]
}

// BlendedStore stores lanes of v into dst only where mask is true and
// leaves dst unchanged elsewhere. dst may be shorter than Width.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	for i := range min(len(dst), Width) {
		if mask.GetBit(i) {
			dst[i] = v.lanes[i]
		}
	}
}
