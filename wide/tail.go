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

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of Width.
//
// Example:
//
//	remaining := len(data) % wide.Width
//	if remaining > 0 {
//	    mask := wide.TailMask[float32](remaining)
//	    v := wide.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    wide.BlendedStore(result, mask, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// MaskLoad loads the active lanes from src and zeroes the rest.
// Inactive lanes never read src, so src may be shorter than Width.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	var v Vec[T]
	for i := range min(len(src), Width) {
		if mask.GetBit(i) {
			v.lanes[i] = src[i]
		}
	}
	return v
}

// ProcessWithTail walks size elements in steps of Width.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of Width
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / Width
	for i := range fullVectors {
		fullFn(i * Width)
	}

	remaining := size % Width
	if remaining > 0 {
		tailFn(fullVectors*Width, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of Width.
func AlignedSize(size int) int {
	return ((size + Width - 1) / Width) * Width
}

// IsAligned returns true if size is a multiple of Width.
func IsAligned(size int) bool {
	return size%Width == 0
}
