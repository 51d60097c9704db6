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

import "fmt"

// Convert converts every lane of v to U with Go's numeric conversion.
// Float to integer truncates toward zero; out-of-range values are
// implementation-defined, as for scalar Go conversions.
func Convert[U, T Lanes](v Vec[T]) Vec[U] {
	var out Vec[U]
	for i := range Width {
		out.lanes[i] = U(v.lanes[i])
	}
	return out
}

// ConvertToInt32 converts float lanes to int32, truncating toward zero.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	return Convert[int32](v)
}

// ConvertToFloat32 converts lanes to float32.
func ConvertToFloat32[T Lanes](v Vec[T]) Vec[float32] {
	return Convert[float32](v)
}

// BitCast reinterprets the bits of each lane as U without converting the
// value. T and U must have the same depth; BitCast panics otherwise.
func BitCast[U, T Lanes](v Vec[T]) Vec[U] {
	if Depth[U]() != Depth[T]() {
		panic(fmt.Sprintf("wide.BitCast: depth mismatch %d != %d", Depth[U](), Depth[T]()))
	}
	var out Vec[U]
	for i := range Width {
		out.lanes[i] = fromBits[U](toBits(v.lanes[i]))
	}
	return out
}
