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

// Package algo runs lane kernels over slices of any length.
//
// A kernel is any func(wide.Vec[T]) wide.Vec[T], such as math.Sin[float32]
// or a closure built from wide operations. The transforms walk the input in
// steps of wide.Width; the final partial vector is loaded under a tail mask
// and only its valid lanes are stored, so output elements past len(input)
// are never touched.
//
// Transform API:
//   - Transform(input, output, fn)
//   - Transform2(a, b, output, fn)
//   - ParallelTransform(pool, input, output, fn)
//   - TransformContext(ctx, workers, input, output, fn)
//   - CountIf(input, pred)
//
// Named transforms for the kernels in contrib/math:
//   - SqrtTransform, SinTransform, CosTransform, TanTransform
//   - AsinTransform, PowTransform
//
// # Example Usage
//
//	import "github.com/go-wide/go-wide/wide/contrib/algo"
//
//	out := make([]float32, len(in))
//	if err := algo.Transform(in, out, func(v wide.Vec[float32]) wide.Vec[float32] {
//	    return wide.MulAdd(v, v, v)
//	}); err != nil {
//	    return err
//	}
package algo
