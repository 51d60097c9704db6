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


// Package math provides numeric kernels written entirely with the lane
// operations and masked control flow of package wide.
//
// The kernels favour showing the predicated style over accuracy: Sin is a
// parabolic approximation, the inverse sines invert that same approximation,
// and Pow is a recursive case analysis. Every function is generic over the
// float (or integer) lane type and works for any Width.
//
// Square root:
//   - SqrtNR(x) - Newton-Raphson iteration
//   - SqrtBS(x) - bracketed bisection
//
// Trigonometric:
//   - Sin(x), Cos(x), Tan(x)
//   - AsinNR(s), AsinBS(s) - inverse of Sin's polynomial on [-π/2, π/2]
//
// Powers:
//   - Pow(base, ex)
//   - NthRoot(a, n)
//
// Integer:
//   - Log2(n), Log10(n)
//   - Even(n), Odd(n)
//
// Domain errors are reported per lane as NaN (or -1 for the integer
// logarithms); no kernel returns an error or panics.
package math
