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

package algo

import (
	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/math"
)

// SqrtTransform applies math.SqrtNR to each element.
func SqrtTransform[T wide.Floats](input, output []T) error {
	return Transform(input, output, math.SqrtNR[T])
}

// SinTransform applies math.Sin to each element.
func SinTransform[T wide.Floats](input, output []T) error {
	return Transform(input, output, math.Sin[T])
}

// CosTransform applies math.Cos to each element.
func CosTransform[T wide.Floats](input, output []T) error {
	return Transform(input, output, math.Cos[T])
}

// TanTransform applies math.Tan to each element.
func TanTransform[T wide.Floats](input, output []T) error {
	return Transform(input, output, math.Tan[T])
}

// AsinTransform applies math.AsinNR to each element.
func AsinTransform[T wide.Floats](input, output []T) error {
	return Transform(input, output, math.AsinNR[T])
}

// PowTransform computes base[i]^ex[i] for each element.
func PowTransform[T wide.Floats](base, ex, output []T) error {
	return Transform2(base, ex, output, math.Pow[T])
}
