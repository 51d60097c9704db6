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

package main

import (
	stdmath "math"

	"github.com/samber/lo"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/algo"
	"github.com/go-wide/go-wide/wide/contrib/math"
)

// kernel pairs a lane kernel with the scalar function it approximates.
// Binary kernels set vec2 and take their second operand from second.
type kernel struct {
	name   string
	tol    float64
	inputs []float64
	second []float64
	vec    algo.VecFunc[float64]
	vec2   algo.VecFunc2[float64]
	ref    func(a, b float64) float64
}

// linspace returns n evenly spaced points covering [start, end].
func linspace(start, end float64, n int) []float64 {
	step := (end - start) / float64(n-1)
	return lo.Map(lo.Range(n), func(i int, _ int) float64 {
		return start + float64(i)*step
	})
}

func unary(f func(float64) float64) func(a, _ float64) float64 {
	return func(a, _ float64) float64 { return f(a) }
}

// floorLog2 is the scalar reading of math.Log2: -1 for non-positive input.
func floorLog2(a, _ float64) float64 {
	n := int64(a)
	if n <= 0 {
		return -1
	}
	r := -1.0
	for ; n > 0; n >>= 1 {
		r++
	}
	return r
}

func log2Int(v wide.Vec[float64]) wide.Vec[float64] {
	return wide.Convert[float64](math.Log2(wide.Convert[int64](v)))
}

// defaultKernels returns every kernel the harness knows about.
func defaultKernels(samples int) []kernel {
	angles := linspace(-2*stdmath.Pi, 2*stdmath.Pi, samples)
	bases := linspace(0.5, 3, samples)
	exps := lo.Map(lo.Range(samples), func(i int, _ int) float64 {
		return []float64{-2, -1, 0, 0.5, 1, 2, 2.5, 3}[i%8]
	})
	return []kernel{
		{name: "sqrt_nr", tol: 1e-3, inputs: linspace(0, 1000, samples), vec: math.SqrtNR[float64], ref: unary(stdmath.Sqrt)},
		{name: "sqrt_bs", tol: 1e-3, inputs: linspace(0, 1000, samples), vec: math.SqrtBS[float64], ref: unary(stdmath.Sqrt)},
		{name: "sin", tol: 1.5e-3, inputs: angles, vec: math.Sin[float64], ref: unary(stdmath.Sin)},
		{name: "cos", tol: 1.5e-3, inputs: angles, vec: math.Cos[float64], ref: unary(stdmath.Cos)},
		{name: "tan", tol: 0.05, inputs: linspace(-1.2, 1.2, samples), vec: math.Tan[float64], ref: unary(stdmath.Tan)},
		{name: "asin_nr", tol: 0.02, inputs: linspace(-1, 1, samples), vec: math.AsinNR[float64], ref: unary(stdmath.Asin)},
		{name: "asin_bs", tol: 0.02, inputs: linspace(-1, 1, samples), vec: math.AsinBS[float64], ref: unary(stdmath.Asin)},
		{name: "pow", tol: 1e-3, inputs: bases, second: exps, vec2: math.Pow[float64], ref: stdmath.Pow},
		{name: "log2", tol: 0, inputs: linspace(-8, 4096, samples), vec: log2Int, ref: floorLog2},
	}
}
