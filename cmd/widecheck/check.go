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
	"fmt"
	"io"
	"log/slog"
	stdmath "math"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/algo"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

// result summarizes one kernel run.
type result struct {
	name     string
	lanes    int
	failures int
	maxErr   float64
	worst    float64
}

func (r result) ok() bool { return r.failures == 0 }

// selectKernels keeps the kernels named in the comma-separated list.
// An empty list or "all" keeps everything.
func selectKernels(all []kernel, names string) ([]kernel, error) {
	names = strings.TrimSpace(names)
	if names == "" || names == "all" {
		return all, nil
	}
	wanted := lo.Uniq(lo.Compact(lo.Map(strings.Split(names, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})))
	known := lo.Map(all, func(k kernel, _ int) string { return k.name })
	if missing, _ := lo.Difference(wanted, known); len(missing) > 0 {
		return nil, fmt.Errorf("widecheck: unknown kernel %q (known: %s)", missing[0], strings.Join(known, ","))
	}
	return lo.Filter(all, func(k kernel, _ int) bool { return lo.Contains(wanted, k.name) }), nil
}

// relErr is the absolute error for small references and the relative
// error for large ones. NaN on exactly one side is an infinite error.
func relErr(got, want float64) float64 {
	if stdmath.IsNaN(got) || stdmath.IsNaN(want) {
		if stdmath.IsNaN(got) && stdmath.IsNaN(want) {
			return 0
		}
		return stdmath.Inf(1)
	}
	return stdmath.Abs(got-want) / max(1, stdmath.Abs(want))
}

// runKernel evaluates k over its inputs and compares every lane with the
// scalar reference. A nil pool runs single-threaded. tol overrides the
// kernel's own tolerance when positive.
func runKernel(k kernel, pool *workerpool.Pool, tol float64) (result, error) {
	if tol <= 0 {
		tol = k.tol
	}
	out := make([]float64, len(k.inputs))
	var err error
	switch {
	case k.vec2 != nil:
		err = algo.Transform2(k.inputs, k.second, out, k.vec2)
	case pool != nil:
		err = algo.ParallelTransform(pool, k.inputs, out, k.vec)
	default:
		err = algo.Transform(k.inputs, out, k.vec)
	}
	if err != nil {
		return result{}, fmt.Errorf("widecheck: kernel %s: %w", k.name, err)
	}

	r := result{name: k.name, lanes: len(out)}
	for i, got := range out {
		var b float64
		if k.second != nil {
			b = k.second[i]
		}
		e := relErr(got, k.ref(k.inputs[i], b))
		if e > r.maxErr {
			r.maxErr, r.worst = e, k.inputs[i]
		}
		if e > tol {
			r.failures++
			wide.Logger().Debug("widecheck: lane mismatch",
				slog.String("kernel", k.name), slog.Int("index", i),
				slog.Float64("input", k.inputs[i]), slog.Float64("got", got))
		}
	}
	return r, nil
}

// report prints one line per kernel and a summary, with English number
// formatting.
func report(w io.Writer, results []result) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "wide: %s, Width=%d, register lanes=%d, fits register=%t\n",
		wide.CurrentName(), wide.Width, wide.NativeLanes[float64](), wide.FitsRegister[float64]())
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "FAIL"
		}
		p.Fprintf(w, "%-8s %-4s %8d lanes %6d failed  max err %.6f at %.4f\n",
			r.name, status, r.lanes, r.failures, r.maxErr, r.worst)
	}
	failed := lo.CountBy(results, func(r result) bool { return !r.ok() })
	total := lo.SumBy(results, func(r result) int { return r.lanes })
	p.Fprintf(w, "%d kernels, %d lanes checked, %d failed\n", len(results), total, failed)
}
