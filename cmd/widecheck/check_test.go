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
	"bytes"
	"fmt"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

func TestSelectKernels(t *testing.T) {
	all := defaultKernels(16)

	got, err := selectKernels(all, "all")
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = selectKernels(all, " sin, cos ,sin")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sin", got[0].name)
	assert.Equal(t, "cos", got[1].name)

	_, err = selectKernels(all, "sin,exp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"exp"`)
}

func TestLinspace(t *testing.T) {
	got := linspace(-1, 1, 5)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, got)
}

func TestFloorLog2(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{-3, -1}, {0, -1}, {0.7, -1}, {1, 0}, {2, 1}, {3, 1}, {1024, 10}, {1025.5, 10},
	} {
		assert.Equal(t, tc.want, floorLog2(tc.in, 0), "floorLog2(%v)", tc.in)
	}
}

func TestRelErr(t *testing.T) {
	assert.Equal(t, 0.0, relErr(stdmath.NaN(), stdmath.NaN()))
	assert.True(t, stdmath.IsInf(relErr(1, stdmath.NaN()), 1))
	assert.InDelta(t, 0.5, relErr(0.5, 0), 1e-12)
	assert.InDelta(t, 0.01, relErr(101, 100), 1e-12)
}

func TestDefaultKernelsPass(t *testing.T) {
	for _, k := range defaultKernels(257) {
		r, err := runKernel(k, nil, 0)
		require.NoError(t, err, k.name)
		assert.Zero(t, r.failures, "%s: max err %v at %v", k.name, r.maxErr, r.worst)
		assert.Equal(t, 257, r.lanes)
	}
}

func TestRunKernelParallelMatchesSerial(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	for _, k := range defaultKernels(1001) {
		serial, err := runKernel(k, nil, 0)
		require.NoError(t, err)
		parallel, err := runKernel(k, pool, 0)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, k.name)
	}
}

func TestRunKernelCountsFailures(t *testing.T) {
	k := kernel{
		name:   "off_by_ten",
		tol:    0.5,
		inputs: []float64{1, 2, 3},
		vec:    func(v wide.Vec[float64]) wide.Vec[float64] { return wide.Add(v, wide.Set(10.0)) },
		ref:    func(a, _ float64) float64 { return a },
	}
	r, err := runKernel(k, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, r.failures)
	assert.InDelta(t, 10, r.maxErr, 1e-12)
	assert.Equal(t, 1.0, r.worst)

	r, err = runKernel(k, nil, 20)
	require.NoError(t, err)
	assert.Zero(t, r.failures)
}

func TestRunKernelLengthMismatch(t *testing.T) {
	k := kernel{
		name:   "short",
		inputs: []float64{1, 2, 3},
		second: []float64{1},
		vec2:   func(a, b wide.Vec[float64]) wide.Vec[float64] { return wide.Add(a, b) },
		ref:    func(a, b float64) float64 { return a + b },
	}
	_, err := runKernel(k, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short")
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-kernel", "sqrt_nr,sin", "-samples", "1000", "-parallel", "2"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "sqrt_nr")
	assert.Contains(t, stdout.String(), "2 kernels, 2,000 lanes checked, 0 failed")
	assert.Contains(t, stdout.String(), fmt.Sprintf("register lanes=%d, fits register=%t",
		wide.NativeLanes[float64](), wide.FitsRegister[float64]()))
}

func TestRunReportsFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-kernel", "tan", "-tol", "1e-9"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "FAIL")
}

func TestRunBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-kernel", "nope"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "unknown kernel")
	assert.Equal(t, 2, run([]string{"-samples", "1"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-bogus"}, &stdout, &stderr))
}
