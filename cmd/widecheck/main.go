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

// Command widecheck compares the wide math kernels lane by lane with the
// scalar functions of the standard math package and reports the worst error.
//
// Usage:
//
//	widecheck                        # all kernels, default tolerances
//	widecheck -kernel sin,cos -v     # selected kernels with debug logging
//	widecheck -tol 1e-4 -parallel 8  # tighter tolerance, parallel transform
//
// The exit status is 1 when any lane is out of tolerance.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("widecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tol := fs.Float64("tol", 0, "Override every kernel tolerance (0 keeps the per-kernel defaults)")
	kernels := fs.String("kernel", "all", "Comma-separated kernels to check, or 'all'")
	samples := fs.Int("samples", 4099, "Inputs per kernel")
	verbose := fs.Bool("v", false, "Log debug events to stderr")
	parallel := fs.Int("parallel", 0, "Worker count for parallel transforms (0 runs single-threaded)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *samples < 2 {
		fmt.Fprintf(stderr, "Error: -samples must be at least 2\n")
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	wide.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer wide.SetLogger(nil)

	selected, err := selectKernels(defaultKernels(*samples), *kernels)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var pool *workerpool.Pool
	if *parallel > 0 {
		pool = workerpool.New(*parallel)
		defer pool.Close()
	}

	results := make([]result, 0, len(selected))
	failed := false
	for _, k := range selected {
		wide.Logger().Debug("widecheck: running", slog.String("kernel", k.name), slog.Int("lanes", len(k.inputs)))
		r, err := runKernel(k, pool, *tol)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		failed = failed || !r.ok()
		results = append(results, r)
	}
	report(stdout, results)
	if failed {
		return 1
	}
	return 0
}
