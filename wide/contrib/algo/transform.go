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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

// ErrLengthMismatch is returned when an output slice is shorter than its
// input.
var ErrLengthMismatch = errors.New("algo: output shorter than input")

// VecFunc is a lane kernel.
type VecFunc[T wide.Lanes] func(wide.Vec[T]) wide.Vec[T]

// VecFunc2 is a two-operand lane kernel.
type VecFunc2[T wide.Lanes] func(a, b wide.Vec[T]) wide.Vec[T]

// PredFunc is a lane predicate.
type PredFunc[T wide.Lanes] func(wide.Vec[T]) wide.Mask[T]

// blockVecs is the number of vectors per parallel block.
const blockVecs = 256

func checkLen(in, out int) error {
	if out < in {
		return fmt.Errorf("%w: input %d, output %d", ErrLengthMismatch, in, out)
	}
	return nil
}

// transformRange applies fn to input[start:end] and writes output[start:end].
func transformRange[T wide.Lanes](input, output []T, start, end int, fn VecFunc[T]) {
	in, out := input[start:end], output[start:end]
	wide.ProcessWithTail(len(in),
		func(offset int) {
			fn(wide.Load(in[offset:])).Store(out[offset:])
		},
		func(offset, count int) {
			mask := wide.TailMask[T](count)
			wide.BlendedStore(fn(wide.MaskLoad(mask, in[offset:])), mask, out[offset:])
		},
	)
}

// Transform applies fn to every element of input and stores the results in
// output. The tail lanes past len(input) are fed zeros and their results are
// discarded.
func Transform[T wide.Lanes](input, output []T, fn VecFunc[T]) error {
	if err := checkLen(len(input), len(output)); err != nil {
		return err
	}
	transformRange(input, output, 0, len(input), fn)
	return nil
}

// Transform2 applies fn to element pairs of a and b.
func Transform2[T wide.Lanes](a, b, output []T, fn VecFunc2[T]) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: operands %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	if err := checkLen(len(a), len(output)); err != nil {
		return err
	}
	wide.ProcessWithTail(len(a),
		func(offset int) {
			fn(wide.Load(a[offset:]), wide.Load(b[offset:])).Store(output[offset:])
		},
		func(offset, count int) {
			mask := wide.TailMask[T](count)
			r := fn(wide.MaskLoad(mask, a[offset:]), wide.MaskLoad(mask, b[offset:]))
			wide.BlendedStore(r, mask, output[offset:])
		},
	)
	return nil
}

// ParallelTransform is Transform split across the workers of pool in
// lane-aligned blocks.
func ParallelTransform[T wide.Lanes](pool *workerpool.Pool, input, output []T, fn VecFunc[T]) error {
	if err := checkLen(len(input), len(output)); err != nil {
		return err
	}
	wide.Logger().Debug("algo: parallel transform",
		slog.Int("len", len(input)), slog.Int("workers", pool.NumWorkers()), slog.Int("block", blockVecs*wide.Width))
	pool.ForBlocks(len(input), blockVecs, func(start, end int) {
		transformRange(input, output, start, end, fn)
	})
	return nil
}

// TransformContext is Transform split into lane-aligned blocks that run on
// at most workers goroutines (GOMAXPROCS when workers <= 0). It stops
// handing out blocks once ctx is done and returns ctx's error; blocks
// already written stay written.
func TransformContext[T wide.Lanes](ctx context.Context, workers int, input, output []T, fn VecFunc[T]) error {
	if err := checkLen(len(input), len(output)); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	blockSize := blockVecs * wide.Width
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(input); start += blockSize {
		if gctx.Err() != nil {
			break
		}
		end := min(start+blockSize, len(input))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			transformRange(input, output, start, end, fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("algo: transform cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("algo: transform cancelled: %w", err)
	}
	return nil
}

// CountIf returns the number of elements of input for which pred is true.
func CountIf[T wide.Lanes](input []T, pred PredFunc[T]) int {
	count := 0
	wide.ProcessWithTail(len(input),
		func(offset int) {
			count += pred(wide.Load(input[offset:])).CountTrue()
		},
		func(offset, n int) {
			mask := wide.TailMask[T](n)
			count += wide.MaskAnd(pred(wide.MaskLoad(mask, input[offset:])), mask).CountTrue()
		},
	)
	return count
}
