// Copyright 2025 The go-wide Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that splits slice
// work into lane-aligned ranges. A Pool is created once and reused across
// many calls, so kernels running over large slices pay no per-call goroutine
// spawn cost.
//
// Every range handed to a callback starts on a multiple of wide.Width, so
// callbacks only ever see a partial vector at the very end of the data.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    algo.Transform(data[start:end], out[start:end], math.Sin[float32])
//	})
package workerpool

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-wide/go-wide/wide"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one unit handed to a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	wide.Logger().Info("workerpool: started", slog.Int("workers", numWorkers), slog.Int("width", wide.Width))
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		wide.Logger().Info("workerpool: closed", slog.Int("workers", p.numWorkers))
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// alignUp rounds n up to a multiple of wide.Width.
func alignUp(n int) int {
	return (n + wide.Width - 1) / wide.Width * wide.Width
}

// ParallelFor splits [0, n) into one contiguous range per worker and blocks
// until all ranges are done. Range boundaries fall on multiples of
// wide.Width. A closed pool runs fn(0, n) on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := alignUp((n + p.numWorkers - 1) / p.numWorkers)
	workers := (n + chunk - 1) / chunk
	if workers == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ForBlocks hands out blocks of blockVecs vectors (blockVecs*wide.Width
// elements) from [0, n) to workers that grab the next block with an atomic
// counter, which balances load when blocks cost different amounts. Blocks
// until every block is processed. A closed pool runs fn(0, n) on the calling
// goroutine.
func (p *Pool) ForBlocks(n, blockVecs int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if blockVecs <= 0 {
		blockVecs = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	blockSize := blockVecs * wide.Width
	numBlocks := (n + blockSize - 1) / blockSize
	workers := min(p.numWorkers, numBlocks)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * blockSize
					if start >= n {
						return
					}
					fn(start, min(start+blockSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
