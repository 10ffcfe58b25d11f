// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that executes a static
// partition of a row range. A Pool is created once per simulator and reused
// across runs, so repeated simulations do not pay goroutine spawn costs.
//
// Usage:
//
//	pool := workerpool.New(8)
//	defer pool.Close()
//
//	ranges := workerpool.Partition(m, pool.NumWorkers())
//	pool.Run(ranges, func(r workerpool.Range) {
//	    processRows(r.Start, r.End)
//	})
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Range is a half-open interval [Start, End) of row indices owned by exactly
// one worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range holds no rows.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Partition splits [0, n) into parts contiguous, non-overlapping ranges of
// n/parts rows each. The last range absorbs the remainder, so the union is
// exactly [0, n). When parts > n the leading ranges are empty.
//
// Partition panics if parts <= 0 or n < 0.
func Partition(n, parts int) []Range {
	if parts <= 0 {
		panic("Partition: parts must be positive")
	}
	if n < 0 {
		panic("Partition: n must be non-negative")
	}

	size := n / parts
	ranges := make([]Range, parts)
	for i := range parts {
		start := i * size
		end := start + size
		if i == parts-1 {
			end = n
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call to Run.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single range dispatched to a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for range numWorkers {
		go p.worker()
	}

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

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes fn once per range and blocks until every call has returned.
// This is the only synchronization point: all ranges are dispatched together
// and joined together. Empty ranges are skipped.
//
// On a closed pool the ranges run sequentially on the calling goroutine.
func (p *Pool) Run(ranges []Range, fn func(Range)) {
	if p.closed.Load() {
		for _, r := range ranges {
			if !r.Empty() {
				fn(r)
			}
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		if r.Empty() {
			continue
		}
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(r)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
