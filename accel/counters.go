// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import "sync/atomic"

// Counters accumulates cycle counts contributed concurrently by workers.
// Every Add keeps total == compute + load, so the invariant holds after any
// set of Adds regardless of their interleaving.
type Counters struct {
	total   atomic.Int64
	compute atomic.Int64
	load    atomic.Int64
}

// Add charges compute and load cycles, and their sum to the total.
func (c *Counters) Add(compute, load int64) {
	c.compute.Add(compute)
	c.load.Add(load)
	c.total.Add(compute + load)
}

// Reset zeroes all counters. It must not race with Add.
func (c *Counters) Reset() {
	c.total.Store(0)
	c.compute.Store(0)
	c.load.Store(0)
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Result {
	return Result{
		Total:   c.total.Load(),
		Compute: c.compute.Load(),
		Load:    c.load.Load(),
	}
}

// Result holds the aggregate cycle counts of a finished run.
type Result struct {
	Total   int64
	Compute int64
	Load    int64
}

// Utilization returns 100 * Compute / Total, or 0 when Total is 0.
func (r Result) Utilization() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Compute) / float64(r.Total)
}
