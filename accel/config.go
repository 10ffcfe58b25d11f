// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"math"
	"math/bits"

	"github.com/ajroetker/accelperf/accel/cache"
	"github.com/ajroetker/accelperf/accel/compute"
)

// MaxElements bounds the element count of any single matrix. Larger matrices
// are rejected as a resource error before anything is allocated.
const MaxElements = 1 << 31

// Config holds every parameter of one simulation. It is passed by value into
// the simulator and threaded down to the latency and compute models; there is
// no package-level state, so runs with different configs can coexist.
type Config struct {
	M int // Rows of A and C
	K int // Columns of A, rows of B (contraction dimension)
	N int // Columns of B and C

	MACUnits   int // Parallel MAC lanes
	MACLatency int // Cycles per parallel MAC step

	Latencies cache.Latencies

	Workers int    // Concurrent workers, one row range each
	Seed    uint64 // Seed for random cache residency and random fills
}

// DefaultConfig returns a 1024x1024x1024 multiply on 64 MAC units with
// 8 workers.
func DefaultConfig() Config {
	return Config{
		M:          1024,
		K:          1024,
		N:          1024,
		MACUnits:   64,
		MACLatency: 1,
		Latencies:  cache.DefaultLatencies(),
		Workers:    8,
		Seed:       1,
	}
}

// Validate rejects configurations the model cannot run. Errors match
// ErrInvalidConfig or ErrResource under errors.Is.
func (c Config) Validate() error {
	const op = "Config.Validate"

	positive := []struct {
		name  string
		value int
	}{
		{"M", c.M},
		{"K", c.K},
		{"N", c.N},
		{"MAC units", c.MACUnits},
		{"MAC latency", c.MACLatency},
		{"workers", c.Workers},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return invalidConfig(op, "%s must be positive, got %d", p.name, p.value)
		}
	}
	if err := c.Latencies.Validate(); err != nil {
		return &Error{Kind: KindInvalidConfig, Op: op, Message: "bad latencies", Err: err}
	}

	shapes := []struct {
		name       string
		rows, cols int
	}{
		{"A", c.M, c.K},
		{"B", c.K, c.N},
		{"C", c.M, c.N},
	}
	for _, s := range shapes {
		n, ok := mulChecked(uint64(s.rows), uint64(s.cols))
		if !ok || n > MaxElements {
			return resourceError(op, "matrix %s (%dx%d) exceeds %d elements", s.name, s.rows, s.cols, MaxElements)
		}
	}

	if _, ok := c.cycleBound(); !ok {
		return resourceError(op, "cycle counts for %dx%dx%d would overflow int64", c.M, c.K, c.N)
	}
	return nil
}

// ComputeCyclesPerElement returns the MAC cycles charged for one output
// element.
func (c Config) ComputeCyclesPerElement() int64 {
	return compute.Cycles(c.K, c.MACUnits, c.MACLatency)
}

// cycleBound returns an upper bound on the total cycles of a run: every output
// element costs at most two fetches at the slowest level plus one dot product.
func (c Config) cycleBound() (uint64, bool) {
	dot, ok := mulChecked(uint64(compute.Steps(c.K, c.MACUnits)), uint64(c.MACLatency))
	if !ok {
		return 0, false
	}
	fetch, ok := mulChecked(2, uint64(c.Latencies.Max()))
	if !ok || fetch+dot > math.MaxInt64 {
		return 0, false
	}
	elems, ok := mulChecked(uint64(c.M), uint64(c.N))
	if !ok {
		return 0, false
	}
	return mulChecked(elems, fetch+dot)
}

// mulChecked multiplies a and b, reporting false if the product does not fit
// in an int64.
func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0 && lo <= math.MaxInt64
}
