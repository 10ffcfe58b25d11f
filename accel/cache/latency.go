// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package cache

import "fmt"

// Latencies holds the cycles needed to fetch one tile from each level.
//
// For the model to be physically meaningful the values should satisfy
// L1 <= L2 <= L3 <= DRAM, but this is not enforced; see Ordered.
type Latencies struct {
	L1   int64
	L2   int64
	L3   int64
	DRAM int64
}

// DefaultLatencies returns latencies typical of a desktop-class hierarchy.
func DefaultLatencies() Latencies {
	return Latencies{
		L1:   4,   // L1 hit
		L2:   10,  // L2 hit
		L3:   30,  // L3 hit
		DRAM: 100, // miss in every cache level
	}
}

// Cycles returns the fetch cost of the given level.
func (l Latencies) Cycles(level Level) int64 {
	switch level {
	case L1:
		return l.L1
	case L2:
		return l.L2
	case L3:
		return l.L3
	case DRAM:
		return l.DRAM
	default:
		panic(fmt.Sprintf("Latencies.Cycles: unknown level %d", int(level)))
	}
}

// Max returns the largest latency of any level.
func (l Latencies) Max() int64 {
	return max(l.L1, l.L2, l.L3, l.DRAM)
}

// Validate rejects negative latencies.
func (l Latencies) Validate() error {
	for level := L1; level <= DRAM; level++ {
		if c := l.Cycles(level); c < 0 {
			return fmt.Errorf("%s latency must be non-negative, got %d", level, c)
		}
	}
	return nil
}

// Ordered reports whether L1 <= L2 <= L3 <= DRAM.
func (l Latencies) Ordered() bool {
	return l.L1 <= l.L2 && l.L2 <= l.L3 && l.L3 <= l.DRAM
}

// Latency returns the cycles needed to fetch the tile, charged at the fastest
// level where it is resident.
func Latency(tile int, state *State, lat Latencies) int64 {
	return lat.Cycles(state.Lookup(tile))
}
