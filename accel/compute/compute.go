// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package compute models the throughput of a SIMD-like array of
// multiply-accumulate (MAC) units.
//
// macUnits lanes each retire one multiply-accumulate every macLatency cycles,
// so a dot product of length n needs ceil(n / macUnits) parallel steps.
package compute

// Steps returns the number of parallel MAC steps for a dot product of length
// vectorLen: ceil(vectorLen / macUnits).
//
// Steps panics if macUnits <= 0.
func Steps(vectorLen, macUnits int) int64 {
	if macUnits <= 0 {
		panic("compute.Steps: macUnits must be positive")
	}
	return int64((vectorLen + macUnits - 1) / macUnits)
}

// Cycles returns the cycles needed for one dot product of length vectorLen
// on macUnits MAC lanes with a per-step latency of macLatency.
//
// Cycles panics if macUnits <= 0.
func Cycles(vectorLen, macUnits, macLatency int) int64 {
	return Steps(vectorLen, macUnits) * int64(macLatency)
}
