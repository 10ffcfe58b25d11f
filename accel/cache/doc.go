// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package cache models tile residency across a three-level cache hierarchy
// and the latency of fetching a tile from it.
//
// Residency is static: it is decided once per tile when the State is built
// and is not updated by accesses. A lookup checks L1, then L2, then L3, and
// falls back to DRAM; the first hit wins.
//
// Example usage:
//
//	state := cache.NewRandom(m, seed)
//	cycles := cache.Latency(row, state, cache.DefaultLatencies())
package cache
