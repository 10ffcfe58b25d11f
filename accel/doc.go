// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package accel is a cycle-accounting performance model of a tiled matrix
// multiplication accelerator.
//
// For C = A x B it estimates how many cycles are spent fetching operand tiles
// through a static L1/L2/L3/DRAM hierarchy (package cache) versus computing
// dot products on an array of MAC units (package compute), and reports
// utilization as compute / total cycles.
//
// Example usage:
//
//	cfg := accel.DefaultConfig()
//	in, err := accel.Provision(cfg, matrix.FillOnes)
//	if err != nil {
//	    return err
//	}
//	res, err := accel.Simulate(cfg, in)
//	fmt.Printf("utilization %.2f%%\n", res.Utilization())
//
// The rows of C are split into cfg.Workers contiguous ranges (the last one
// absorbs the remainder) and processed concurrently. Workers share the three
// cycle counters through atomic adds and write disjoint rows of C, so the
// result does not depend on the worker count.
package accel
