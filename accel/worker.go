// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"github.com/ajroetker/accelperf/accel/cache"
	"github.com/ajroetker/accelperf/accel/workerpool"
)

// worker charges the cycles of every output element in a row range and
// computes those elements of C.
type worker struct {
	cfg      Config
	in       Inputs
	counters *Counters
}

// run processes rows [r.Start, r.End). It writes only those rows of C.
func (w *worker) run(r workerpool.Range) {
	n, k := w.cfg.N, w.cfg.K
	computePerElem := w.cfg.ComputeCyclesPerElement()
	b := w.in.B.RawMatrix()

	for i := r.Start; i < r.End; i++ {
		// One fetch for the row of A and one for the column of B, both
		// charged at the residency of A's row tile.
		loadPerElem := 2 * cache.Latency(i, w.in.Cache, w.cfg.Latencies)

		aRow := w.in.A.RawRowView(i)
		cRow := w.in.C.RawRowView(i)
		var load, comp int64
		for j := range n {
			load += loadPerElem
			comp += computePerElem

			var sum float64
			for p := range k {
				sum += aRow[p] * b.Data[p*b.Stride+j]
			}
			cRow[j] += sum
		}
		w.counters.Add(comp, load)
	}
}
