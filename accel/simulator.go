// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/accelperf/accel/workerpool"
)

// Simulator runs the cycle model for one Config. It owns a persistent pool of
// cfg.Workers goroutines that is reused by every Run.
//
// A Simulator must not be used by more than one Run at a time.
type Simulator struct {
	cfg      Config
	pool     *workerpool.Pool
	ranges   []workerpool.Range
	counters Counters
}

// NewSimulator validates cfg and starts its worker pool.
// Call Close to release the workers.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		cfg:    cfg,
		pool:   workerpool.New(cfg.Workers),
		ranges: workerpool.Partition(cfg.M, cfg.Workers),
	}, nil
}

// Config returns the simulator's configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Ranges returns the row range owned by each worker.
func (s *Simulator) Ranges() []workerpool.Range {
	return append([]workerpool.Range(nil), s.ranges...)
}

// Close stops the worker pool.
func (s *Simulator) Close() {
	s.pool.Close()
}

// Run charges the cycles of C = A x B and computes C in place. All workers
// start together and Run blocks until every one of them has finished; there
// is no partial result.
func (s *Simulator) Run(in Inputs) (Result, error) {
	if err := in.check("Simulator.Run", s.cfg); err != nil {
		return Result{}, err
	}

	start := time.Now()
	s.counters.Reset()
	w := &worker{cfg: s.cfg, in: in, counters: &s.counters}
	s.pool.Run(s.ranges, w.run)
	res := s.counters.Snapshot()

	logrus.WithFields(logrus.Fields{
		"m":       s.cfg.M,
		"k":       s.cfg.K,
		"n":       s.cfg.N,
		"workers": s.cfg.Workers,
		"total":   res.Total,
		"compute": res.Compute,
		"load":    res.Load,
		"elapsed": time.Since(start),
	}).Debug("simulation finished")
	return res, nil
}

// Simulate runs a single simulation with a throwaway Simulator.
func Simulate(cfg Config, in Inputs) (Result, error) {
	s, err := NewSimulator(cfg)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()
	return s.Run(in)
}
