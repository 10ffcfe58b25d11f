// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/accelperf/accel/cache"
	"github.com/ajroetker/accelperf/accel/matrix"
)

// Inputs are the operands of one simulated multiply.
//
// A (MxK), B (KxN) and Cache are read-only during a run. C (MxN) is written
// in place; each worker touches only the rows it owns. C should be zero
// before the run because workers accumulate into it.
type Inputs struct {
	A, B, C *mat.Dense
	Cache   *cache.State
}

// Provision allocates inputs for cfg: A and B populated by fill, C zeroed and
// a random cache state seeded with cfg.Seed.
func Provision(cfg Config, fill matrix.Fill) (Inputs, error) {
	if err := cfg.Validate(); err != nil {
		return Inputs{}, err
	}
	a, err := matrix.New(cfg.M, cfg.K, fill, cfg.Seed)
	if err != nil {
		return Inputs{}, &Error{Kind: KindInvalidConfig, Op: "Provision", Message: "left operand", Err: err}
	}
	b, err := matrix.New(cfg.K, cfg.N, fill, cfg.Seed+1)
	if err != nil {
		return Inputs{}, &Error{Kind: KindInvalidConfig, Op: "Provision", Message: "right operand", Err: err}
	}
	return Inputs{
		A:     a,
		B:     b,
		C:     matrix.Zeros(cfg.M, cfg.N),
		Cache: cache.NewRandom(cfg.M, cfg.Seed),
	}, nil
}

// check verifies that the inputs match cfg's dimensions.
func (in Inputs) check(op string, cfg Config) error {
	if in.A == nil || in.B == nil || in.C == nil || in.Cache == nil {
		return invalidConfig(op, "inputs must include A, B, C and a cache state")
	}
	shapes := []struct {
		name       string
		m          *mat.Dense
		rows, cols int
	}{
		{"A", in.A, cfg.M, cfg.K},
		{"B", in.B, cfg.K, cfg.N},
		{"C", in.C, cfg.M, cfg.N},
	}
	for _, s := range shapes {
		if r, c := s.m.Dims(); r != s.rows || c != s.cols {
			return invalidConfig(op, "%s is %dx%d, want %dx%d", s.name, r, c, s.rows, s.cols)
		}
	}
	if tiles := in.Cache.Tiles(); tiles != cfg.M {
		return invalidConfig(op, "cache state tracks %d tiles, want %d", tiles, cfg.M)
	}
	return nil
}
