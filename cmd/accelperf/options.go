// Copyright 2025 accelperf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/accelperf/accel"
	"github.com/ajroetker/accelperf/accel/cache"
	"github.com/ajroetker/accelperf/accel/matrix"
)

// options are the flags shared by every simulation command.
type options struct {
	cfg       accel.Config
	residency string
	fill      string
	logLevel  string
}

func newOptions() *options {
	return &options{
		cfg:       accel.DefaultConfig(),
		residency: "random",
		fill:      string(matrix.FillOnes),
		logLevel:  "info",
	}
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.cfg.M, "m", o.cfg.M, "rows of A and C")
	fs.IntVar(&o.cfg.K, "k", o.cfg.K, "columns of A and rows of B")
	fs.IntVar(&o.cfg.N, "n", o.cfg.N, "columns of B and C")
	fs.IntVar(&o.cfg.MACUnits, "mac-units", o.cfg.MACUnits, "number of parallel MAC units")
	fs.IntVar(&o.cfg.MACLatency, "mac-latency", o.cfg.MACLatency, "cycles per parallel MAC step")
	fs.Int64Var(&o.cfg.Latencies.L1, "l1", o.cfg.Latencies.L1, "cycles to load a tile from L1")
	fs.Int64Var(&o.cfg.Latencies.L2, "l2", o.cfg.Latencies.L2, "cycles to load a tile from L2")
	fs.Int64Var(&o.cfg.Latencies.L3, "l3", o.cfg.Latencies.L3, "cycles to load a tile from L3")
	fs.Int64Var(&o.cfg.Latencies.DRAM, "dram", o.cfg.Latencies.DRAM, "cycles to load a tile from DRAM")
	fs.IntVarP(&o.cfg.Workers, "workers", "w", o.cfg.Workers, "number of concurrent workers")
	fs.Uint64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "seed for random cache residency and random fills")
	fs.StringVar(&o.residency, "residency", o.residency, "tile residency: random, l1, l2, l3 or miss")
	fs.StringVar(&o.fill, "fill", o.fill, "input fill: ones or random")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (debug, info, warn, error)")
}

// setupLogging points logrus at w and applies --log-level.
func (o *options) setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logrus.SetOutput(w)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// validate checks the configuration and warns about physically odd latencies.
func (o *options) validate() error {
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	if !o.cfg.Latencies.Ordered() {
		logrus.WithFields(logrus.Fields{
			"l1":   o.cfg.Latencies.L1,
			"l2":   o.cfg.Latencies.L2,
			"l3":   o.cfg.Latencies.L3,
			"dram": o.cfg.Latencies.DRAM,
		}).Warn("latencies are not ordered L1 <= L2 <= L3 <= DRAM")
	}
	return nil
}

// cacheState builds the residency fixture selected by --residency.
func (o *options) cacheState() (*cache.State, error) {
	switch o.residency {
	case "random":
		return cache.NewRandom(o.cfg.M, o.cfg.Seed), nil
	case "l1":
		return cache.Uniform(o.cfg.M, cache.L1), nil
	case "l2":
		return cache.Uniform(o.cfg.M, cache.L2), nil
	case "l3":
		return cache.Uniform(o.cfg.M, cache.L3), nil
	case "miss":
		return cache.Uniform(o.cfg.M), nil
	default:
		return nil, fmt.Errorf("--residency: unknown value %q (want random, l1, l2, l3 or miss)", o.residency)
	}
}

// operands are the read-only inputs shared by every run of a command.
type operands struct {
	a, b  *mat.Dense
	state *cache.State
}

func (o *options) operands() (operands, error) {
	fill, err := matrix.ParseFill(o.fill)
	if err != nil {
		return operands{}, fmt.Errorf("--fill: %w", err)
	}
	state, err := o.cacheState()
	if err != nil {
		return operands{}, err
	}
	a, err := matrix.New(o.cfg.M, o.cfg.K, fill, o.cfg.Seed)
	if err != nil {
		return operands{}, err
	}
	b, err := matrix.New(o.cfg.K, o.cfg.N, fill, o.cfg.Seed+1)
	if err != nil {
		return operands{}, err
	}
	return operands{a: a, b: b, state: state}, nil
}

// inputs pairs the shared operands with a fresh output matrix.
func (ops operands) inputs(cfg accel.Config) accel.Inputs {
	return accel.Inputs{
		A:     ops.a,
		B:     ops.b,
		C:     matrix.Zeros(cfg.M, cfg.N),
		Cache: ops.state,
	}
}
