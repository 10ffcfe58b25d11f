// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/accelperf/accel/cache"
	"github.com/ajroetker/accelperf/accel/matrix"
)

// smallConfig is the 4x4x4 configuration used by the reference scenarios.
func smallConfig() Config {
	return Config{
		M:          4,
		K:          4,
		N:          4,
		MACUnits:   4,
		MACLatency: 1,
		Latencies:  cache.DefaultLatencies(),
		Workers:    2,
		Seed:       1,
	}
}

func onesInputs(cfg Config, state *cache.State) Inputs {
	return Inputs{
		A:     matrix.Ones(cfg.M, cfg.K),
		B:     matrix.Ones(cfg.K, cfg.N),
		C:     matrix.Zeros(cfg.M, cfg.N),
		Cache: state,
	}
}

func TestSimulateAllL1(t *testing.T) {
	cfg := smallConfig()
	res, err := Simulate(cfg, onesInputs(cfg, cache.Uniform(cfg.M, cache.L1)))
	require.NoError(t, err)

	want := Result{Total: 144, Compute: 16, Load: 128}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Simulate() mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 11.111, res.Utilization(), 1e-3)
}

func TestSimulateAllMiss(t *testing.T) {
	cfg := smallConfig()
	res, err := Simulate(cfg, onesInputs(cfg, cache.Uniform(cfg.M)))
	require.NoError(t, err)

	want := Result{Total: 3216, Compute: 16, Load: 3200}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Simulate() mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulateOnesProduct(t *testing.T) {
	cfg := smallConfig()
	in := onesInputs(cfg, cache.NewRandom(cfg.M, 5))
	_, err := Simulate(cfg, in)
	require.NoError(t, err)

	for i := range cfg.M {
		for j := range cfg.N {
			if got := in.C.At(i, j); got != 4.0 {
				t.Errorf("C[%d][%d] = %g, want 4", i, j, got)
			}
		}
	}
}

func TestSimulateMatchesReferenceProduct(t *testing.T) {
	cfg := smallConfig()
	cfg.M, cfg.K, cfg.N = 37, 19, 23
	cfg.Workers = 5

	in := Inputs{
		A:     matrix.Random(cfg.M, cfg.K, 1),
		B:     matrix.Random(cfg.K, cfg.N, 2),
		C:     matrix.Zeros(cfg.M, cfg.N),
		Cache: cache.NewRandom(cfg.M, 3),
	}
	_, err := Simulate(cfg, in)
	require.NoError(t, err)
	require.NoError(t, matrix.Verify(in.A, in.B, in.C, 1e-12))
}

func TestSimulateInvariants(t *testing.T) {
	testCases := []struct {
		m, k, n, units, macLat, workers int
	}{
		{1, 1, 1, 1, 1, 1},
		{4, 4, 4, 4, 1, 4},
		{16, 33, 8, 8, 2, 3},
		{31, 64, 17, 64, 1, 8},
		{64, 100, 12, 7, 3, 64},
		{10, 10, 10, 16, 1, 32}, // more workers than rows
	}

	for _, tc := range testCases {
		name := fmt.Sprintf("%dx%dx%d/units=%d/lat=%d/workers=%d",
			tc.m, tc.k, tc.n, tc.units, tc.macLat, tc.workers)
		t.Run(name, func(t *testing.T) {
			cfg := Config{
				M: tc.m, K: tc.k, N: tc.n,
				MACUnits:   tc.units,
				MACLatency: tc.macLat,
				Latencies:  cache.DefaultLatencies(),
				Workers:    tc.workers,
			}
			state := cache.NewRandom(tc.m, uint64(tc.m*tc.k))
			res, err := Simulate(cfg, onesInputs(cfg, state))
			require.NoError(t, err)

			assert.Equal(t, res.Compute+res.Load, res.Total, "total must equal compute + load")

			steps := int64((tc.k + tc.units - 1) / tc.units)
			wantCompute := int64(tc.m*tc.n) * steps * int64(tc.macLat)
			assert.Equal(t, wantCompute, res.Compute)

			var wantLoad int64
			for i := range tc.m {
				wantLoad += int64(tc.n) * 2 * cache.Latency(i, state, cfg.Latencies)
			}
			assert.Equal(t, wantLoad, res.Load)

			u := res.Utilization()
			assert.GreaterOrEqual(t, u, 0.0)
			assert.LessOrEqual(t, u, 100.0)
		})
	}
}

func TestSimulateWorkerCountInvariance(t *testing.T) {
	cfg := smallConfig()
	cfg.M, cfg.K, cfg.N = 53, 40, 29
	cfg.MACUnits = 8
	state := cache.NewRandom(cfg.M, 99)

	cfg.Workers = 1
	want, err := Simulate(cfg, onesInputs(cfg, state))
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 4, 7, 8, 16, 53, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			cfg := cfg
			cfg.Workers = workers
			in := onesInputs(cfg, state)
			got, err := Simulate(cfg, in)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("result depends on worker count (-1 worker +%d workers):\n%s", workers, diff)
			}
			assert.Equal(t, float64(cfg.K*cfg.M*cfg.N), mat.Sum(in.C))
		})
	}
}

func TestSimulatorReuse(t *testing.T) {
	cfg := smallConfig()
	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	defer s.Close()

	first, err := s.Run(onesInputs(cfg, cache.Uniform(cfg.M, cache.L1)))
	require.NoError(t, err)
	second, err := s.Run(onesInputs(cfg, cache.Uniform(cfg.M)))
	require.NoError(t, err)

	assert.Equal(t, int64(144), first.Total)
	assert.Equal(t, int64(3216), second.Total, "counters must reset between runs")
}

func TestSimulatorRanges(t *testing.T) {
	cfg := smallConfig()
	cfg.M = 10
	cfg.Workers = 3
	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	defer s.Close()

	ranges := s.Ranges()
	require.Len(t, ranges, 3)
	assert.Equal(t, 0, ranges[0].Start)
	assert.Equal(t, 3, ranges[0].End)
	assert.Equal(t, 6, ranges[2].Start)
	assert.Equal(t, 10, ranges[2].End)
	assert.Equal(t, cfg, s.Config())
}

func TestSimulateRejectsMismatchedInputs(t *testing.T) {
	cfg := smallConfig()
	testCases := []struct {
		name string
		in   Inputs
		msg  string
	}{
		{
			"wrong A",
			Inputs{A: matrix.Ones(4, 5), B: matrix.Ones(4, 4), C: matrix.Zeros(4, 4), Cache: cache.Uniform(4)},
			"A is 4x5",
		},
		{
			"wrong B",
			Inputs{A: matrix.Ones(4, 4), B: matrix.Ones(3, 4), C: matrix.Zeros(4, 4), Cache: cache.Uniform(4)},
			"B is 3x4",
		},
		{
			"wrong C",
			Inputs{A: matrix.Ones(4, 4), B: matrix.Ones(4, 4), C: matrix.Zeros(4, 2), Cache: cache.Uniform(4)},
			"C is 4x2",
		},
		{
			"wrong cache",
			Inputs{A: matrix.Ones(4, 4), B: matrix.Ones(4, 4), C: matrix.Zeros(4, 4), Cache: cache.Uniform(3)},
			"3 tiles",
		},
		{
			"missing cache",
			Inputs{A: matrix.Ones(4, 4), B: matrix.Ones(4, 4), C: matrix.Zeros(4, 4)},
			"cache state",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(cfg, tc.in)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestProvision(t *testing.T) {
	cfg := smallConfig()
	cfg.M, cfg.K, cfg.N = 6, 5, 3

	in, err := Provision(cfg, matrix.FillOnes)
	require.NoError(t, err)
	assert.Equal(t, 6, in.Cache.Tiles())
	assert.Equal(t, 30.0, mat.Sum(in.A))
	assert.Equal(t, 15.0, mat.Sum(in.B))
	assert.Equal(t, 0.0, mat.Sum(in.C))

	_, err = Provision(cfg, matrix.Fill("nope"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg.Workers = 0
	_, err = Provision(cfg, matrix.FillOnes)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResultUtilizationZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Result{}.Utilization())
	assert.Equal(t, 100.0, Result{Total: 5, Compute: 5}.Utilization())
}

func BenchmarkSimulate(b *testing.B) {
	cfg := DefaultConfig()
	cfg.M, cfg.K, cfg.N = 128, 128, 128
	in, err := Provision(cfg, matrix.FillOnes)
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewSimulator(cfg)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.C.Zero()
		if _, err := s.Run(in); err != nil {
			b.Fatal(err)
		}
	}
}
