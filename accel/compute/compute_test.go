// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package compute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycles(t *testing.T) {
	testCases := []struct {
		vectorLen, macUnits, macLatency int
		want                            int64
	}{
		{4, 4, 1, 1},
		{1024, 64, 1, 16},
		{1025, 64, 1, 17},
		{1023, 64, 1, 16},
		{1, 64, 1, 1},
		{0, 64, 1, 0},
		{100, 1, 1, 100},
		{100, 1, 3, 300},
		{1024, 64, 4, 64},
		{7, 3, 2, 6},
	}

	for _, tc := range testCases {
		name := fmt.Sprintf("len=%d/units=%d/lat=%d", tc.vectorLen, tc.macUnits, tc.macLatency)
		t.Run(name, func(t *testing.T) {
			if got := Cycles(tc.vectorLen, tc.macUnits, tc.macLatency); got != tc.want {
				t.Errorf("Cycles(%d, %d, %d) = %d, want %d",
					tc.vectorLen, tc.macUnits, tc.macLatency, got, tc.want)
			}
		})
	}
}

func TestStepsIsCeiling(t *testing.T) {
	for n := range 200 {
		for units := 1; units <= 17; units++ {
			steps := Steps(n, units)
			// steps*units must cover n, and one fewer step must not.
			if steps*int64(units) < int64(n) || (steps > 0 && (steps-1)*int64(units) >= int64(n)) {
				t.Fatalf("Steps(%d, %d) = %d is not the ceiling", n, units, steps)
			}
		}
	}
}

func TestCyclesPanicsOnZeroUnits(t *testing.T) {
	assert.Panics(t, func() { Cycles(10, 0, 1) })
	assert.Panics(t, func() { Cycles(10, -4, 1) })
}
