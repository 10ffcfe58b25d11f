// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package report renders simulation results for people and persists them as
// CSV for other tools.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/accelperf/accel"
	"github.com/ajroetker/accelperf/accel/cache"
)

// newPrinter returns a printer that groups digits so large cycle counts stay
// readable.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// Print writes a human-readable summary of res for cfg.
func Print(w io.Writer, cfg accel.Config, res accel.Result) error {
	printer := newPrinter()
	lines := []struct {
		format string
		args   []any
	}{
		{"Matrix Multiplication Performance Model\n", nil},
		{"Matrix size: %s\n", []any{fmt.Sprintf("%dx%d x %dx%d", cfg.M, cfg.K, cfg.K, cfg.N)}},
		{"MAC Units: %d\n", []any{cfg.MACUnits}},
		{"Workers: %d\n", []any{cfg.Workers}},
		{"Total Cycles: %d\n", []any{res.Total}},
		{"Compute Cycles: %d\n", []any{res.Compute}},
		{"Memory Load Cycles: %d\n", []any{res.Load}},
		{"Utilization: %.2f%%\n", []any{res.Utilization()}},
	}
	for _, l := range lines {
		if _, err := printer.Fprintf(w, l.format, l.args...); err != nil {
			return fmt.Errorf("report.Print: %w", err)
		}
	}
	return nil
}

// PrintHistogram writes how many tiles each memory level serves.
func PrintHistogram(w io.Writer, state *cache.State, lat cache.Latencies) error {
	printer := newPrinter()
	h := state.Histogram()
	if _, err := printer.Fprintf(w, "Tile residency (%d tiles):\n", state.Tiles()); err != nil {
		return fmt.Errorf("report.PrintHistogram: %w", err)
	}
	for level := cache.L1; level <= cache.DRAM; level++ {
		pct := 0.0
		if state.Tiles() > 0 {
			pct = 100 * float64(h[level]) / float64(state.Tiles())
		}
		_, err := printer.Fprintf(w, "  %-4s %8d tiles %6.2f%% @ %d cycles\n",
			level.String(), h[level], pct, lat.Cycles(level))
		if err != nil {
			return fmt.Errorf("report.PrintHistogram: %w", err)
		}
	}
	return nil
}
