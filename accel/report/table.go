// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ajroetker/accelperf/accel"
)

// Row labels one result in a comparison table.
type Row struct {
	Label  string
	Result accel.Result
}

// PrintTable writes one aligned line per row, in the given order.
func PrintTable(w io.Writer, labelHeader string, rows []Row) error {
	printer := newPrinter()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	printer.Fprintf(tw, "%s\tTotal Cycles\tCompute Cycles\tLoad Cycles\tUtilization (%%)\t\n", labelHeader)
	for _, r := range rows {
		printer.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t\n",
			r.Label, r.Result.Total, r.Result.Compute, r.Result.Load, r.Result.Utilization())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report.PrintTable: %w", err)
	}
	return nil
}
