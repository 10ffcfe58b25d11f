// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/accelperf/accel"
)

// DefaultCSVPath is where the CLI persists results unless told otherwise.
const DefaultCSVPath = "matrix_multiplication_performance.csv"

// Header names the columns of the persisted record.
var Header = []string{"Total Cycles", "Compute Cycles", "Load Cycles", "Utilization (%)"}

// Record is one persisted result row.
type Record struct {
	Total       int64
	Compute     int64
	Load        int64
	Utilization float64
}

// NewRecord derives the persisted record from a result.
func NewRecord(res accel.Result) Record {
	return Record{
		Total:       res.Total,
		Compute:     res.Compute,
		Load:        res.Load,
		Utilization: res.Utilization(),
	}
}

func (r Record) fields() []string {
	return []string{
		strconv.FormatInt(r.Total, 10),
		strconv.FormatInt(r.Compute, 10),
		strconv.FormatInt(r.Load, 10),
		strconv.FormatFloat(r.Utilization, 'f', -1, 64),
	}
}

// EncodeCSV writes the header and a single row for res.
func EncodeCSV(w io.Writer, res accel.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll([][]string{Header, NewRecord(res).fields()}); err != nil {
		return fmt.Errorf("report.EncodeCSV: %w", err)
	}
	return nil
}

// WriteCSV creates (or truncates) path and writes res to it.
func WriteCSV(path string, res accel.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report.WriteCSV: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report.WriteCSV: %w", cerr)
		}
	}()
	return EncodeCSV(f, res)
}

// ReadCSV parses a record written by EncodeCSV.
func ReadCSV(r io.Reader) (Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Record{}, fmt.Errorf("report.ReadCSV: %w", err)
	}
	if len(rows) != 2 {
		return Record{}, fmt.Errorf("report.ReadCSV: got %d rows, want header and one record", len(rows))
	}
	for i, name := range Header {
		if i >= len(rows[0]) || rows[0][i] != name {
			return Record{}, fmt.Errorf("report.ReadCSV: unexpected header %q", rows[0])
		}
	}

	row := rows[1]
	var rec Record
	ints := []*int64{&rec.Total, &rec.Compute, &rec.Load}
	for i, dst := range ints {
		if *dst, err = strconv.ParseInt(row[i], 10, 64); err != nil {
			return Record{}, fmt.Errorf("report.ReadCSV: column %q: %w", Header[i], err)
		}
	}
	if rec.Utilization, err = strconv.ParseFloat(row[3], 64); err != nil {
		return Record{}, fmt.Errorf("report.ReadCSV: column %q: %w", Header[3], err)
	}
	return rec, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("report.ReadCSVFile: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}
