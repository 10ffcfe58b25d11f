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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/accelperf/accel"
	"github.com/ajroetker/accelperf/accel/matrix"
	"github.com/ajroetker/accelperf/accel/report"
)

// verifyTolerance is the relative error allowed by --verify.
const verifyTolerance = 1e-9

func newRootCommand() *cobra.Command {
	opts := newOptions()
	var (
		output    string
		noCSV     bool
		verify    bool
		histogram bool
	)

	cmd := &cobra.Command{
		Use:           "accelperf",
		Short:         "Cycle-accounting model of a tiled matrix-multiply accelerator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.setupLogging(cmd.ErrOrStderr()); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"version": version,
				"host":    strings.Join(hostFeatures(), ","),
			}).Debug("accelperf")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			cfg := opts.cfg
			logrus.WithFields(logrus.Fields{
				"m":         cfg.M,
				"k":         cfg.K,
				"n":         cfg.N,
				"mac_units": cfg.MACUnits,
				"workers":   cfg.Workers,
				"residency": opts.residency,
			}).Info("starting simulation")

			ops, err := opts.operands()
			if err != nil {
				return err
			}
			in := ops.inputs(cfg)
			res, err := accel.Simulate(cfg, in)
			if err != nil {
				return err
			}

			if verify {
				if err := matrix.Verify(in.A, in.B, in.C, verifyTolerance); err != nil {
					return fmt.Errorf("product verification failed: %w", err)
				}
				logrus.Info("product verified against reference")
			}

			out := cmd.OutOrStdout()
			if err := report.Print(out, cfg, res); err != nil {
				return err
			}
			if histogram {
				if err := report.PrintHistogram(out, in.Cache, cfg.Latencies); err != nil {
					return err
				}
			}
			if noCSV {
				return nil
			}
			if err := report.WriteCSV(output, res); err != nil {
				return err
			}
			logrus.WithField("path", output).Info("results written")
			return nil
		},
	}

	opts.addFlags(cmd.PersistentFlags())
	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", report.DefaultCSVPath, "CSV file to write results to")
	fs.BoolVar(&noCSV, "no-csv", false, "do not write the CSV file")
	fs.BoolVar(&verify, "verify", false, "check the computed product against a reference multiply")
	fs.BoolVar(&histogram, "histogram", false, "print how many tiles each memory level serves")

	cmd.AddCommand(newSweepCommand(opts), newVersionCommand())
	return cmd
}
