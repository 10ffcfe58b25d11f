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
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/accelperf/accel"
	"github.com/ajroetker/accelperf/accel/report"
)

func newSweepCommand(opts *options) *cobra.Command {
	var macUnits []int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare several MAC unit counts on the same operands and cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := lo.Uniq(macUnits)
			slices.Sort(values)
			if len(values) == 0 {
				return fmt.Errorf("--mac-units-list: at least one value required")
			}

			configs := lo.Map(values, func(units int, _ int) accel.Config {
				cfg := opts.cfg
				cfg.MACUnits = units
				return cfg
			})
			if err := opts.validate(); err != nil {
				return err
			}
			for _, cfg := range configs {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ops, err := opts.operands()
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"runs":    len(configs),
				"workers": opts.cfg.Workers,
			}).Info("starting sweep")

			results := make([]accel.Result, len(configs))
			var g errgroup.Group
			for i, cfg := range configs {
				g.Go(func() error {
					res, err := accel.Simulate(cfg, ops.inputs(cfg))
					if err != nil {
						return fmt.Errorf("mac units %d: %w", cfg.MACUnits, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			rows := lo.Map(configs, func(cfg accel.Config, i int) report.Row {
				return report.Row{Label: strconv.Itoa(cfg.MACUnits), Result: results[i]}
			})
			return report.PrintTable(cmd.OutOrStdout(), "MAC Units", rows)
		},
	}

	cmd.Flags().IntSliceVar(&macUnits, "mac-units-list", []int{16, 32, 64, 128}, "MAC unit counts to compare")
	return cmd
}
