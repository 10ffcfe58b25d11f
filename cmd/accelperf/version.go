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
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

type feature struct {
	name string
	ok   bool
}

// hostFeatures lists the SIMD features of the machine running the model.
// The simulated accelerator does not depend on them; they identify the host
// in bug reports and benchmark logs.
func hostFeatures() []string {
	features := []feature{
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"neon", cpu.ARM64.HasASIMD},
		{"asimddp", cpu.ARM64.HasASIMDDP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}
	return lo.FilterMap(features, func(f feature, _ int) (string, bool) {
		return f.name, f.ok
	})
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and host information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			features := strings.Join(hostFeatures(), ",")
			if features == "" {
				features = "none"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "accelperf %s %s/%s cpus=%d features=%s\n",
				version, runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), features)
			return err
		},
	}
}
