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

// Command accelperf estimates memory and compute cycles of a matrix multiply
// on a tiled MAC-array accelerator.
//
// Usage:
//
//	accelperf                                   # 1024^3 multiply, 64 MAC units, 8 workers
//	accelperf --m 4 --k 4 --n 4 --mac-units 4 --residency l1
//	accelperf --residency miss --output results.csv
//	accelperf sweep --mac-units-list 16,32,64,128
//	accelperf version
//
// Results are printed to stdout and, unless --no-csv is set, written to
// matrix_multiplication_performance.csv.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("accelperf failed")
		os.Exit(1)
	}
}
