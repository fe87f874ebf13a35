// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeGenerated   = "generated"
	outcomeUnparseable = "unparseable"
	outcomeSkipped     = "skipped"
)

var (
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipegen_generate_duration_seconds",
			Help:    "Duration of a full generation run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	filesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipegen_files_processed_total",
			Help: "Total number of record files processed, by outcome",
		},
		[]string{"outcome"},
	)

	artifactBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipegen_artifact_size_bytes",
			Help: "Size of the last generated artifact in bytes",
		},
	)
)
