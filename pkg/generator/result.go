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
	"time"

	"github.com/fracta7/recipegen/pkg/header"
)

// Result summarizes a generation run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// RunID identifies the run in logs and reports.
	RunID string `json:"runId" yaml:"runId"`

	// InputDir is the scanned directory.
	InputDir string `json:"input" yaml:"input"`

	// OutputFile is the generated artifact, empty when not written.
	OutputFile string `json:"output,omitempty" yaml:"output,omitempty"`

	// FilesScanned is the number of record files discovered.
	FilesScanned int `json:"filesScanned" yaml:"filesScanned"`

	// RecipesGenerated is the number of recipes in the artifact.
	RecipesGenerated int `json:"recipesGenerated" yaml:"recipesGenerated"`

	// Kinds counts generated recipes per kind, sorted by kind.
	Kinds []KindCount `json:"kinds" yaml:"kinds"`

	// Skipped lists records that contributed nothing, in discovery order.
	Skipped []Skipped `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Size is the artifact size in bytes.
	Size int `json:"sizeBytes" yaml:"sizeBytes"`

	// Checksum is the hex SHA-256 of the artifact.
	Checksum string `json:"sha256" yaml:"sha256"`

	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// KindCount is the number of generated recipes of one kind.
type KindCount struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Skipped records a file that produced no recipe and why.
type Skipped struct {
	File   string `json:"file" yaml:"file"`
	Reason string `json:"reason" yaml:"reason"`
}
