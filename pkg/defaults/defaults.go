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

package defaults

// Input and output locations.
const (
	// InputDir is the directory scanned for recipe records.
	InputDir = "recipe"

	// OutputFile is the generated Kotlin artifact.
	OutputFile = "Recipes.kt"
)

// Record interpretation.
const (
	// Namespace is the identifier prefix stripped from every item and type.
	Namespace = "minecraft:"

	// ResultCount is used when a record has no usable result count.
	ResultCount = 1

	// FuelItem is the synthetic requirement added to furnace-style recipes.
	FuelItem = "fuel"
)

// Generated Kotlin declaration.
const (
	// KotlinPackage is the package clause of the generated file.
	KotlinPackage = "com.fracta7.crafter.data.repository"

	// KotlinImport is the fully qualified recipe model class.
	KotlinImport = "com.fracta7.crafter.domain.model.Recipe"

	// KotlinFunction is the name of the generated initializer function.
	KotlinFunction = "recipesInit"
)

// Execution.
const (
	// Workers is the default number of concurrent interpreters.
	Workers = 1

	// MaxWorkers bounds the worker pool regardless of configuration.
	MaxWorkers = 64

	// ReportFormat is the default run report format.
	ReportFormat = "yaml"

	// StdoutPath selects stdout where a path is expected.
	StdoutPath = "-"
)

// File permissions.
const (
	// OutputFilePerm is applied to the generated artifact.
	OutputFilePerm = 0o644
)
