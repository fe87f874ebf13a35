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

// Package config holds the settings of a generation run.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML or JSON config file, RECIPEGEN_* environment variables and
// command-line flags. This package covers the first two; the CLI layers the
// rest on top with Option values.
//
// # Config File
//
//	input: data/minecraft/recipe
//	output: app/src/main/java/com/fracta7/crafter/data/repository/Recipes.kt
//	namespace: "minecraft:"
//	recursive: true
//	workers: 4
//	kotlin:
//	  package: com.fracta7.crafter.data.repository
//	  import: com.fracta7.crafter.domain.model.Recipe
//	  function: recipesInit
//	report:
//	  path: build/recipegen-report.yaml
//	  format: yaml
//
// # Usage
//
//	cfg, err := config.Load("recipegen.yaml", config.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
package config
