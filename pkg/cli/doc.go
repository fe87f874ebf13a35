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

// Package cli implements the command-line interface of the recipegen tool.
//
// # Overview
//
// recipegen turns a directory of crafting recipe records into a single Kotlin
// source file declaring the full recipe list.
//
// # Commands
//
// generate - Generate the Kotlin file:
//
//	recipegen generate [--input DIR] [--output FILE] [--report FILE] [--format yaml|json|table]
//
// Reads every .json, .yaml and .yml record of the input directory (default
// "recipe") in lexical order, interprets each one and writes the result to
// the output file (default "Recipes.kt"). Records with an unsupported type
// or without a result are skipped and listed in the optional run report.
//
// kinds - List the supported recipe kinds:
//
//	recipegen kinds
//
// # Global Flags
//
//	--config, -c   YAML or JSON config file
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration
//
// Every generate flag can also be set through a RECIPEGEN_* environment
// variable (e.g. RECIPEGEN_INPUT, RECIPEGEN_SKIP_UNPARSEABLE) or the config
// file. A flag wins over its environment variable, which wins over the config
// file. A .env file in the working directory is loaded at startup.
//
//	input: data/recipes
//	output: app/src/main/java/Recipes.kt
//	workers: 4
//	kotlin:
//	  package: com.example.data
//	  import: com.example.model.Recipe
//	  function: recipesInit
//	report:
//	  path: report.yaml
//	  format: yaml
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable input, unwritable output)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fracta7/recipegen/pkg/cli.version=1.0.0'"
package cli
