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

// Package defaults provides centralized configuration constants for recipegen.
//
// This package defines the default input and output locations, the namespace
// stripped from identifiers, the shape of the generated Kotlin declaration,
// and execution limits. Centralizing these values keeps the CLI, the config
// file loader and the generator consistent.
//
// # Usage
//
//	import "github.com/fracta7/recipegen/pkg/defaults"
//
//	cfg := config.New(config.WithInputDir(defaults.InputDir))
package defaults
