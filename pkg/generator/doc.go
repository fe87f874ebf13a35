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

// Package generator runs a complete conversion: discover record files, load
// and interpret each, render the Kotlin declaration and write it.
//
// Records are interpreted on a bounded worker pool, but results are always
// assembled in discovery order so the artifact is identical for every
// worker count.
//
// # Failure Handling
//
// Unrecognized records (unknown type, missing result id, missing required
// field) are skipped and listed in Result.Skipped. Files that cannot be
// decoded abort the run unless SkipUnparseable is set, in which case they
// are skipped the same way. Directory and write failures always abort, and
// the output file is left untouched.
//
// # Usage
//
//	g, err := generator.New(config.NewConfig(config.WithInputDir("recipe")))
//	if err != nil {
//	    return err
//	}
//	res, err := g.Run(ctx)
package generator
