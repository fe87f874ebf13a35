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

// Package loader discovers and parses recipe record files.
//
// A record file is a JSON (.json) or YAML (.yaml, .yml) document holding a
// single recipe. Files with any other extension are ignored.
//
// # Usage
//
//	l := loader.New(loader.WithRecursive(true))
//	paths, err := l.Discover("recipe")
//	if err != nil {
//	    return err
//	}
//	for _, p := range paths {
//	    rec, err := l.Load(p)
//	    // ...
//	}
//
// Discover returns paths in lexical order, so a given directory always
// yields the same sequence.
//
// # Error Handling
//
//   - Missing input directory: errors.ErrCodeNotFound
//   - Unreadable file or directory: errors.ErrCodeInternal
//   - Oversized file or undecodable document: errors.ErrCodeInvalidRequest
package loader
