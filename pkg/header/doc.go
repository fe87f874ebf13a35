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

// Package header provides the common document header of recipegen reports.
//
// A header identifies what a serialized document is and which tool version
// produced it:
//
//	kind: GenerationReport
//	apiVersion: recipegen.fracta7.dev/v1
//	metadata:
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v1.0.0
//
// Types embed Header inline and call Init when they are produced:
//
//	type Report struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
//
//	r.Init(header.KindGenerationReport, header.APIVersion, version)
package header
