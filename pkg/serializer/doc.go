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

// Package serializer reads recipe records and config files and writes run
// reports in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Readable and writable
//
// YAML:
//   - Human-readable with preserved structure (gopkg.in/yaml.v3)
//   - Readable and writable
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only
//
// # Reading
//
// The format is detected from the file extension (.json, .yaml, .yml):
//
//	var rec map[string]any
//	r, err := serializer.NewFileReaderAuto("recipe/ladder.json")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	if err := r.Deserialize(&rec); err != nil {
//	    return err
//	}
//
// FromFile combines the steps for typed documents:
//
//	cfg, err := serializer.FromFile[config.Config]("recipegen.yaml")
//
// # Writing
//
// An empty path or "-" writes to stdout:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "report.yaml")
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// WriteToFile writes a complete artifact in one call, truncating the target.
//
// # Error Handling
//
// Errors are structured (pkg/errors): a missing file is NOT_FOUND, an unknown
// format or undecodable content is INVALID_REQUEST, other I/O failures are
// INTERNAL and a canceled context is TIMEOUT.
package serializer
