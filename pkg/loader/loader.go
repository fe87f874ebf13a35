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

package loader

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/fracta7/recipegen/pkg/errors"
	"github.com/fracta7/recipegen/pkg/recipe"
	"github.com/fracta7/recipegen/pkg/serializer"
)

// Option configures a Loader.
type Option func(*Loader)

// Loader finds and decodes recipe record files.
type Loader struct {
	recursive bool
	maxSize   int
}

// WithRecursive sets whether Discover descends into subdirectories.
// Default is false.
func WithRecursive(recursive bool) Option {
	return func(l *Loader) {
		l.recursive = recursive
	}
}

// WithMaxSize sets the maximum size (in bytes) of a record file.
// Larger files fail to load. Default is 0, no limit.
func WithMaxSize(size int) Option {
	return func(l *Loader) {
		l.maxSize = size
	}
}

// New creates a Loader with the provided options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsRecordFile reports whether path has a supported record extension.
func IsRecordFile(path string) bool {
	return !serializer.FormatFromPath(path).IsUnknown()
}

// Discover lists record files under dir in lexical order.
func (l *Loader) Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, dirError(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"input path is not a directory", map[string]any{"path": dir})
	}

	var paths []string
	if l.recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && IsRecordFile(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, dirError(dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, dirError(dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsRecordFile(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)

	slog.Debug("record files discovered",
		"dir", dir,
		"recursive", l.recursive,
		"count", len(paths),
	)

	return paths, nil
}

// Load reads and decodes the record at path. A document that parses but is
// not a mapping loads as an empty Record.
func (l *Loader) Load(path string) (recipe.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to read record", err,
			map[string]any{"path": path})
	}

	if l.maxSize > 0 && len(b) > l.maxSize {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"record exceeds maximum size", map[string]any{
				"path":     path,
				"size":     len(b),
				"max_size": l.maxSize,
			})
	}

	r, err := serializer.NewReader(serializer.FormatFromPath(path), bytes.NewReader(b))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "unsupported record file", err,
			map[string]any{"path": path})
	}

	var doc any
	if err := r.Deserialize(&doc); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to parse record", err,
			map[string]any{"path": path})
	}

	return recipe.NewRecord(doc), nil
}

func dirError(dir string, err error) error {
	code := errors.ErrCodeInternal
	if stderrors.Is(err, fs.ErrNotExist) {
		code = errors.ErrCodeNotFound
	}
	return errors.WrapWithContext(code, "failed to read input directory", err,
		map[string]any{"path": dir})
}
