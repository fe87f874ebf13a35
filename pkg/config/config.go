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

package config

import (
	"log/slog"
	"strings"

	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/emitter"
	"github.com/fracta7/recipegen/pkg/errors"
	"github.com/fracta7/recipegen/pkg/serializer"
)

// Config holds the settings of a generation run.
type Config struct {
	// Input and output
	InputDir   string `json:"input" yaml:"input"`
	OutputFile string `json:"output" yaml:"output"`

	// Interpretation
	Namespace       string `json:"namespace" yaml:"namespace"`
	Recursive       bool   `json:"recursive" yaml:"recursive"`
	SkipUnparseable bool   `json:"skipUnparseable" yaml:"skipUnparseable"`
	Workers         int    `json:"workers" yaml:"workers"`

	// Generated declaration
	Kotlin Kotlin `json:"kotlin" yaml:"kotlin"`

	// Run artifacts besides the generated file
	Report      Report `json:"report" yaml:"report"`
	MetricsFile string `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`
}

// Kotlin configures the generated declaration.
type Kotlin struct {
	Package  string `json:"package" yaml:"package"`
	Import   string `json:"import" yaml:"import"`
	Function string `json:"function" yaml:"function"`
}

// Report configures the optional run report.
// An empty Path disables it; "-" writes to stdout.
type Report struct {
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Format string `json:"format" yaml:"format"`
}

// Option overrides a single setting.
type Option func(*Config)

// WithInputDir sets the directory scanned for records.
func WithInputDir(dir string) Option {
	return func(c *Config) {
		c.InputDir = dir
	}
}

// WithOutputFile sets the generated artifact path.
func WithOutputFile(path string) Option {
	return func(c *Config) {
		c.OutputFile = path
	}
}

// WithNamespace sets the prefix stripped from identifiers.
func WithNamespace(ns string) Option {
	return func(c *Config) {
		c.Namespace = ns
	}
}

// WithRecursive sets whether subdirectories are scanned.
func WithRecursive(enabled bool) Option {
	return func(c *Config) {
		c.Recursive = enabled
	}
}

// WithSkipUnparseable sets whether undecodable files are skipped instead of
// aborting the run.
func WithSkipUnparseable(enabled bool) Option {
	return func(c *Config) {
		c.SkipUnparseable = enabled
	}
}

// WithWorkers sets the number of concurrent interpreters.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithKotlinPackage sets the package clause of the generated file.
func WithKotlinPackage(pkg string) Option {
	return func(c *Config) {
		c.Kotlin.Package = pkg
	}
}

// WithKotlinImport sets the recipe model import.
func WithKotlinImport(imp string) Option {
	return func(c *Config) {
		c.Kotlin.Import = imp
	}
}

// WithKotlinFunction sets the generated function name.
func WithKotlinFunction(name string) Option {
	return func(c *Config) {
		c.Kotlin.Function = name
	}
}

// WithReport sets the report destination and format.
func WithReport(path, format string) Option {
	return func(c *Config) {
		c.Report.Path = path
		if format != "" {
			c.Report.Format = format
		}
	}
}

// WithMetricsFile sets the Prometheus text file written after the run.
func WithMetricsFile(path string) Option {
	return func(c *Config) {
		c.MetricsFile = path
	}
}

// NewConfig returns a Config with default values and the options applied.
func NewConfig(options ...Option) *Config {
	c := &Config{
		InputDir:   defaults.InputDir,
		OutputFile: defaults.OutputFile,
		Namespace:  defaults.Namespace,
		Workers:    defaults.Workers,
		Kotlin: Kotlin{
			Package:  defaults.KotlinPackage,
			Import:   defaults.KotlinImport,
			Function: defaults.KotlinFunction,
		},
		Report: Report{
			Format: defaults.ReportFormat,
		},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Load reads the config file at path over the defaults and then applies
// options. An empty path skips the file.
func Load(path string, options ...Option) (*Config, error) {
	c := NewConfig()

	if strings.TrimSpace(path) != "" {
		r, err := serializer.NewFileReaderAuto(path)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to open config file", err, map[string]any{"path": path})
		}
		defer func() {
			if closeErr := r.Close(); closeErr != nil {
				slog.Warn("failed to close config file", "error", closeErr)
			}
		}()

		if err := r.Deserialize(c); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to parse config file", err, map[string]any{"path": path})
		}
		slog.Debug("config file loaded", "path", path)
	}

	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "input directory cannot be empty")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "output file cannot be empty")
	}
	if c.Workers < 1 || c.Workers > defaults.MaxWorkers {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"workers out of range", map[string]any{
				"workers": c.Workers,
				"min":     1,
				"max":     defaults.MaxWorkers,
			})
	}
	if serializer.Format(c.Report.Format).IsUnknown() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown report format", map[string]any{
				"format":    c.Report.Format,
				"supported": serializer.SupportedFormats(),
			})
	}
	return c.Emitter().Validate()
}

// Emitter returns the Kotlin emitter described by the config.
func (c *Config) Emitter() *emitter.Kotlin {
	return emitter.NewKotlin(
		emitter.WithPackage(c.Kotlin.Package),
		emitter.WithImport(c.Kotlin.Import),
		emitter.WithFunction(c.Kotlin.Function),
	)
}
