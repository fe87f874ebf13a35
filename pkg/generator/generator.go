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

package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fracta7/recipegen/pkg/config"
	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/emitter"
	"github.com/fracta7/recipegen/pkg/errors"
	"github.com/fracta7/recipegen/pkg/header"
	"github.com/fracta7/recipegen/pkg/loader"
	"github.com/fracta7/recipegen/pkg/recipe"
	"github.com/fracta7/recipegen/pkg/serializer"
)

// Generator converts a directory of recipe records into a Kotlin file.
type Generator struct {
	cfg         *config.Config
	loader      *loader.Loader
	interpreter *recipe.Interpreter
	emitter     *emitter.Kotlin
	version     string
}

// Option is a functional option for configuring Generator instances.
type Option func(*Generator)

// WithVersion sets the tool version recorded in the run report header.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// New validates cfg and returns a Generator for it.
// A nil cfg uses config.NewConfig().
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:         cfg,
		loader:      loader.New(loader.WithRecursive(cfg.Recursive)),
		interpreter: recipe.NewInterpreter(recipe.WithNamespace(cfg.Namespace)),
		emitter:     cfg.Emitter(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// outcome is the per-file result of loading and interpreting.
type outcome struct {
	recipe *recipe.Recipe
	reason string
}

// Generate renders the artifact without writing it. The returned Result has
// an empty OutputFile.
func (g *Generator) Generate(ctx context.Context) (string, *Result, error) {
	start := time.Now()

	res := &Result{
		RunID:    uuid.NewString(),
		InputDir: g.cfg.InputDir,
		Kinds:    []KindCount{},
	}
	res.Init(header.KindGenerationReport, header.APIVersion, g.version)

	paths, err := g.loader.Discover(g.cfg.InputDir)
	if err != nil {
		return "", nil, err
	}
	res.FilesScanned = len(paths)

	slog.Debug("generation started",
		"run_id", res.RunID,
		"input", g.cfg.InputDir,
		"files", len(paths),
		"workers", g.cfg.Workers,
	)

	outcomes, err := g.interpretAll(ctx, paths)
	if err != nil {
		return "", nil, err
	}

	recipes := make([]*recipe.Recipe, 0, len(outcomes))
	kinds := make(map[recipe.Kind]int)
	for i, o := range outcomes {
		if o.recipe == nil {
			res.Skipped = append(res.Skipped, Skipped{File: paths[i], Reason: o.reason})
			continue
		}
		recipes = append(recipes, o.recipe)
		kinds[o.recipe.Kind]++
	}
	res.RecipesGenerated = len(recipes)
	res.Kinds = kindCounts(kinds)

	code, err := g.emitter.Emit(recipes)
	if err != nil {
		return "", nil, err
	}

	sum := sha256.Sum256([]byte(code))
	res.Checksum = hex.EncodeToString(sum[:])
	res.Size = len(code)
	res.Duration = time.Since(start)

	return code, res, nil
}

// Run generates the artifact and writes it to the configured output file in
// a single write. The metrics file, if configured, is written afterwards.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	code, res, err := g.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "generation canceled before write", err)
	}

	if err := serializer.WriteToFile(g.cfg.OutputFile, []byte(code), defaults.OutputFilePerm); err != nil {
		return nil, err
	}
	res.OutputFile = g.cfg.OutputFile
	res.Duration = time.Since(start)

	generateDuration.Observe(res.Duration.Seconds())
	artifactBytes.Set(float64(res.Size))

	slog.Info("recipes generated",
		"run_id", res.RunID,
		"output", res.OutputFile,
		"files", res.FilesScanned,
		"recipes", res.RecipesGenerated,
		"skipped", len(res.Skipped),
		"duration", res.Duration.Round(time.Millisecond),
	)

	if g.cfg.MetricsFile != "" {
		if err := WriteMetrics(g.cfg.MetricsFile); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// interpretAll processes paths on the worker pool. outcomes[i] always
// corresponds to paths[i].
func (g *Generator) interpretAll(ctx context.Context, paths []string) ([]outcome, error) {
	outcomes := make([]outcome, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeTimeout, "generation canceled", err)
			}
			o, err := g.process(path)
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (g *Generator) process(path string) (outcome, error) {
	rec, err := g.loader.Load(path)
	if err != nil {
		if g.cfg.SkipUnparseable && errors.IsCode(err, errors.ErrCodeInvalidRequest) {
			filesProcessedTotal.WithLabelValues(outcomeUnparseable).Inc()
			slog.Warn("skipping unparseable record", "path", path, "error", err)
			return outcome{reason: err.Error()}, nil
		}
		return outcome{}, err
	}

	r, err := g.interpreter.Interpret(rec)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeUnrecognized) {
			filesProcessedTotal.WithLabelValues(outcomeSkipped).Inc()
			slog.Debug("skipping unrecognized record", "path", path, "error", err)
			return outcome{reason: err.Error()}, nil
		}
		return outcome{}, err
	}

	filesProcessedTotal.WithLabelValues(outcomeGenerated).Inc()
	return outcome{recipe: r}, nil
}

func kindCounts(kinds map[recipe.Kind]int) []KindCount {
	caser := cases.Title(language.English)
	out := make([]KindCount, 0, len(kinds))
	for k, n := range kinds {
		out = append(out, KindCount{
			Kind:  string(k),
			Label: caser.String(strings.ReplaceAll(string(k), "_", " ")),
			Count: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

// WriteMetrics writes all registered metrics to path in the Prometheus text
// exposition format.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write metrics file", err,
			map[string]any{"path": path})
	}
	return nil
}
