/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/fracta7/recipegen/pkg/config"
	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/generator"
	"github.com/fracta7/recipegen/pkg/serializer"
)

const completionMessage = "Kotlin file generated successfully."

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the Kotlin recipe file from a directory of recipe records",
		Description: `Scan the input directory for recipe records, interpret each record and
write one Kotlin file declaring every recognized recipe in file order.

Records with an unsupported type or without a result are skipped. Settings
resolve in order: flag, RECIPEGEN_* environment variable, config file, default.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   defaults.InputDir,
				Usage:   "Directory containing recipe records",
				Sources: cli.EnvVars(envPrefix + "INPUT"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   defaults.OutputFile,
				Usage:   "Path of the generated Kotlin file",
				Sources: cli.EnvVars(envPrefix + "OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "namespace",
				Value:   defaults.Namespace,
				Usage:   "Namespace prefix stripped from item identifiers and recipe types",
				Sources: cli.EnvVars(envPrefix + "NAMESPACE"),
			},
			&cli.StringFlag{
				Name:    "package",
				Value:   defaults.KotlinPackage,
				Usage:   "Kotlin package of the generated file",
				Sources: cli.EnvVars(envPrefix + "PACKAGE"),
			},
			&cli.StringFlag{
				Name:    "import",
				Value:   defaults.KotlinImport,
				Usage:   "Fully qualified recipe model imported by the generated file",
				Sources: cli.EnvVars(envPrefix + "IMPORT"),
			},
			&cli.StringFlag{
				Name:    "function",
				Value:   defaults.KotlinFunction,
				Usage:   "Name of the generated function",
				Sources: cli.EnvVars(envPrefix + "FUNCTION"),
			},
			&cli.BoolFlag{
				Name:    "recursive",
				Usage:   "Scan subdirectories of the input directory",
				Sources: cli.EnvVars(envPrefix + "RECURSIVE"),
			},
			&cli.BoolFlag{
				Name:    "skip-unparseable",
				Usage:   "Skip records that are not valid JSON or YAML instead of failing",
				Sources: cli.EnvVars(envPrefix + "SKIP_UNPARSEABLE"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   defaults.Workers,
				Usage:   fmt.Sprintf("Number of records interpreted in parallel (1-%d)", defaults.MaxWorkers),
				Sources: cli.EnvVars(envPrefix + "WORKERS"),
			},
			&cli.StringFlag{
				Name:    "report",
				Usage:   "Write a run report to this path (\"-\" for stdout)",
				Sources: cli.EnvVars(envPrefix + "REPORT"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   defaults.ReportFormat,
				Usage:   fmt.Sprintf("Report format (supported values: %v)", serializer.SupportedFormats()),
				Sources: cli.EnvVars(envPrefix + "FORMAT"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write run metrics in Prometheus text format to this path",
				Sources: cli.EnvVars(envPrefix + "METRICS_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := configFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}

			gen, err := generator.New(cfg, generator.WithVersion(version))
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			res, err := gen.Run(ctx)
			if err != nil {
				return err
			}

			if cfg.Report.Path != "" {
				if err := writeReport(ctx, cfg.Report, res); err != nil {
					return err
				}
			}

			fmt.Fprintln(stdout(cmd), completionMessage)
			return nil
		},
	}
}

// parseOutputFormat returns the report format selected on cmd.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v",
			outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// configFromCmd loads the config file named by --config and overrides it with
// every flag that was set explicitly or through its environment variable.
func configFromCmd(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option

	if cmd.IsSet("input") {
		opts = append(opts, config.WithInputDir(cmd.String("input")))
	}
	if cmd.IsSet("output") {
		opts = append(opts, config.WithOutputFile(cmd.String("output")))
	}
	if cmd.IsSet("namespace") {
		opts = append(opts, config.WithNamespace(cmd.String("namespace")))
	}
	if cmd.IsSet("package") {
		opts = append(opts, config.WithKotlinPackage(cmd.String("package")))
	}
	if cmd.IsSet("import") {
		opts = append(opts, config.WithKotlinImport(cmd.String("import")))
	}
	if cmd.IsSet("function") {
		opts = append(opts, config.WithKotlinFunction(cmd.String("function")))
	}
	if cmd.IsSet("recursive") {
		opts = append(opts, config.WithRecursive(cmd.Bool("recursive")))
	}
	if cmd.IsSet("skip-unparseable") {
		opts = append(opts, config.WithSkipUnparseable(cmd.Bool("skip-unparseable")))
	}
	if cmd.IsSet("workers") {
		opts = append(opts, config.WithWorkers(int(cmd.Int("workers"))))
	}
	if cmd.IsSet("metrics-file") {
		opts = append(opts, config.WithMetricsFile(cmd.String("metrics-file")))
	}

	cfg, err := config.Load(cmd.String("config"), opts...)
	if err != nil {
		return nil, err
	}

	// report path and format are independent settings
	if cmd.IsSet("report") {
		cfg.Report.Path = cmd.String("report")
	}
	if cmd.IsSet("format") {
		cfg.Report.Format = cmd.String("format")
	}

	return cfg, nil
}

func writeReport(ctx context.Context, rep config.Report, res *generator.Result) error {
	var ser serializer.Serializer = serializer.NewFileWriterOrStdout(serializer.Format(rep.Format), rep.Path)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
