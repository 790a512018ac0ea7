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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/alechouse97/recipe-helper/pkg/defaults"
	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/logging"
)

const (
	name           = "recipe-helper"
	versionDefault = "dev"

	exitCodeError    = 1
	exitCodeCanceled = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command against os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err, "code", apperrors.CodeOf(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if apperrors.IsCode(err, apperrors.ErrCodeTimeout) {
		return exitCodeCanceled
	}
	return exitCodeError
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Recipe cost calculator",
		Description: `Prices recipes from a flat-file price database.

A project directory holds a price file and one directory per recipe:

  prices.csv                       name,quantity,unit,price
  recipes/<name>/ingredients.csv   name,quantity,unit
  recipes/<name>/servings.csv      form,size,quantity,unit,serves (optional)

Settings may also come from a recipe-helper.yaml config file; flags win
over the file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("config file (default is ./%s when present)", defaults.ConfigFile),
				Sources: cli.EnvVars("RECIPE_HELPER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "prices",
				Aliases: []string{"p"},
				Usage:   "price database file",
				Sources: cli.EnvVars("RECIPE_HELPER_PRICES"),
			},
			&cli.StringFlag{
				Name:    "recipes-dir",
				Aliases: []string{"r"},
				Usage:   "directory holding one subdirectory per recipe",
				Sources: cli.EnvVars("RECIPE_HELPER_RECIPES_DIR"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "number of recipes built in parallel",
				Sources: cli.EnvVars("RECIPE_HELPER_CONCURRENCY"),
			},
			&cli.BoolFlag{
				Name:    "reject-duplicates",
				Usage:   "fail when the price file names an ingredient twice",
				Sources: cli.EnvVars("RECIPE_HELPER_REJECT_DUPLICATES"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "write Prometheus metrics in text format to this file on exit",
				Sources: cli.EnvVars("RECIPE_HELPER_METRICS_FILE"),
			},
		},
		Before: initLogger,
		After:  writeMetrics,
		Commands: []*cli.Command{
			costCmd(),
			priceCmd(),
			pricesCmd(),
			combineCmd(),
			unitsCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

func writeMetrics(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write metrics", err, map[string]any{"path": path})
	}
	slog.Debug("wrote metrics", "path", path)
	return nil
}
