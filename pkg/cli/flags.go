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
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/alechouse97/recipe-helper/pkg/config"
	"github.com/alechouse97/recipe-helper/pkg/defaults"
	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/prices"
	"github.com/alechouse97/recipe-helper/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatText),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", outFormat),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return outFormat, nil
}

// writeResult serializes v to --output, or to the root command's writer.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		if w, err = serializer.NewFileWriterOrStdout(outFormat, path); err != nil {
			return err
		}
	} else {
		w = serializer.NewWriter(outFormat, cmd.Root().Writer)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			slog.Warn("failed to close serializer", "error", cerr)
		}
	}()

	return w.Serialize(ctx, v)
}

// loadConfig reads the config file and applies flag overrides. An explicit
// --config must exist; the default file is optional.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.IsSet("config") {
		cfg, err = config.Load(cmd.String("config"))
	} else {
		cfg, err = config.LoadOrDefault(defaults.ConfigFile)
	}
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("prices") {
		cfg.Prices = cmd.String("prices")
	}
	if cmd.IsSet("recipes-dir") {
		cfg.RecipesDir = cmd.String("recipes-dir")
	}
	if cmd.IsSet("concurrency") {
		cfg.Concurrency = int(cmd.Int("concurrency"))
	}
	if cmd.Bool("reject-duplicates") {
		cfg.Duplicates = string(prices.DuplicateReject)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadPrices(cfg *config.Config) (*prices.Database, error) {
	return prices.LoadFile(cfg.Prices, prices.WithDuplicatePolicy(cfg.DuplicatePolicy()))
}

func parseMagnitude(arg, what string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("invalid %s %q", what, arg), err, map[string]any{"value": arg})
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("%s must be a finite number, got %q", what, arg), map[string]any{"value": arg})
	}
	return v, nil
}

func requireArgs(cmd *cli.Command, minArgs, maxArgs int) error {
	n := cmd.Args().Len()
	if n < minArgs || n > maxArgs {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("usage: %s %s %s", name, cmd.Name, cmd.ArgsUsage))
	}
	return nil
}
