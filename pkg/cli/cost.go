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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/alechouse97/recipe-helper/pkg/cookbook"
	"github.com/alechouse97/recipe-helper/pkg/defaults"
	"github.com/alechouse97/recipe-helper/pkg/header"
	"github.com/alechouse97/recipe-helper/pkg/recipe"
	"github.com/alechouse97/recipe-helper/pkg/report"
)

func costCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cost",
		EnableShellCompletion: true,
		Usage:                 "Price recipes and their servings",
		ArgsUsage:             "[recipe...]",
		Description: `Builds each recipe against the price database and reports every
ingredient price, the recipe total and the price per serving form.

Recipes named on the command line are built in that order. Without
arguments the recipes listed in the config file are used, and without
those every directory under --recipes-dir that holds an ingredients.csv.

# Examples

  recipe-helper cost
  recipe-helper cost chocolate-cake --format json
  recipe-helper --prices shop.csv cost -o costs.yaml -t yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.LoadTimeout)
			defer cancel()

			db, err := loadPrices(cfg)
			if err != nil {
				return err
			}

			names := cmd.Args().Slice()
			if len(names) == 0 {
				names = cfg.Recipes
			}

			var dirs []string
			if len(names) == 0 {
				dirs, err = cookbook.Discover(cfg.RecipesDir)
			} else {
				dirs, err = cookbook.Resolve(cfg.RecipesDir, names)
			}
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				slog.Warn("no recipes found", "recipesDir", cfg.RecipesDir)
			}

			recipes, err := cookbook.BuildAll(ctx, recipe.NewBuilder(db), dirs, cfg.Concurrency)
			if err != nil {
				return err
			}

			rep := report.NewCostReport(version, recipes,
				header.WithMetadata("prices", cfg.Prices),
				header.WithMetadata("recipesDir", cfg.RecipesDir))
			return writeResult(ctx, cmd, rep)
		},
	}
}
