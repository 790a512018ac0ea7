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

	"github.com/urfave/cli/v3"

	"github.com/alechouse97/recipe-helper/pkg/prices"
	"github.com/alechouse97/recipe-helper/pkg/recipe"
	"github.com/alechouse97/recipe-helper/pkg/report"
)

func combineCmd() *cli.Command {
	return &cli.Command{
		Name:                  "combine",
		EnableShellCompletion: true,
		Usage:                 "Combine two quantities of one ingredient",
		ArgsUsage:             "<ingredient> <quantity> <unit> <quantity> <unit>",
		Description: `Prices two quantities of the same ingredient and adds them. The result
is expressed in the first quantity's unit.

# Examples

  recipe-helper combine flour 1 lb 250 g
  recipe-helper combine milk 1 cup 2 tbsp --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 5, 5); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := loadPrices(cfg)
			if err != nil {
				return err
			}

			args := cmd.Args()
			ingredient := args.Get(0)
			first, err := ingredientArg(db, ingredient, args.Get(1), args.Get(2))
			if err != nil {
				return err
			}
			second, err := ingredientArg(db, ingredient, args.Get(3), args.Get(4))
			if err != nil {
				return err
			}

			combined, err := first.Combine(second)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, report.NewCombineResult(version, combined, first, second))
		},
	}
}

func ingredientArg(db *prices.Database, name, magnitudeArg, unitArg string) (recipe.Ingredient, error) {
	magnitude, err := parseMagnitude(magnitudeArg, "quantity")
	if err != nil {
		return recipe.Ingredient{}, err
	}
	q, err := db.Registry().Quantity(magnitude, unitArg)
	if err != nil {
		return recipe.Ingredient{}, err
	}
	return recipe.NewIngredient(name, db, q)
}
