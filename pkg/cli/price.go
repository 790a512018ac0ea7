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

	"github.com/alechouse97/recipe-helper/pkg/header"
	"github.com/alechouse97/recipe-helper/pkg/report"
)

func priceCmd() *cli.Command {
	return &cli.Command{
		Name:                  "price",
		EnableShellCompletion: true,
		Usage:                 "Price a quantity of one ingredient",
		ArgsUsage:             "<ingredient> <quantity> [unit]",
		Description: `Prices a quantity of an ingredient from the price database. The unit
may be any unit in the ingredient's category; when omitted the unit the
ingredient is sold in is used.

# Examples

  recipe-helper price flour 2 lb
  recipe-helper price flour 500 g
  recipe-helper price eggs 3`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 2, 3); err != nil {
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

			ingredient := cmd.Args().Get(0)
			magnitude, err := parseMagnitude(cmd.Args().Get(1), "quantity")
			if err != nil {
				return err
			}

			unitName := cmd.Args().Get(2)
			if cmd.Args().Len() < 3 {
				u, uerr := db.UnitFor(ingredient)
				if uerr != nil {
					return uerr
				}
				unitName = u.Name
			}

			q, err := db.Registry().Quantity(magnitude, unitName)
			if err != nil {
				return err
			}
			price, err := db.PriceFor(ingredient, q)
			if err != nil {
				return err
			}

			quote := report.NewPriceQuote(version, ingredient, q, price,
				header.WithMetadata("prices", cfg.Prices))
			return writeResult(ctx, cmd, quote)
		},
	}
}
