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

// Package recipe prices recipes against a price database.
//
// # Core Types
//
// Ingredient: a named quantity and its price, computed once at creation
//
//	ing, err := recipe.NewIngredient("flour", db, units.New(2, lb)) // 1.20 dollar
//
// ServingForm: one way of serving a recipe
//
//	type ServingForm struct {
//	    Name   string         // "layer-cake"
//	    Size   string         // "9 inch"
//	    Yield  units.Quantity // 2 (each)
//	    Serves int            // 12
//	}
//
// Recipe: ordered ingredients and forms with a total price and the price of
// one serving of each form (total / serves).
//
// # Building
//
// Builder reads typed rows produced by package tabular, prices each ingredient
// through a Pricer (normally *prices.Database) and validates serving rows:
//
//	b := recipe.NewBuilder(db)
//	r, err := b.BuildFromDir(ctx, "recipes/chocolate-cake")
//	fmt.Println(r.TotalPrice())
//
// Any failing row aborts the build; a recipe is never returned with missing
// ingredients or a zero total caused by an error. Repeated ingredient rows
// are combined into the first occurrence with Ingredient.Combine.
//
// # Errors
//
//   - UNKNOWN_INGREDIENT: an ingredient is absent from the database
//   - INCOMPATIBLE_UNITS: an ingredient is measured in another category than its price
//   - UNKNOWN_UNIT: an ingredient row names a unit the registry does not know
//   - INVALID_SERVINGS: serves or yield is zero or negative, or a form repeats
//   - MISMATCHED_INGREDIENT: Combine was called with two different ingredients
//   - TIMEOUT: the build context was cancelled
package recipe
