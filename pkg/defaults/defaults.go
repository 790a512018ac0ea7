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

package defaults

import "time"

// File layout of a project directory.
const (
	// PricesFile is the price database file name within the project root.
	PricesFile = "prices.csv"

	// RecipesDir is the directory holding one subdirectory per recipe.
	RecipesDir = "recipes"

	// IngredientsFile is the required ingredient list within a recipe directory.
	IngredientsFile = "ingredients.csv"

	// ServingsFile is the optional serving forms list within a recipe directory.
	ServingsFile = "servings.csv"

	// ConfigFile is the project config file looked up in the working directory.
	ConfigFile = "recipe-helper.yaml"
)

// Build parameters.
const (
	// BuildConcurrency is the number of recipes built in parallel.
	BuildConcurrency = 4

	// MaxBuildConcurrency caps user supplied concurrency.
	MaxBuildConcurrency = 64
)

// Report presentation.
const (
	// CurrencyPrecision is the number of decimals currency is rounded to in reports.
	CurrencyPrecision = 2

	// CurrencySymbol prefixes currency amounts in text reports.
	CurrencySymbol = "$"
)

// Timeouts for CLI operations.
const (
	// LoadTimeout bounds reading and building all recipes of one invocation.
	LoadTimeout = 2 * time.Minute

	// RecipeBuildTimeout bounds building a single recipe.
	// Should be less than LoadTimeout so one slow recipe reports its own error.
	RecipeBuildTimeout = 30 * time.Second
)
