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

// Package config loads the recipe-helper project file.
//
//	# recipe-helper.yaml
//	prices: prices.csv
//	recipesDir: recipes
//	recipes: [chocolate-cake, vanilla-buttercream-frosting]
//	duplicates: overwrite   # or reject
//	concurrency: 4
//
// Relative paths are resolved against the directory holding the file. Fields
// left out take the values from package defaults; unknown fields are errors.
// Command line flags override whatever the file sets.
package config
