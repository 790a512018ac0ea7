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

// Package cookbook finds recipe directories and builds many recipes at once.
//
// A project keeps one directory per recipe:
//
//	recipes/
//	├── chocolate-cake/
//	│   ├── ingredients.csv
//	│   └── servings.csv
//	└── vanilla-buttercream-frosting/
//	    └── ingredients.csv
//
// BuildAll runs builds in parallel with golang.org/x/sync/errgroup against a
// shared, read-only price database. The first failure cancels the rest.
//
//	dirs, err := cookbook.Discover("recipes")
//	recipes, err := cookbook.BuildAll(ctx, recipe.NewBuilder(db), dirs, 4)
package cookbook
