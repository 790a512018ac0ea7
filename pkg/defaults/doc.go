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

// Package defaults provides centralized configuration constants for recipe-helper.
//
// This package defines file names, build parameters, presentation settings and
// timeouts used across the codebase. Centralizing these values keeps the CLI,
// the config loader and the recipe builder in agreement.
//
// # Project Layout
//
//	<root>/prices.csv
//	<root>/recipes/<name>/ingredients.csv
//	<root>/recipes/<name>/servings.csv   (optional)
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/alechouse97/recipe-helper/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.LoadTimeout)
//	defer cancel()
package defaults
