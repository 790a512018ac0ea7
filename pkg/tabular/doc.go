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

// Package tabular loads the CSV input files into typed rows.
//
// Three formats are supported, each with its own row type:
//
//	prices.csv       name,quantity,unit,price         -> PriceRow
//	ingredients.csv  name,quantity,unit               -> IngredientRow
//	servings.csv     form,size,quantity,unit,serves   -> ServingRow
//
// Columns are located by exact header name; extra columns are ignored and
// column order does not matter. Blank or missing cells read as empty strings,
// never as a missing-value marker, so an empty unit stays "" (dimensionless).
// Lines beginning with '#' are comments. Row order is preserved and every row
// records its Source (file and line) for error reporting.
//
// Numbers are parsed here, so consumers never see an unparsable value. Parse
// failures carry the error code of the file kind: INVALID_PRICE_ENTRY for
// prices, INVALID_SERVINGS for servings and INVALID_REQUEST for ingredients.
package tabular
