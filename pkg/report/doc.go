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

// Package report turns priced recipes, the price database and the unit
// registry into documents for output.
//
// Every document embeds a header.Header (kind, apiVersion, timestamp, run ID)
// and implements serializer.TextRenderer, so it can be written as text, json,
// yaml or a flattened table. Currency is rounded to two decimals with
// github.com/shopspring/decimal; nothing upstream rounds.
//
// The cost report text keeps the classic layout:
//
//	Recipe: chocolate-cake
//	Ingredients:
//	    - flour: 2 lb -> $1.20
//	    - eggs: 3 -> $0.75
//	Total Price: $1.95
//	Servings:
//	    - layer-cake (9 inch, 2): serves 12 -> $0.16 per serving
package report
