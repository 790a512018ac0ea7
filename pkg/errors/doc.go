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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failure of the pricing core carries one of the domain codes
// (UNKNOWN_INGREDIENT, INCOMPATIBLE_UNITS, INVALID_PRICE_ENTRY,
// INVALID_SERVINGS, MISMATCHED_INGREDIENT, UNKNOWN_UNIT, INVALID_QUANTITY).
// Callers branch on codes with IsCode rather than on message text.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnknownIngredient,
//	    "ingredient not present in database",
//	    cause,
//	    map[string]any{
//	        "ingredient": "cocoa",
//	        "source":     "ingredients.csv:4",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeUnknownIngredient) {
//	    // ...
//	}
package errors
