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

// Package prices holds the ingredient price database.
//
// Each row of the price file states how much of an ingredient was bought and
// what it cost:
//
//	name,quantity,unit,price
//	flour,5,lb,3.00
//	eggs,12,,3.00
//
// At load time every row becomes an Entry whose UnitPrice is price divided by
// the reference quantity (0.60 dollar/lb for flour, 0.25 dollar/each for
// eggs). A zero or unparsable quantity, an unknown unit or a negative price
// aborts the whole load with INVALID_PRICE_ENTRY.
//
// PriceFor converts a requested quantity to the entry's reference unit and
// applies the unit price:
//
//	db, err := prices.LoadFile("prices.csv")
//	cost, err := db.PriceFor("flour", units.New(2, lb)) // 1.20 dollar
//
// Unknown names fail with UNKNOWN_INGREDIENT; quantities of another category
// (3 each of a mass-priced ingredient) fail with INCOMPATIBLE_UNITS.
//
// Repeated names follow the DuplicatePolicy: DuplicateOverwrite (default,
// last row wins) or DuplicateReject.
package prices
