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

// Package units models physical quantities for kitchen pricing.
//
// A Unit belongs to one Category (mass, volume, count, currency) and carries a
// linear factor to that category's base unit. Quantities convert only within
// a category; anything else fails with INCOMPATIBLE_UNITS. Dividing a currency
// quantity by a mass, volume or count quantity produces a Rate, the compound
// unit price used by the price database.
//
// Unit names are resolved through a Registry. Default returns the standard
// kitchen table, built once and never modified:
//
//	reg := units.Default()
//	flour, _ := reg.Quantity(5, "lb")
//	rate, _ := units.Dollars(3).Per(flour) // 0.6 dollar/lb
//	cost, _ := rate.Apply(units.New(2, units.Gram))
//
// The empty unit name resolves to the dimensionless count unit, so a price
// row "eggs,12,,3.00" prices eggs per item.
//
// No rounding is applied here; currency rounding is a presentation concern.
package units
