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

package units

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
)

// Definition declares one unit and the aliases that resolve to it.
type Definition struct {
	Name     string
	Category Category
	Factor   float64
	Aliases  []string
}

// Registry resolves unit names to Units. It is immutable once constructed,
// so a single Registry may be shared freely across goroutines.
type Registry struct {
	byName map[string]Unit
	units  []Unit
}

// defaultDefinitions is the unit table behind Default. Factors are exact
// where the unit is defined exactly (avoirdupois pound, US customary cup).
var defaultDefinitions = []Definition{
	// mass (base = g)
	{Name: "mg", Category: CategoryMass, Factor: 0.001, Aliases: []string{"milligram", "milligrams"}},
	{Name: "g", Category: CategoryMass, Factor: 1, Aliases: []string{"gram", "grams"}},
	{Name: "kg", Category: CategoryMass, Factor: 1000, Aliases: []string{"kilogram", "kilograms", "kilo", "kilos"}},
	{Name: "oz", Category: CategoryMass, Factor: 28.349523125, Aliases: []string{"ounce", "ounces"}},
	{Name: "lb", Category: CategoryMass, Factor: 453.59237, Aliases: []string{"lbs", "pound", "pounds"}},

	// volume (base = ml)
	{Name: "ml", Category: CategoryVolume, Factor: 1, Aliases: []string{"milliliter", "milliliters", "millilitre", "millilitres"}},
	{Name: "l", Category: CategoryVolume, Factor: 1000, Aliases: []string{"liter", "liters", "litre", "litres"}},
	{Name: "tsp", Category: CategoryVolume, Factor: 4.92892159375, Aliases: []string{"teaspoon", "teaspoons"}},
	{Name: "tbsp", Category: CategoryVolume, Factor: 14.78676478125, Aliases: []string{"tablespoon", "tablespoons"}},
	{Name: "fl_oz", Category: CategoryVolume, Factor: 29.5735295625, Aliases: []string{"fl-oz", "floz", "fluid_ounce", "fluid_ounces"}},
	{Name: "cup", Category: CategoryVolume, Factor: 236.5882365, Aliases: []string{"cups", "c"}},
	{Name: "pint", Category: CategoryVolume, Factor: 473.176473, Aliases: []string{"pints", "pt"}},
	{Name: "quart", Category: CategoryVolume, Factor: 946.352946, Aliases: []string{"quarts", "qt"}},
	{Name: "gallon", Category: CategoryVolume, Factor: 3785.411784, Aliases: []string{"gallons", "gal"}},

	// count (base = dimensionless)
	{Name: "", Category: CategoryCount, Factor: 1, Aliases: []string{"each", "ea", "count", "piece", "pieces", "pc", "pcs", "dimensionless"}},
	{Name: "dozen", Category: CategoryCount, Factor: 12, Aliases: []string{"dozens", "doz"}},

	// currency (base = dollar)
	{Name: "dollar", Category: CategoryCurrency, Factor: 1, Aliases: []string{"dollars", "usd", "$"}},
	{Name: "cent", Category: CategoryCurrency, Factor: 0.01, Aliases: []string{"cents"}},
}

// Default returns the shared registry built from the standard kitchen unit table.
var Default = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(defaultDefinitions...)
	if err != nil {
		panic(fmt.Sprintf("invalid default unit table: %v", err))
	}
	return r
})

// NewRegistry builds a Registry from definitions. Names and aliases must be
// unique (case-insensitively), categories valid and factors positive.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Unit),
		units:  make([]Unit, 0, len(defs)),
	}

	for _, d := range defs {
		if !d.Category.IsValid() {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"unit has invalid category", map[string]any{"unit": d.Name, "category": d.Category})
		}
		if !(d.Factor > 0) {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"unit factor must be positive", map[string]any{"unit": d.Name, "factor": d.Factor})
		}

		u := Unit{Name: d.Name, Category: d.Category, Factor: d.Factor}
		for _, key := range append([]string{d.Name}, d.Aliases...) {
			k := normalize(key)
			if existing, ok := r.byName[k]; ok {
				return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					fmt.Sprintf("unit name %q already defined", key),
					map[string]any{"unit": d.Name, "existing": existing.Name})
			}
			r.byName[k] = u
		}
		r.units = append(r.units, u)
	}

	return r, nil
}

// Lookup resolves a unit name or alias. Matching ignores case and surrounding
// whitespace; the empty name resolves to the dimensionless unit when defined.
func (r *Registry) Lookup(name string) (Unit, error) {
	u, ok := r.byName[normalize(name)]
	if !ok {
		return Unit{}, apperrors.NewWithContext(apperrors.ErrCodeUnknownUnit,
			fmt.Sprintf("unknown unit %q", name), map[string]any{"unit": name})
	}
	return u, nil
}

// Quantity resolves unit and returns magnitude expressed in it.
func (r *Registry) Quantity(magnitude float64, unit string) (Quantity, error) {
	u, err := r.Lookup(unit)
	if err != nil {
		return Quantity{}, err
	}
	return New(magnitude, u), nil
}

// Units returns the canonical units ordered by category then size.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)

	rank := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		rank[c] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return rank[out[i].Category] < rank[out[j].Category]
		}
		return out[i].Factor < out[j].Factor
	})
	return out
}

// Aliases returns every name that resolves to u, sorted.
func (r *Registry) Aliases(u Unit) []string {
	var names []string
	for k, v := range r.byName {
		if v == u && k != normalize(u.Name) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
