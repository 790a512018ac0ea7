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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alechouse97/recipe-helper/pkg/header"
	"github.com/alechouse97/recipe-helper/pkg/recipe"
)

// CostReport lists what each recipe costs to make and to serve.
type CostReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []RecipeCost `json:"recipes" yaml:"recipes"`

	// Total is the sum of the rounded recipe totals.
	Total Money `json:"total" yaml:"total"`
}

// RecipeCost is one recipe of a CostReport.
type RecipeCost struct {
	Name        string           `json:"name" yaml:"name"`
	Ingredients []IngredientCost `json:"ingredients" yaml:"ingredients"`
	Total       Money            `json:"total" yaml:"total"`
	Servings    []ServingCost    `json:"servings,omitempty" yaml:"servings,omitempty"`
}

// IngredientCost is one priced ingredient line.
type IngredientCost struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Price    Money   `json:"price" yaml:"price"`
}

// ServingCost is the per-serving price of one serving form.
type ServingCost struct {
	Form       string  `json:"form" yaml:"form"`
	Size       string  `json:"size,omitempty" yaml:"size,omitempty"`
	Yield      float64 `json:"yield" yaml:"yield"`
	YieldUnit  string  `json:"yieldUnit,omitempty" yaml:"yieldUnit,omitempty"`
	Serves     int     `json:"serves" yaml:"serves"`
	PerServing Money   `json:"perServing" yaml:"perServing"`
}

// NewCostReport summarizes recipes in the given order. Options are applied
// to the header after it is initialized.
func NewCostReport(version string, recipes []*recipe.Recipe, opts ...header.Option) *CostReport {
	r := &CostReport{Recipes: make([]RecipeCost, 0, len(recipes))}
	r.Init(header.KindCostReport, version)
	for _, opt := range opts {
		opt(&r.Header)
	}

	total := NewMoney(0)
	for _, rec := range recipes {
		rc := newRecipeCost(rec)
		total = total.Add(rc.Total)
		r.Recipes = append(r.Recipes, rc)
	}
	r.Total = total
	return r
}

func newRecipeCost(rec *recipe.Recipe) RecipeCost {
	rc := RecipeCost{
		Name:  rec.Name(),
		Total: NewMoney(rec.TotalPrice().Magnitude),
	}

	ings := rec.Ingredients()
	rc.Ingredients = make([]IngredientCost, 0, len(ings))
	for _, ing := range ings {
		rc.Ingredients = append(rc.Ingredients, IngredientCost{
			Name:     ing.Name(),
			Quantity: ing.Quantity().Magnitude,
			Unit:     ing.Quantity().Unit.Name,
			Price:    NewMoney(ing.Price().Magnitude),
		})
	}

	for _, f := range rec.ServingForms() {
		per, _ := rec.ServingPrice(f.Name)
		rc.Servings = append(rc.Servings, ServingCost{
			Form:       f.Name,
			Size:       f.Size,
			Yield:      f.Yield.Magnitude,
			YieldUnit:  f.Yield.Unit.Name,
			Serves:     f.Serves,
			PerServing: NewMoney(per),
		})
	}
	return rc
}

// WriteText writes each recipe as
//
//	Recipe: chocolate-cake
//	Ingredients:
//	    - flour: 2 lb -> $1.20
//	Total Price: $12.00
//
// followed by a Servings section when the recipe has serving forms. Recipes
// are separated by a blank line.
func (r *CostReport) WriteText(w io.Writer) error {
	var b strings.Builder
	for i, rc := range r.Recipes {
		if i > 0 {
			b.WriteByte('\n')
		}
		rc.writeText(&b)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (rc RecipeCost) writeText(b *strings.Builder) {
	fmt.Fprintf(b, "Recipe: %s\n", rc.Name)
	b.WriteString("Ingredients:\n")
	for _, ing := range rc.Ingredients {
		fmt.Fprintf(b, "    - %s: %s -> %s\n", ing.Name, amount(ing.Quantity, ing.Unit), ing.Price)
	}
	fmt.Fprintf(b, "Total Price: %s\n", rc.Total)

	if len(rc.Servings) == 0 {
		return
	}
	b.WriteString("Servings:\n")
	for _, s := range rc.Servings {
		detail := amount(s.Yield, s.YieldUnit)
		if s.Size != "" {
			detail = s.Size + ", " + detail
		}
		fmt.Fprintf(b, "    - %s (%s): serves %d -> %s per serving\n", s.Form, detail, s.Serves, s.PerServing)
	}
}

// amount renders a magnitude and unit the way units.Quantity does.
func amount(magnitude float64, unit string) string {
	m := strconv.FormatFloat(magnitude, 'g', -1, 64)
	if unit == "" {
		return m
	}
	return m + " " + unit
}
