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
	"text/tabwriter"

	"github.com/alechouse97/recipe-helper/pkg/header"
	"github.com/alechouse97/recipe-helper/pkg/prices"
	"github.com/alechouse97/recipe-helper/pkg/recipe"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// PriceList lists the price database in file order.
type PriceList struct {
	header.Header `json:",inline" yaml:",inline"`

	Entries []PriceLine `json:"entries" yaml:"entries"`
}

// PriceLine is one price database entry.
type PriceLine struct {
	Name      string  `json:"name" yaml:"name"`
	Quantity  float64 `json:"quantity" yaml:"quantity"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Price     Money   `json:"price" yaml:"price"`
	UnitPrice float64 `json:"unitPrice" yaml:"unitPrice"`
	PerUnit   string  `json:"perUnit" yaml:"perUnit"`
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewPriceList lists every entry of db.
func NewPriceList(version string, db *prices.Database, opts ...header.Option) *PriceList {
	l := &PriceList{}
	l.Init(header.KindPriceList, version)
	for _, opt := range opts {
		opt(&l.Header)
	}

	entries := db.Entries()
	l.Entries = make([]PriceLine, 0, len(entries))
	for _, e := range entries {
		l.Entries = append(l.Entries, PriceLine{
			Name:      e.Name,
			Quantity:  e.Reference.Magnitude,
			Unit:      e.Reference.Unit.Name,
			Price:     NewMoney(e.Price.Magnitude),
			UnitPrice: e.UnitPrice.Magnitude,
			PerUnit:   perUnit(e.UnitPrice),
			Source:    e.Source.String(),
		})
	}
	return l
}

func perUnit(r units.Rate) string {
	if r.Denominator.IsDimensionless() {
		return "each"
	}
	return r.Denominator.Name
}

// WriteText writes an aligned table of names, reference amounts and unit prices.
func (l *PriceList) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INGREDIENT\tBOUGHT\tPRICE\tUNIT PRICE")
	for _, e := range l.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s/%s\n",
			e.Name, amount(e.Quantity, e.Unit), e.Price, unitPrice(e.UnitPrice), e.PerUnit)
	}
	return tw.Flush()
}

// unitPrice keeps full precision; unit prices are often fractions of a cent.
func unitPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// PriceQuote is the price of one ingredient quantity.
type PriceQuote struct {
	header.Header `json:",inline" yaml:",inline"`

	Ingredient string  `json:"ingredient" yaml:"ingredient"`
	Quantity   float64 `json:"quantity" yaml:"quantity"`
	Unit       string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Price      Money   `json:"price" yaml:"price"`
}

// NewPriceQuote reports that q of name costs price.
func NewPriceQuote(version, name string, q, price units.Quantity, opts ...header.Option) *PriceQuote {
	pq := &PriceQuote{
		Ingredient: name,
		Quantity:   q.Magnitude,
		Unit:       q.Unit.Name,
		Price:      NewMoney(price.Magnitude),
	}
	pq.Init(header.KindPriceQuote, version)
	for _, opt := range opts {
		opt(&pq.Header)
	}
	return pq
}

// WriteText writes "flour: 2 lb -> $1.20".
func (pq *PriceQuote) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s -> %s\n", pq.Ingredient, amount(pq.Quantity, pq.Unit), pq.Price)
	return err
}

// CombineResult shows two amounts of one ingredient and their combination.
type CombineResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Parts    []IngredientCost `json:"parts" yaml:"parts"`
	Combined IngredientCost   `json:"combined" yaml:"combined"`
}

// NewCombineResult reports combined as the sum of parts.
func NewCombineResult(version string, combined recipe.Ingredient, parts ...recipe.Ingredient) *CombineResult {
	cr := &CombineResult{
		Parts:    make([]IngredientCost, 0, len(parts)),
		Combined: ingredientCost(combined),
	}
	cr.Init(header.KindCombineResult, version)
	for _, p := range parts {
		cr.Parts = append(cr.Parts, ingredientCost(p))
	}
	return cr
}

func ingredientCost(ing recipe.Ingredient) IngredientCost {
	return IngredientCost{
		Name:     ing.Name(),
		Quantity: ing.Quantity().Magnitude,
		Unit:     ing.Quantity().Unit.Name,
		Price:    NewMoney(ing.Price().Magnitude),
	}
}

// WriteText writes one line per part, then the combined line.
func (cr *CombineResult) WriteText(w io.Writer) error {
	for i, p := range cr.Parts {
		op := "+"
		if i == 0 {
			op = " "
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s\n", op, amount(p.Quantity, p.Unit), p.Price); err != nil {
			return err
		}
	}
	c := cr.Combined
	_, err := fmt.Fprintf(w, "= %s %s -> %s\n", amount(c.Quantity, c.Unit), c.Name, c.Price)
	return err
}
