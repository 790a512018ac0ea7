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

package recipe

import (
	"fmt"
	"strings"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// Pricer prices a quantity of a named ingredient. *prices.Database satisfies it.
type Pricer interface {
	PriceFor(name string, q units.Quantity) (units.Quantity, error)
}

// Ingredient is a named quantity together with what it costs. The price is
// computed once, when the ingredient is created.
type Ingredient struct {
	name     string
	quantity units.Quantity
	price    units.Quantity
}

// NewIngredient prices q of name through p. Errors from the pricer are
// returned unchanged.
func NewIngredient(name string, p Pricer, q units.Quantity) (Ingredient, error) {
	if q.Magnitude < 0 {
		return Ingredient{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("quantity of %q must not be negative, got %s", name, q),
			map[string]any{"ingredient": name})
	}

	price, err := p.PriceFor(name, q)
	if err != nil {
		return Ingredient{}, err
	}
	if !price.IsFinite() {
		return Ingredient{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("price of %s %q is not a finite amount", q, name),
			map[string]any{"ingredient": name})
	}

	return Ingredient{name: name, quantity: q, price: price}, nil
}

// Name returns the ingredient name.
func (i Ingredient) Name() string { return i.name }

// Quantity returns the amount used.
func (i Ingredient) Quantity() units.Quantity { return i.quantity }

// Price returns the cost of the amount used.
func (i Ingredient) Price() units.Quantity { return i.price }

// Combine adds other to i. The result keeps i's unit and its price is the sum
// of both prices; the database is not consulted again.
func (i Ingredient) Combine(other Ingredient) (Ingredient, error) {
	if i.name != other.name {
		return Ingredient{}, apperrors.NewWithContext(apperrors.ErrCodeMismatchedIngredient,
			fmt.Sprintf("cannot combine %q with %q", i.name, other.name),
			map[string]any{"ingredient": i.name, "other": other.name})
	}

	q, err := i.quantity.Add(other.quantity)
	if err != nil {
		return Ingredient{}, apperrors.WrapWithContext(apperrors.ErrCodeIncompatibleUnits,
			fmt.Sprintf("cannot combine %s and %s of %q", i.quantity, other.quantity, i.name),
			err, map[string]any{"ingredient": i.name})
	}

	price, err := i.price.Add(other.price)
	if err != nil {
		return Ingredient{}, apperrors.Wrap(apperrors.ErrCodeInternal, "ingredient prices are not currency", err)
	}
	if !q.IsFinite() || !price.IsFinite() {
		return Ingredient{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("combined amount of %q overflows", i.name),
			map[string]any{"ingredient": i.name})
	}

	return Ingredient{name: i.name, quantity: q, price: price}, nil
}

// String renders the ingredient as "2.00 lb flour - $1.20".
func (i Ingredient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4.2f ", i.quantity.Magnitude)
	if !i.quantity.Unit.IsDimensionless() {
		b.WriteString(i.quantity.Unit.Name)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%s - $%.2f", i.name, i.price.Magnitude)
	return b.String()
}
