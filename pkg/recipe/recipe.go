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

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// Recipe is a priced list of ingredients plus the forms it can be served in.
// It is immutable once built.
type Recipe struct {
	name        string
	ingredients []Ingredient
	forms       []ServingForm
	total       units.Quantity
	perServing  map[string]float64
}

// New assembles a recipe from already priced ingredients and validated forms.
// Repeated ingredient names are combined at the first occurrence; repeated
// form names fail with INVALID_SERVINGS.
func New(name string, ingredients []Ingredient, forms []ServingForm) (*Recipe, error) {
	merged := make([]Ingredient, 0, len(ingredients))
	pos := make(map[string]int, len(ingredients))
	for _, ing := range ingredients {
		i, seen := pos[ing.name]
		if !seen {
			pos[ing.name] = len(merged)
			merged = append(merged, ing)
			continue
		}
		combined, err := merged[i].Combine(ing)
		if err != nil {
			return nil, err
		}
		merged[i] = combined
	}

	total := units.Dollars(0)
	for _, ing := range merged {
		sum, err := total.Add(ing.price)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
				fmt.Sprintf("price of %q is not currency", ing.name), err)
		}
		total = sum
	}
	if !total.IsFinite() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("total price of recipe %q overflows", name), map[string]any{"recipe": name})
	}

	perServing := make(map[string]float64, len(forms))
	for _, f := range forms {
		if _, dup := perServing[f.Name]; dup {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidServings,
				fmt.Sprintf("duplicate serving form %q in recipe %q", f.Name, name),
				map[string]any{"recipe": name, "form": f.Name})
		}
		if err := f.validate(); err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidServings,
				fmt.Sprintf("recipe %q", name), err, map[string]any{"recipe": name, "form": f.Name})
		}
		perServing[f.Name] = total.Magnitude / float64(f.Serves)
	}

	formsCopy := make([]ServingForm, len(forms))
	copy(formsCopy, forms)

	return &Recipe{
		name:        name,
		ingredients: merged,
		forms:       formsCopy,
		total:       total,
		perServing:  perServing,
	}, nil
}

// Name returns the recipe name.
func (r *Recipe) Name() string { return r.name }

// Ingredients returns the ingredients in file order.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Ingredient returns the named ingredient.
func (r *Recipe) Ingredient(name string) (Ingredient, bool) {
	for _, ing := range r.ingredients {
		if ing.name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// ServingForms returns the serving forms in file order.
func (r *Recipe) ServingForms() []ServingForm {
	out := make([]ServingForm, len(r.forms))
	copy(out, r.forms)
	return out
}

// TotalPrice is the sum of all ingredient prices.
func (r *Recipe) TotalPrice() units.Quantity { return r.total }

// PricePerServing maps each form name to the total divided by its serves.
// Values are plain currency amounts.
func (r *Recipe) PricePerServing() map[string]float64 {
	out := make(map[string]float64, len(r.perServing))
	for k, v := range r.perServing {
		out[k] = v
	}
	return out
}

// ServingPrice returns the price of one serving of the named form.
func (r *Recipe) ServingPrice(form string) (float64, bool) {
	v, ok := r.perServing[form]
	return v, ok
}
