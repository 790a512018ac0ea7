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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

func TestNew_Empty(t *testing.T) {
	r, err := New("water", nil, nil)
	require.NoError(t, err)
	assert.True(t, r.TotalPrice().IsZero())
	assert.Equal(t, units.CategoryCurrency, r.TotalPrice().Category())
	assert.Empty(t, r.Ingredients())
	assert.Empty(t, r.PricePerServing())
}

func TestNew_TotalOverflow(t *testing.T) {
	saffron := Ingredient{name: "saffron", quantity: units.New(1, units.Gram), price: units.Dollars(math.MaxFloat64)}
	truffle := Ingredient{name: "truffle", quantity: units.New(1, units.Gram), price: units.Dollars(math.MaxFloat64)}

	r, err := New("luxury", []Ingredient{saffron, truffle}, nil)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Equal(t, apperrors.ErrCodeInvalidQuantity, apperrors.CodeOf(err))
}

func TestNew_ServingValidation(t *testing.T) {
	price := Ingredient{name: "flour", quantity: units.New(1, units.Gram), price: units.Dollars(12)}

	tests := []struct {
		name  string
		forms []ServingForm
	}{
		{"zero serves", []ServingForm{{Name: "pie", Yield: units.New(1, units.Dimensionless), Serves: 0}}},
		{"zero yield", []ServingForm{{Name: "pie", Yield: units.New(0, units.Dimensionless), Serves: 6}}},
		{"negative yield", []ServingForm{{Name: "pie", Yield: units.New(-1, units.Dimensionless), Serves: 6}}},
		{"unset yield", []ServingForm{{Name: "pie", Serves: 6}}},
		{"duplicate", []ServingForm{
			{Name: "pie", Yield: units.New(1, units.Dimensionless), Serves: 6},
			{Name: "pie", Yield: units.New(1, units.Dimensionless), Serves: 8},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("pie", []Ingredient{price}, tt.forms)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, apperrors.ErrCodeInvalidServings, apperrors.CodeOf(err))
		})
	}
}

func TestNewServingForm(t *testing.T) {
	one := units.New(1, units.Dimensionless)

	tests := []struct {
		name    string
		yield   units.Quantity
		serves  int
		wantErr bool
	}{
		{"valid", one, 6, false},
		{"zero serves", one, 0, true},
		{"negative serves", one, -1, true},
		{"zero yield", units.New(0, units.Dimensionless), 6, true},
		{"negative yield", units.New(-2, units.Gram), 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewServingForm("pie", "9 inch", tt.yield, tt.serves)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeInvalidServings, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pie", f.Name)
			assert.Equal(t, tt.serves, f.Serves)
		})
	}
}

func TestRecipe_AccessorsReturnCopies(t *testing.T) {
	ing := Ingredient{name: "flour", quantity: units.New(1, units.Gram), price: units.Dollars(6)}
	form := ServingForm{Name: "pie", Yield: units.New(1, units.Dimensionless), Serves: 6}

	r, err := New("pie", []Ingredient{ing}, []ServingForm{form})
	require.NoError(t, err)

	r.Ingredients()[0] = Ingredient{}
	r.ServingForms()[0].Serves = 1
	r.PricePerServing()["pie"] = 100

	assert.Equal(t, "flour", r.Ingredients()[0].Name())
	assert.Equal(t, 6, r.ServingForms()[0].Serves)
	v, _ := r.ServingPrice("pie")
	assert.InDelta(t, 1.0, v, 1e-12)
}
