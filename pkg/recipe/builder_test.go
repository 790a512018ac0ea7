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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/tabular"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

func ingredientRows(t *testing.T, csv string) []tabular.IngredientRow {
	t.Helper()
	rows, err := tabular.ReadIngredients(strings.NewReader(csv), "ingredients.csv")
	require.NoError(t, err)
	return rows
}

func servingRows(t *testing.T, csv string) []tabular.ServingRow {
	t.Helper()
	rows, err := tabular.ReadServings(strings.NewReader(csv), "servings.csv")
	require.NoError(t, err)
	return rows
}

const cakeIngredients = `name,quantity,unit
flour,2,lb
sugar,1,cup
eggs,3,
milk,2,cup
`

func TestBuilder_Build(t *testing.T) {
	db := testDB(t)
	b := NewBuilder(db)

	r, err := b.Build(context.Background(), "cake",
		ingredientRows(t, "name,quantity,unit\nflour,2,lb\neggs,3,\nmilk,2,cup\n"),
		servingRows(t, "form,size,quantity,unit,serves\nlayer-cake,9 inch,2,,12\ncupcakes,,24,,24\n"))
	require.NoError(t, err)

	assert.Equal(t, "cake", r.Name())
	names := make([]string, 0)
	for _, ing := range r.Ingredients() {
		names = append(names, ing.Name())
	}
	assert.Equal(t, []string{"flour", "eggs", "milk"}, names)

	// 1.20 + 0.75 + 0.50
	assert.InDelta(t, 2.45, r.TotalPrice().Magnitude, 1e-9)
	assert.Equal(t, units.Dollar, r.TotalPrice().Unit)

	forms := r.ServingForms()
	require.Len(t, forms, 2)
	assert.Equal(t, "layer-cake", forms[0].Name)
	assert.Equal(t, "9 inch", forms[0].Size)
	assert.Equal(t, 12, forms[0].Serves)

	per := r.PricePerServing()
	assert.InDelta(t, 2.45/12, per["layer-cake"], 1e-12)
	assert.InDelta(t, 2.45/24, per["cupcakes"], 1e-12)

	v, ok := r.ServingPrice("cupcakes")
	assert.True(t, ok)
	assert.InDelta(t, per["cupcakes"], v, 1e-12)
	_, ok = r.ServingPrice("pie")
	assert.False(t, ok)
}

func TestBuilder_Build_SugarByVolumeFails(t *testing.T) {
	// sugar is priced by weight, so a cup of it cannot be priced
	_, err := NewBuilder(testDB(t)).Build(context.Background(), "cake", ingredientRows(t, cakeIngredients), nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeIncompatibleUnits, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "ingredients.csv:3")
}

func TestBuilder_Build_TotalIndependentOfOrder(t *testing.T) {
	b := NewBuilder(testDB(t))

	forward, err := b.Build(context.Background(), "a",
		ingredientRows(t, "name,quantity,unit\nflour,2,lb\neggs,3,\nmilk,2,cup\ncocoa powder,3,oz\n"), nil)
	require.NoError(t, err)
	reverse, err := b.Build(context.Background(), "b",
		ingredientRows(t, "name,quantity,unit\ncocoa powder,3,oz\nmilk,2,cup\neggs,3,\nflour,2,lb\n"), nil)
	require.NoError(t, err)

	var sum float64
	for _, ing := range forward.Ingredients() {
		sum += ing.Price().Magnitude
	}
	assert.InDelta(t, sum, forward.TotalPrice().Magnitude, 1e-9)
	assert.InDelta(t, forward.TotalPrice().Magnitude, reverse.TotalPrice().Magnitude, 1e-9)
}

func TestBuilder_Build_PerServing(t *testing.T) {
	b := NewBuilder(testDB(t))

	// 20 lb of flour at 0.60/lb is exactly 12 dollars
	r, err := b.Build(context.Background(), "bread",
		ingredientRows(t, "name,quantity,unit\nflour,20,lb\n"),
		servingRows(t, "form,size,quantity,unit,serves\nloaf,,1,,6\nrolls,,18,,18\nslices,,7,,7\n"))
	require.NoError(t, err)

	assert.InDelta(t, 12.0, r.TotalPrice().Magnitude, 1e-9)
	v, _ := r.ServingPrice("loaf")
	assert.InDelta(t, 2.0, v, 1e-9)

	for _, f := range r.ServingForms() {
		per, ok := r.ServingPrice(f.Name)
		require.True(t, ok)
		assert.InDelta(t, r.TotalPrice().Magnitude, per*float64(f.Serves), 1e-9, f.Name)
	}
}

func TestBuilder_Build_MergesDuplicateIngredients(t *testing.T) {
	r, err := NewBuilder(testDB(t)).Build(context.Background(), "cake",
		ingredientRows(t, "name,quantity,unit\nflour,1,lb\neggs,2,\nflour,8,oz\n"), nil)
	require.NoError(t, err)

	ings := r.Ingredients()
	require.Len(t, ings, 2)
	assert.Equal(t, "flour", ings[0].Name())
	assert.InDelta(t, 1.5, ings[0].Quantity().Magnitude, 1e-9)
	assert.InDelta(t, 0.90, ings[0].Price().Magnitude, 1e-9)

	flour, ok := r.Ingredient("flour")
	require.True(t, ok)
	assert.Equal(t, ings[0], flour)
	_, ok = r.Ingredient("butter")
	assert.False(t, ok)
}

func TestBuilder_Build_Errors(t *testing.T) {
	tests := []struct {
		name        string
		ingredients string
		servings    string
		wantCode    apperrors.ErrorCode
		wantInError string
	}{
		{
			name:        "unknown ingredient",
			ingredients: "name,quantity,unit\nflour,1,lb\ncocoa,1,oz\n",
			wantCode:    apperrors.ErrCodeUnknownIngredient,
			wantInError: "cocoa",
		},
		{
			name:        "unknown unit",
			ingredients: "name,quantity,unit\nflour,1,handful\n",
			wantCode:    apperrors.ErrCodeUnknownUnit,
			wantInError: "ingredients.csv:2",
		},
		{
			name:        "zero serves",
			ingredients: "name,quantity,unit\nflour,1,lb\n",
			servings:    "form,size,quantity,unit,serves\nlayer-cake,,1,,0\n",
			wantCode:    apperrors.ErrCodeInvalidServings,
			wantInError: "servings.csv:2",
		},
		{
			name:        "zero yield",
			ingredients: "name,quantity,unit\nflour,1,lb\n",
			servings:    "form,size,quantity,unit,serves\nlayer-cake,,0,,8\n",
			wantCode:    apperrors.ErrCodeInvalidServings,
			wantInError: "servings.csv:2",
		},
		{
			name:        "negative serves",
			ingredients: "name,quantity,unit\nflour,1,lb\n",
			servings:    "form,size,quantity,unit,serves\nlayer-cake,,1,,-4\n",
			wantCode:    apperrors.ErrCodeInvalidServings,
		},
		{
			name:        "unknown yield unit",
			ingredients: "name,quantity,unit\nflour,1,lb\n",
			servings:    "form,size,quantity,unit,serves\nlayer-cake,,1,slab,4\n",
			wantCode:    apperrors.ErrCodeInvalidServings,
		},
		{
			name:        "duplicate form",
			ingredients: "name,quantity,unit\nflour,1,lb\n",
			servings:    "form,size,quantity,unit,serves\npie,,1,,8\npie,,1,,6\n",
			wantCode:    apperrors.ErrCodeInvalidServings,
			wantInError: "servings.csv:3",
		},
		{
			name:        "negative quantity",
			ingredients: "name,quantity,unit\nflour,-1,lb\n",
			wantCode:    apperrors.ErrCodeInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var servings []tabular.ServingRow
			if tt.servings != "" {
				servings = servingRows(t, tt.servings)
			}

			r, err := NewBuilder(testDB(t)).Build(context.Background(), "cake", ingredientRows(t, tt.ingredients), servings)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
			if tt.wantInError != "" {
				assert.Contains(t, err.Error(), tt.wantInError)
			}
		})
	}
}

func TestBuilder_Build_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewBuilder(testDB(t)).Build(ctx, "cake", ingredientRows(t, "name,quantity,unit\nflour,1,lb\n"), nil)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_Build_FailureMetric(t *testing.T) {
	before := testutil.ToFloat64(recipeBuildFailures.WithLabelValues(string(apperrors.ErrCodeUnknownIngredient)))

	_, err := NewBuilder(testDB(t)).Build(context.Background(), "cake", ingredientRows(t, "name,quantity,unit\ncocoa,1,oz\n"), nil)
	require.Error(t, err)

	after := testutil.ToFloat64(recipeBuildFailures.WithLabelValues(string(apperrors.ErrCodeUnknownIngredient)))
	assert.Equal(t, before+1, after)
}

func TestNewBuilder_Registry(t *testing.T) {
	db := testDB(t)
	assert.Same(t, db.Registry(), NewBuilder(db).registry)
	assert.Same(t, units.Default(), NewBuilder(stubPricer{}).registry)

	reg, err := units.NewRegistry(units.Definition{Name: "g", Category: units.CategoryMass, Factor: 1})
	require.NoError(t, err)
	assert.Same(t, reg, NewBuilder(db, WithRegistry(reg)).registry)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestBuilder_BuildFromDir(t *testing.T) {
	root := t.TempDir()
	b := NewBuilder(testDB(t))

	cake := filepath.Join(root, "chocolate-cake")
	writeFile(t, filepath.Join(cake, "ingredients.csv"), "name,quantity,unit\nflour,2,lb\ncocoa powder,4,oz\n")
	writeFile(t, filepath.Join(cake, "servings.csv"), "form,size,quantity,unit,serves\nsheet,9x13,1,,16\n")

	r, err := b.BuildFromDir(context.Background(), cake+string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, "chocolate-cake", r.Name())
	assert.InDelta(t, 3.20, r.TotalPrice().Magnitude, 1e-9)
	require.Len(t, r.ServingForms(), 1)

	t.Run("no servings file", func(t *testing.T) {
		dir := filepath.Join(root, "frosting")
		writeFile(t, filepath.Join(dir, "ingredients.csv"), "name,quantity,unit\nsugar,2,lb\n")

		r, err := b.BuildFromDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Empty(t, r.ServingForms())
		assert.Empty(t, r.PricePerServing())
		assert.InDelta(t, 1.00, r.TotalPrice().Magnitude, 1e-9)
	})

	t.Run("no ingredients file", func(t *testing.T) {
		dir := filepath.Join(root, "empty")
		require.NoError(t, os.MkdirAll(dir, 0o755))

		_, err := b.BuildFromDir(context.Background(), dir)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("malformed servings file", func(t *testing.T) {
		dir := filepath.Join(root, "broken")
		writeFile(t, filepath.Join(dir, "ingredients.csv"), "name,quantity,unit\nsugar,2,lb\n")
		writeFile(t, filepath.Join(dir, "servings.csv"), "form,size\n")

		_, err := b.BuildFromDir(context.Background(), dir)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidServings, apperrors.CodeOf(err))
	})
}
