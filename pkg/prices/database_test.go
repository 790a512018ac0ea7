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

package prices

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

const samplePrices = `name,quantity,unit,price
flour,5,lb,3.00
sugar,4,lb,2.50
eggs,12,,3.00
milk,1,gallon,4.00
butter,1,lb,5.00
`

func loadSample(t *testing.T, opts ...Option) *Database {
	t.Helper()
	db, err := Load(strings.NewReader(samplePrices), "prices.csv", opts...)
	require.NoError(t, err)
	return db
}

func mustQuantity(t *testing.T, magnitude float64, unit string) units.Quantity {
	t.Helper()
	q, err := units.Default().Quantity(magnitude, unit)
	require.NoError(t, err)
	return q
}

func TestLoad_UnitPrices(t *testing.T) {
	db := loadSample(t)

	tests := []struct {
		name     string
		want     float64
		wantUnit string
	}{
		{"flour", 0.60, "lb"},
		{"sugar", 0.625, "lb"},
		{"eggs", 0.25, ""},
		{"milk", 4.00, "gallon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := db.UnitPrice(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, rate.Magnitude, 1e-9)
			assert.Equal(t, units.Dollar, rate.Numerator)
			assert.Equal(t, tt.wantUnit, rate.Denominator.Name)
		})
	}
}

func TestDatabase_PriceFor(t *testing.T) {
	db := loadSample(t)

	tests := []struct {
		name       string
		ingredient string
		magnitude  float64
		unit       string
		want       float64
	}{
		{"same unit", "flour", 2, "lb", 1.20},
		{"converted unit", "flour", 16, "oz", 0.60},
		{"count", "eggs", 3, "", 0.75},
		{"count alias", "eggs", 1, "dozen", 3.00},
		{"volume", "milk", 2, "cup", 0.50},
		{"zero quantity", "sugar", 0, "lb", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := db.PriceFor(tt.ingredient, mustQuantity(t, tt.magnitude, tt.unit))
			require.NoError(t, err)
			assert.Equal(t, units.CategoryCurrency, price.Category())
			assert.InDelta(t, tt.want, price.Magnitude, 1e-9)
		})
	}
}

func TestDatabase_PriceFor_Linear(t *testing.T) {
	db := loadSample(t)

	for _, k := range []float64{0, 0.5, 1, 2, 7.25} {
		q := mustQuantity(t, 1.5, "lb")
		base, err := db.PriceFor("butter", q)
		require.NoError(t, err)
		scaled, err := db.PriceFor("butter", q.Mul(k))
		require.NoError(t, err)
		assert.InDelta(t, k*base.Magnitude, scaled.Magnitude, 1e-9, "k=%g", k)
	}
}

func TestDatabase_PriceFor_Errors(t *testing.T) {
	db := loadSample(t)

	tests := []struct {
		name       string
		ingredient string
		quantity   units.Quantity
		wantCode   apperrors.ErrorCode
	}{
		{"unknown ingredient", "cocoa", units.New(1, units.Gram), apperrors.ErrCodeUnknownIngredient},
		{"case sensitive", "Flour", units.New(1, units.Gram), apperrors.ErrCodeUnknownIngredient},
		{"count for mass", "flour", units.New(3, units.Dimensionless), apperrors.ErrCodeIncompatibleUnits},
		{"volume for count", "eggs", units.New(1, units.Milliliter), apperrors.ErrCodeIncompatibleUnits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.PriceFor(tt.ingredient, tt.quantity)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestLoad_HashPrefixedName(t *testing.T) {
	db, err := Load(strings.NewReader("name,quantity,unit,price\n#10 can tomatoes,1,,2.50\nflour,5,lb,3\n"), "prices.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"#10 can tomatoes", "flour"}, db.Names())

	price, err := db.PriceFor("#10 can tomatoes", mustQuantity(t, 2, ""))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, price.Magnitude, 1e-9)
}

func TestDatabase_PriceFor_Overflow(t *testing.T) {
	db, err := Load(strings.NewReader("name,quantity,unit,price\nsaffron,1,g,1e300\n"), "prices.csv")
	require.NoError(t, err)

	_, err = db.PriceFor("saffron", mustQuantity(t, 1e10, "kg"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidQuantity))
}

func TestDatabase_Metadata(t *testing.T) {
	db := loadSample(t)

	assert.Equal(t, 5, db.Len())
	assert.Equal(t, []string{"flour", "sugar", "eggs", "milk", "butter"}, db.Names())

	u, err := db.UnitFor("eggs")
	require.NoError(t, err)
	assert.True(t, u.IsDimensionless())

	cat, err := db.CategoryFor("milk")
	require.NoError(t, err)
	assert.Equal(t, units.CategoryVolume, cat)

	_, err = db.UnitFor("cocoa")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownIngredient))
	_, err = db.CategoryFor("cocoa")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownIngredient))

	entry, ok := db.Entry("flour")
	require.True(t, ok)
	assert.Equal(t, 2, entry.Source.Line)
	assert.Equal(t, "prices.csv", entry.Source.File)

	entries := db.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "butter", entries[4].Name)
	assert.Same(t, units.Default(), db.Registry())
}

func TestLoad_InvalidEntries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "zero quantity",
			input:    "name,quantity,unit,price\nflour,0,lb,3.00\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
		{
			name:     "negative quantity",
			input:    "name,quantity,unit,price\nflour,-2,lb,3.00\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
		{
			name:     "negative price",
			input:    "name,quantity,unit,price\nflour,2,lb,-3.00\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
		{
			name:     "unparsable quantity",
			input:    "name,quantity,unit,price\nflour,lots,lb,3.00\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
		{
			name:     "unknown unit",
			input:    "name,quantity,unit,price\nflour,5,furlong,3.00\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
		{
			name:     "unit price overflows",
			input:    "name,quantity,unit,price\nsaffron,1e-300,g,1e300\n",
			wantCode: apperrors.ErrCodeInvalidPriceEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Load(strings.NewReader(tt.input), "prices.csv")
			require.Error(t, err)
			assert.Nil(t, db)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestLoad_UnknownUnitKeepsCause(t *testing.T) {
	_, err := Load(strings.NewReader("name,quantity,unit,price\nflour,5,furlong,3.00\n"), "prices.csv")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownUnit))
	assert.Contains(t, err.Error(), "prices.csv:2")
}

func TestNew_DuplicatePolicy(t *testing.T) {
	input := "name,quantity,unit,price\nflour,5,lb,3.00\nsugar,4,lb,2.50\nflour,10,lb,5.00\n"

	t.Run("overwrite keeps last row at first position", func(t *testing.T) {
		db, err := Load(strings.NewReader(input), "prices.csv")
		require.NoError(t, err)
		assert.Equal(t, []string{"flour", "sugar"}, db.Names())

		rate, err := db.UnitPrice("flour")
		require.NoError(t, err)
		assert.InDelta(t, 0.50, rate.Magnitude, 1e-9)
	})

	t.Run("reject", func(t *testing.T) {
		db, err := Load(strings.NewReader(input), "prices.csv", WithDuplicatePolicy(DuplicateReject))
		require.Error(t, err)
		assert.Nil(t, db)
		assert.Equal(t, apperrors.ErrCodeInvalidPriceEntry, apperrors.CodeOf(err))
		assert.Contains(t, err.Error(), "flour")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Load(strings.NewReader(input), "prices.csv", WithDuplicatePolicy("merge"))
		assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
	})
}

func TestDuplicatePolicy_IsValid(t *testing.T) {
	assert.True(t, DuplicateOverwrite.IsValid())
	assert.True(t, DuplicateReject.IsValid())
	assert.False(t, DuplicatePolicy("").IsValid())
	assert.Equal(t, []string{"overwrite", "reject"}, SupportedDuplicatePolicies())
}

func TestWithRegistry(t *testing.T) {
	reg, err := units.NewRegistry(
		units.Definition{Name: "g", Category: units.CategoryMass, Factor: 1},
		units.Definition{Name: "stick", Category: units.CategoryMass, Factor: 113},
		units.Definition{Name: "dollar", Category: units.CategoryCurrency, Factor: 1},
	)
	require.NoError(t, err)

	db, err := Load(strings.NewReader("name,quantity,unit,price\nbutter,4,stick,6.00\n"), "prices.csv", WithRegistry(reg))
	require.NoError(t, err)
	assert.Same(t, reg, db.Registry())

	price, err := db.PriceFor("butter", units.New(226, units.Gram))
	require.NoError(t, err)
	assert.InDelta(t, 3.00, price.Magnitude, 1e-9)

	// the default registry does not know sticks
	_, err = Load(strings.NewReader("name,quantity,unit,price\nbutter,4,stick,6.00\n"), "prices.csv")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownUnit))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(samplePrices), 0o600))

	db, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, db.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func TestPriceLookupsMetric(t *testing.T) {
	db := loadSample(t)

	okBefore := testutil.ToFloat64(priceLookups.WithLabelValues(outcomeOK))
	unknownBefore := testutil.ToFloat64(priceLookups.WithLabelValues(outcomeUnknown))
	incompatibleBefore := testutil.ToFloat64(priceLookups.WithLabelValues(outcomeIncompatible))

	_, _ = db.PriceFor("flour", mustQuantity(t, 1, "lb"))
	_, _ = db.PriceFor("cocoa", mustQuantity(t, 1, "lb"))
	_, _ = db.PriceFor("flour", mustQuantity(t, 1, ""))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(priceLookups.WithLabelValues(outcomeOK)))
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(priceLookups.WithLabelValues(outcomeUnknown)))
	assert.Equal(t, incompatibleBefore+1, testutil.ToFloat64(priceLookups.WithLabelValues(outcomeIncompatible)))
	assert.Equal(t, 5.0, testutil.ToFloat64(priceEntries))
}
