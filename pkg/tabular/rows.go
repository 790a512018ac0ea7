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

package tabular

import (
	"io"
	"strings"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
)

// PriceRow is one row of the price database file.
type PriceRow struct {
	Source   Source  `json:"source" yaml:"source"`
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	Price    float64 `json:"price" yaml:"price"`
}

// IngredientRow is one row of a recipe ingredients file.
type IngredientRow struct {
	Source   Source  `json:"source" yaml:"source"`
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// ServingRow is one row of a recipe servings file.
type ServingRow struct {
	Source   Source  `json:"source" yaml:"source"`
	Form     string  `json:"form" yaml:"form"`
	Size     string  `json:"size" yaml:"size"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	Serves   int     `json:"serves" yaml:"serves"`
}

// ReadPrices parses a price file with columns name, quantity, unit, price.
// Any malformed row fails the whole read with INVALID_PRICE_ENTRY.
func ReadPrices(r io.Reader, file string) ([]PriceRow, error) {
	const code = apperrors.ErrCodeInvalidPriceEntry

	recs, err := readRecords(r, file, []string{ColName, ColQuantity, ColUnit, ColPrice}, code)
	if err != nil {
		return nil, err
	}

	rows := make([]PriceRow, 0, len(recs))
	for _, rec := range recs {
		name, err := requireName(rec, ColName, code)
		if err != nil {
			return nil, err
		}
		qty, err := parseNumber(rec, ColQuantity, code)
		if err != nil {
			return nil, err
		}
		price, err := parseNumber(rec, ColPrice, code)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PriceRow{
			Source:   rec.source,
			Name:     name,
			Quantity: qty,
			Unit:     rec.cell(ColUnit),
			Price:    price,
		})
	}
	return rows, nil
}

// ReadIngredients parses an ingredients file with columns name, quantity, unit.
func ReadIngredients(r io.Reader, file string) ([]IngredientRow, error) {
	const code = apperrors.ErrCodeInvalidRequest

	recs, err := readRecords(r, file, []string{ColName, ColQuantity, ColUnit}, code)
	if err != nil {
		return nil, err
	}

	rows := make([]IngredientRow, 0, len(recs))
	for _, rec := range recs {
		name, err := requireName(rec, ColName, code)
		if err != nil {
			return nil, err
		}
		qty, err := parseNumber(rec, ColQuantity, code)
		if err != nil {
			return nil, err
		}
		rows = append(rows, IngredientRow{
			Source:   rec.source,
			Name:     name,
			Quantity: qty,
			Unit:     rec.cell(ColUnit),
		})
	}
	return rows, nil
}

// ReadServings parses a servings file with columns form, size, quantity, unit, serves.
// Malformed rows fail with INVALID_SERVINGS; range checks are left to the recipe.
func ReadServings(r io.Reader, file string) ([]ServingRow, error) {
	const code = apperrors.ErrCodeInvalidServings

	recs, err := readRecords(r, file, []string{ColForm, ColSize, ColQuantity, ColUnit, ColServes}, code)
	if err != nil {
		return nil, err
	}

	rows := make([]ServingRow, 0, len(recs))
	for _, rec := range recs {
		form, err := requireName(rec, ColForm, code)
		if err != nil {
			return nil, err
		}
		qty, err := parseNumber(rec, ColQuantity, code)
		if err != nil {
			return nil, err
		}
		serves, err := parseInt(rec, ColServes, code)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ServingRow{
			Source:   rec.source,
			Form:     form,
			Size:     rec.cell(ColSize),
			Quantity: qty,
			Unit:     rec.cell(ColUnit),
			Serves:   serves,
		})
	}
	return rows, nil
}

// ReadPricesFile opens path and parses it with ReadPrices.
func ReadPricesFile(path string) ([]PriceRow, error) {
	return readFile(path, ReadPrices)
}

// ReadIngredientsFile opens path and parses it with ReadIngredients.
func ReadIngredientsFile(path string) ([]IngredientRow, error) {
	return readFile(path, ReadIngredients)
}

// ReadServingsFile opens path and parses it with ReadServings.
func ReadServingsFile(path string) ([]ServingRow, error) {
	return readFile(path, ReadServings)
}

// requireName returns a key column value. Keys are matched exactly later on,
// so only an all-blank value is rejected here.
func requireName(rec record, col string, code apperrors.ErrorCode) (string, error) {
	v := rec.cell(col)
	if strings.TrimSpace(v) == "" {
		return "", apperrors.NewWithContext(code, "column \""+col+"\" is empty",
			map[string]any{"source": rec.source.String(), "column": col})
	}
	return v, nil
}
