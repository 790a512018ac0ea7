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
	"math"
	"strconv"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
)

// Quantity pairs a magnitude with a Unit. Quantities are values: every
// operation returns a new Quantity and leaves its operands untouched.
type Quantity struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Unit      Unit    `json:"unit" yaml:"unit"`
}

// New returns magnitude expressed in u.
func New(magnitude float64, u Unit) Quantity {
	return Quantity{Magnitude: magnitude, Unit: u}
}

// Dollars returns an amount of currency in dollars.
func Dollars(amount float64) Quantity {
	return New(amount, Dollar)
}

// Category returns the category of the quantity's unit.
func (q Quantity) Category() Category {
	return q.Unit.Category
}

// IsZero reports whether the magnitude is zero.
func (q Quantity) IsZero() bool {
	return q.Magnitude == 0
}

// IsFinite reports whether the magnitude is neither NaN nor infinite.
func (q Quantity) IsFinite() bool {
	return !math.IsNaN(q.Magnitude) && !math.IsInf(q.Magnitude, 0)
}

// ConvertTo expresses q in target. Converting across categories fails with
// INCOMPATIBLE_UNITS.
func (q Quantity) ConvertTo(target Unit) (Quantity, error) {
	if !q.Unit.Compatible(target) {
		return Quantity{}, incompatible(q.Unit, target)
	}
	if q.Unit == target {
		return q, nil
	}
	return New(q.Magnitude*q.Unit.Factor/target.Factor, target), nil
}

// Add returns q + other in q's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	o, err := other.ConvertTo(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return New(q.Magnitude+o.Magnitude, q.Unit), nil
}

// Mul scales the magnitude by k.
func (q Quantity) Mul(k float64) Quantity {
	return New(q.Magnitude*k, q.Unit)
}

// Div divides the magnitude by k. Division by zero fails with INVALID_QUANTITY.
func (q Quantity) Div(k float64) (Quantity, error) {
	if k == 0 {
		return Quantity{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			"division by zero", map[string]any{"quantity": q.String()})
	}
	return New(q.Magnitude/k, q.Unit), nil
}

// Ratio returns the dimensionless ratio q / other for same-category quantities.
func (q Quantity) Ratio(other Quantity) (float64, error) {
	o, err := other.ConvertTo(q.Unit)
	if err != nil {
		return 0, err
	}
	if o.Magnitude == 0 {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			"ratio denominator is zero", map[string]any{"quantity": other.String()})
	}
	return q.Magnitude / o.Magnitude, nil
}

// Per divides q by a quantity of another (or the same) category, producing a
// compound Rate such as dollar per lb.
func (q Quantity) Per(denominator Quantity) (Rate, error) {
	if denominator.Magnitude == 0 || math.IsNaN(denominator.Magnitude) || math.IsInf(denominator.Magnitude, 0) {
		return Rate{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			"rate denominator must be a finite non-zero quantity",
			map[string]any{"numerator": q.String(), "denominator": denominator.String()})
	}
	magnitude := q.Magnitude / denominator.Magnitude
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Rate{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("rate %s per %s is not a finite number", q, denominator),
			map[string]any{"numerator": q.String(), "denominator": denominator.String()})
	}
	return Rate{
		Magnitude:   magnitude,
		Numerator:   q.Unit,
		Denominator: denominator.Unit,
	}, nil
}

// ApproxEqual reports whether other, converted to q's unit, is within tol of q.
// Quantities of different categories are never equal.
func (q Quantity) ApproxEqual(other Quantity, tol float64) bool {
	o, err := other.ConvertTo(q.Unit)
	if err != nil {
		return false
	}
	return math.Abs(q.Magnitude-o.Magnitude) <= tol
}

// String renders the quantity as "<magnitude> <unit>", omitting the unit
// when dimensionless.
func (q Quantity) String() string {
	m := strconv.FormatFloat(q.Magnitude, 'g', -1, 64)
	if q.Unit.Name == "" {
		return m
	}
	return m + " " + q.Unit.Name
}

func incompatible(from, to Unit) error {
	return apperrors.NewWithContext(apperrors.ErrCodeIncompatibleUnits,
		fmt.Sprintf("cannot convert %s (%s) to %s (%s)", from.label(), from.Category, to.label(), to.Category),
		map[string]any{"from": from.Name, "to": to.Name})
}
