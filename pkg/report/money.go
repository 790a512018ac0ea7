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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/alechouse97/recipe-helper/pkg/defaults"
)

// printer formats numbers for text output.
var printer = message.NewPrinter(language.English)

// Money is a currency amount rounded to defaults.CurrencyPrecision places.
// Rounding happens only here; the pricing core keeps full precision.
type Money struct {
	d decimal.Decimal
}

// NewMoney rounds amount half away from zero.
func NewMoney(amount float64) Money {
	return Money{d: decimal.NewFromFloat(amount).Round(defaults.CurrencyPrecision)}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Float64 returns the rounded amount as a float.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// Fixed returns the amount with exactly two decimals, e.g. "1.20".
func (m Money) Fixed() string {
	return m.d.StringFixed(defaults.CurrencyPrecision)
}

// String renders "$1.20", grouping thousands ("$1,234.50").
func (m Money) String() string {
	return defaults.CurrencySymbol + printer.Sprintf("%.2f", m.Float64())
}

// MarshalJSON writes the amount as a bare number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Fixed()), nil
}

// MarshalYAML writes the amount as a float scalar with two decimals.
func (m Money) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: m.Fixed()}, nil
}
