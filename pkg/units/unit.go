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

// Category is a class of mutually convertible units.
type Category string

const (
	// CategoryMass groups weight units; base unit is the gram.
	CategoryMass Category = "mass"
	// CategoryVolume groups capacity units; base unit is the millilitre.
	CategoryVolume Category = "volume"
	// CategoryCount groups dimensionless counts; base unit is the bare number.
	CategoryCount Category = "count"
	// CategoryCurrency groups monetary units; base unit is the dollar.
	CategoryCurrency Category = "currency"
)

// Categories lists all supported categories in display order.
var Categories = []Category{
	CategoryMass,
	CategoryVolume,
	CategoryCount,
	CategoryCurrency,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the supported categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMass, CategoryVolume, CategoryCount, CategoryCurrency:
		return true
	default:
		return false
	}
}

// Unit is a named unit within a category. Factor is the number of category
// base units in one of this unit (453.59237 for lb, since the mass base is g).
type Unit struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Factor   float64  `json:"factor" yaml:"factor"`
}

// Base units and the units the pricing core refers to directly.
var (
	Dimensionless = Unit{Name: "", Category: CategoryCount, Factor: 1}
	Dollar        = Unit{Name: "dollar", Category: CategoryCurrency, Factor: 1}
	Gram          = Unit{Name: "g", Category: CategoryMass, Factor: 1}
	Milliliter    = Unit{Name: "ml", Category: CategoryVolume, Factor: 1}
)

// String returns the unit name. The dimensionless unit renders as an empty string.
func (u Unit) String() string {
	return u.Name
}

// IsDimensionless reports whether u is the bare count unit.
func (u Unit) IsDimensionless() bool {
	return u.Category == CategoryCount && u.Name == ""
}

// Compatible reports whether values in u can be converted to other.
func (u Unit) Compatible(other Unit) bool {
	return u.Category == other.Category
}

// label is the unit name used in compound expressions, where an empty
// dimensionless name would be unreadable.
func (u Unit) label() string {
	if u.IsDimensionless() {
		return "each"
	}
	return u.Name
}
