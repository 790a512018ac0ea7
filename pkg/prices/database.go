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
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/tabular"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// DuplicatePolicy decides what happens when a price file names an ingredient twice.
type DuplicatePolicy string

const (
	// DuplicateOverwrite keeps the last row for a name, at the first row's position.
	DuplicateOverwrite DuplicatePolicy = "overwrite"
	// DuplicateReject fails the load with INVALID_PRICE_ENTRY.
	DuplicateReject DuplicatePolicy = "reject"
)

// IsValid reports whether p is a supported policy.
func (p DuplicatePolicy) IsValid() bool {
	switch p {
	case DuplicateOverwrite, DuplicateReject:
		return true
	default:
		return false
	}
}

// SupportedDuplicatePolicies returns the accepted policy names.
func SupportedDuplicatePolicies() []string {
	return []string{string(DuplicateOverwrite), string(DuplicateReject)}
}

// Entry is one ingredient of the price database.
type Entry struct {
	Name string `json:"name" yaml:"name"`

	// Reference is the purchased amount, e.g. 5 lb.
	Reference units.Quantity `json:"reference" yaml:"reference"`

	// Price is what Reference costs, in currency.
	Price units.Quantity `json:"price" yaml:"price"`

	// UnitPrice is Price / Reference, computed once at load.
	UnitPrice units.Rate `json:"unitPrice" yaml:"unitPrice"`

	Source tabular.Source `json:"source" yaml:"source"`
}

// Database maps ingredient names to price entries. It is read-only after
// construction and safe for concurrent lookups.
type Database struct {
	registry *units.Registry
	policy   DuplicatePolicy
	entries  map[string]Entry
	order    []string
}

// Option is a functional option for configuring a Database.
type Option func(*Database)

// WithRegistry sets the unit registry used to resolve unit names.
func WithRegistry(r *units.Registry) Option {
	return func(db *Database) {
		if r != nil {
			db.registry = r
		}
	}
}

// WithDuplicatePolicy sets how repeated ingredient names are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(db *Database) {
		db.policy = p
	}
}

// New builds a Database from parsed price rows. Any invalid row aborts the
// whole build; a partially loaded database is never returned.
func New(rows []tabular.PriceRow, opts ...Option) (*Database, error) {
	db := &Database{
		registry: units.Default(),
		policy:   DuplicateOverwrite,
		entries:  make(map[string]Entry, len(rows)),
		order:    make([]string, 0, len(rows)),
	}
	for _, opt := range opts {
		opt(db)
	}

	if !db.policy.IsValid() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported duplicate policy %q", db.policy),
			map[string]any{"supported": SupportedDuplicatePolicies()})
	}

	for _, row := range rows {
		entry, err := newEntry(db.registry, row)
		if err != nil {
			return nil, err
		}

		if prev, dup := db.entries[entry.Name]; dup {
			if db.policy == DuplicateReject {
				return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidPriceEntry,
					fmt.Sprintf("%s: duplicate ingredient %q, first defined at %s", row.Source, entry.Name, prev.Source),
					map[string]any{"source": row.Source.String(), "previous": prev.Source.String()})
			}
			slog.Warn("duplicate price entry overwritten",
				"ingredient", entry.Name,
				"source", row.Source.String(),
				"previous", prev.Source.String())
		} else {
			db.order = append(db.order, entry.Name)
		}
		db.entries[entry.Name] = entry
	}

	priceEntries.Set(float64(len(db.entries)))
	slog.Debug("price database built", "entries", len(db.entries), "policy", db.policy)

	return db, nil
}

// Load reads a price file from r. source names the input in errors.
func Load(r io.Reader, source string, opts ...Option) (*Database, error) {
	rows, err := tabular.ReadPrices(r, source)
	if err != nil {
		return nil, err
	}
	return New(rows, opts...)
}

// LoadFile reads the price file at path.
func LoadFile(path string, opts ...Option) (*Database, error) {
	rows, err := tabular.ReadPricesFile(path)
	if err != nil {
		return nil, err
	}
	return New(rows, opts...)
}

func newEntry(reg *units.Registry, row tabular.PriceRow) (Entry, error) {
	ctx := map[string]any{"ingredient": row.Name, "source": row.Source.String()}

	if row.Quantity <= 0 {
		return Entry{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidPriceEntry,
			fmt.Sprintf("%s: reference quantity for %q must be positive, got %g", row.Source, row.Name, row.Quantity), ctx)
	}
	if row.Price < 0 {
		return Entry{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidPriceEntry,
			fmt.Sprintf("%s: price for %q must not be negative, got %g", row.Source, row.Name, row.Price), ctx)
	}

	ref, err := reg.Quantity(row.Quantity, row.Unit)
	if err != nil {
		return Entry{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidPriceEntry,
			fmt.Sprintf("%s: invalid unit for %q", row.Source, row.Name), err, ctx)
	}

	price := units.Dollars(row.Price)
	rate, err := price.Per(ref)
	if err != nil {
		return Entry{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidPriceEntry,
			fmt.Sprintf("%s: cannot derive unit price for %q", row.Source, row.Name), err, ctx)
	}

	return Entry{
		Name:      row.Name,
		Reference: ref,
		Price:     price,
		UnitPrice: rate,
		Source:    row.Source,
	}, nil
}

// PriceFor returns the cost of q of the named ingredient. The name must match
// exactly; q must convert to the entry's reference unit.
func (db *Database) PriceFor(name string, q units.Quantity) (units.Quantity, error) {
	entry, err := db.lookup(name)
	if err != nil {
		priceLookups.WithLabelValues(outcomeUnknown).Inc()
		return units.Quantity{}, err
	}

	price, err := entry.UnitPrice.Apply(q)
	if err != nil {
		priceLookups.WithLabelValues(outcomeIncompatible).Inc()
		return units.Quantity{}, apperrors.WrapWithContext(apperrors.ErrCodeIncompatibleUnits,
			fmt.Sprintf("cannot price %s of %q, priced per %s", q, name, entry.UnitPrice.Denominator.Category),
			err, map[string]any{"ingredient": name})
	}

	if !price.IsFinite() {
		priceLookups.WithLabelValues(outcomeInvalid).Inc()
		return units.Quantity{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidQuantity,
			fmt.Sprintf("price of %s of %q is not a finite amount", q, name),
			map[string]any{"ingredient": name})
	}

	priceLookups.WithLabelValues(outcomeOK).Inc()
	return price, nil
}

// UnitPrice returns the derived currency-per-unit rate of the named ingredient.
func (db *Database) UnitPrice(name string) (units.Rate, error) {
	entry, err := db.lookup(name)
	if err != nil {
		return units.Rate{}, err
	}
	return entry.UnitPrice, nil
}

// UnitFor returns the reference unit of the named ingredient. An empty unit
// column yields the dimensionless count unit.
func (db *Database) UnitFor(name string) (units.Unit, error) {
	entry, err := db.lookup(name)
	if err != nil {
		return units.Unit{}, err
	}
	return entry.Reference.Unit, nil
}

// CategoryFor returns the unit category the named ingredient is priced in.
func (db *Database) CategoryFor(name string) (units.Category, error) {
	u, err := db.UnitFor(name)
	if err != nil {
		return "", err
	}
	return u.Category, nil
}

// Entry returns the entry for name.
func (db *Database) Entry(name string) (Entry, bool) {
	e, ok := db.entries[name]
	return e, ok
}

// Entries returns all entries in file order.
func (db *Database) Entries() []Entry {
	out := make([]Entry, 0, len(db.order))
	for _, name := range db.order {
		out = append(out, db.entries[name])
	}
	return out
}

// Names returns ingredient names in file order.
func (db *Database) Names() []string {
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

// Len returns the number of distinct ingredients.
func (db *Database) Len() int {
	return len(db.entries)
}

// Registry returns the unit registry the database resolves units with.
func (db *Database) Registry() *units.Registry {
	return db.registry
}

func (db *Database) lookup(name string) (Entry, error) {
	entry, ok := db.entries[name]
	if !ok {
		return Entry{}, apperrors.NewWithContext(apperrors.ErrCodeUnknownIngredient,
			fmt.Sprintf("ingredient %q not present in database", name),
			map[string]any{"ingredient": name})
	}
	return entry, nil
}
