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
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alechouse97/recipe-helper/pkg/defaults"
	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/tabular"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// Builder turns ingredient and serving rows into priced recipes. A Builder
// only reads its pricer and may be shared across goroutines.
type Builder struct {
	pricer   Pricer
	registry *units.Registry
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithRegistry sets the registry used to resolve ingredient and yield units.
func WithRegistry(r *units.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// NewBuilder returns a Builder pricing through p. When p exposes its own unit
// registry, that registry is used unless WithRegistry overrides it.
func NewBuilder(p Pricer, opts ...Option) *Builder {
	b := &Builder{
		pricer:   p,
		registry: units.Default(),
	}
	if rp, ok := p.(interface{ Registry() *units.Registry }); ok && rp.Registry() != nil {
		b.registry = rp.Registry()
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build prices every ingredient row and validates every serving row. Any
// failure aborts the build and no recipe is returned.
func (b *Builder) Build(ctx context.Context, name string, ingredientRows []tabular.IngredientRow, servingRows []tabular.ServingRow) (*Recipe, error) {
	start := time.Now()
	defer func() {
		recipeBuildDuration.Observe(time.Since(start).Seconds())
	}()

	r, err := b.build(ctx, name, ingredientRows, servingRows)
	if err != nil {
		recipeBuildFailures.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
		return nil, err
	}

	slog.Debug("recipe built",
		"recipe", name,
		"ingredients", len(r.ingredients),
		"forms", len(r.forms),
		"total", r.total.Magnitude)
	return r, nil
}

func (b *Builder) build(ctx context.Context, name string, ingredientRows []tabular.IngredientRow, servingRows []tabular.ServingRow) (*Recipe, error) {
	ingredients := make([]Ingredient, 0, len(ingredientRows))
	for _, row := range ingredientRows {
		if err := checkContext(ctx, name); err != nil {
			return nil, err
		}

		q, err := b.registry.Quantity(row.Quantity, row.Unit)
		if err != nil {
			return nil, atRow(row.Source, err)
		}
		ing, err := NewIngredient(row.Name, b.pricer, q)
		if err != nil {
			return nil, atRow(row.Source, err)
		}
		ingredients = append(ingredients, ing)
	}

	forms := make([]ServingForm, 0, len(servingRows))
	seen := make(map[string]tabular.Source, len(servingRows))
	for _, row := range servingRows {
		if err := checkContext(ctx, name); err != nil {
			return nil, err
		}

		if prev, dup := seen[row.Form]; dup {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidServings,
				fmt.Sprintf("%s: duplicate serving form %q, first defined at %s", row.Source, row.Form, prev),
				map[string]any{"recipe": name, "form": row.Form})
		}
		seen[row.Form] = row.Source

		form, err := servingFromRow(b.registry, row)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	return New(name, ingredients, forms)
}

// BuildFromDir builds the recipe stored in dir. The recipe is named after the
// directory; a missing servings file means the recipe has no serving forms.
func (b *Builder) BuildFromDir(ctx context.Context, dir string) (*Recipe, error) {
	name := filepath.Base(filepath.Clean(dir))

	ingredientRows, err := tabular.ReadIngredientsFile(filepath.Join(dir, defaults.IngredientsFile))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.CodeOf(err),
			fmt.Sprintf("failed to read ingredients of recipe %q", name), err,
			map[string]any{"recipe": name, "dir": dir})
	}

	servingRows, err := tabular.ReadServingsFile(filepath.Join(dir, defaults.ServingsFile))
	if err != nil {
		if !apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.WrapWithContext(apperrors.CodeOf(err),
				fmt.Sprintf("failed to read servings of recipe %q", name), err,
				map[string]any{"recipe": name, "dir": dir})
		}
		slog.Debug("recipe has no servings file", "recipe", name)
		servingRows = nil
	}

	return b.Build(ctx, name, ingredientRows, servingRows)
}

// atRow prefixes err with the row it came from, keeping err's code outermost.
func atRow(src tabular.Source, err error) error {
	return apperrors.WrapWithContext(apperrors.CodeOf(err), src.String(), err,
		map[string]any{"source": src.String()})
}

func checkContext(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
			fmt.Sprintf("building recipe %q cancelled", name), ctx.Err(),
			map[string]any{"recipe": name})
	default:
		return nil
	}
}
