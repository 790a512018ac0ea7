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
	"github.com/alechouse97/recipe-helper/pkg/tabular"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// ServingForm is one way of serving a recipe, e.g. a two layer cake that
// yields 2 cakes and serves 12.
type ServingForm struct {
	Name   string         `json:"name" yaml:"name"`
	Size   string         `json:"size,omitempty" yaml:"size,omitempty"`
	Yield  units.Quantity `json:"yield" yaml:"yield"`
	Serves int            `json:"serves" yaml:"serves"`
}

// NewServingForm validates and returns a serving form. Serves and the yield
// magnitude must both be positive.
func NewServingForm(name, size string, yield units.Quantity, serves int) (ServingForm, error) {
	f := ServingForm{Name: name, Size: size, Yield: yield, Serves: serves}
	if err := f.validate(); err != nil {
		return ServingForm{}, err
	}
	return f, nil
}

func (f ServingForm) validate() error {
	if f.Serves <= 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidServings,
			fmt.Sprintf("form %q must serve at least one, got %d", f.Name, f.Serves),
			map[string]any{"form": f.Name, "serves": f.Serves})
	}
	if !(f.Yield.Magnitude > 0) || !f.Yield.IsFinite() {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidServings,
			fmt.Sprintf("form %q must yield a positive quantity, got %s", f.Name, f.Yield),
			map[string]any{"form": f.Name})
	}
	return nil
}

// servingFromRow resolves a servings file row. Every failure names the row.
func servingFromRow(reg *units.Registry, row tabular.ServingRow) (ServingForm, error) {
	ctx := map[string]any{"form": row.Form, "source": row.Source.String()}

	yield, err := reg.Quantity(row.Quantity, row.Unit)
	if err != nil {
		return ServingForm{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidServings,
			fmt.Sprintf("%s: invalid yield unit for form %q", row.Source, row.Form), err, ctx)
	}

	form, err := NewServingForm(row.Form, row.Size, yield, row.Serves)
	if err != nil {
		return ServingForm{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidServings,
			row.Source.String(), err, ctx)
	}
	return form, nil
}
