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
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alechouse97/recipe-helper/pkg/header"
	"github.com/alechouse97/recipe-helper/pkg/units"
)

// UnitList lists the units a registry understands.
type UnitList struct {
	header.Header `json:",inline" yaml:",inline"`

	Units []UnitLine `json:"units" yaml:"units"`
}

// UnitLine is one unit with its aliases.
type UnitLine struct {
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Factor   float64  `json:"factor" yaml:"factor"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// NewUnitList lists reg's units ordered by category then size.
func NewUnitList(version string, reg *units.Registry) *UnitList {
	l := &UnitList{}
	l.Init(header.KindUnitList, version)
	for _, u := range reg.Units() {
		l.Units = append(l.Units, UnitLine{
			Name:     u.Name,
			Category: u.Category.String(),
			Factor:   u.Factor,
			Aliases:  reg.Aliases(u),
		})
	}
	return l
}

// WriteText groups units under a title per category:
//
//	Mass (base g)
//	    - lb = 453.59237 g (pound, pounds)
func (l *UnitList) WriteText(w io.Writer) error {
	title := cases.Title(language.English)
	base := make(map[string]string)
	for _, u := range l.Units {
		if u.Factor == 1 {
			if _, ok := base[u.Category]; !ok {
				base[u.Category] = u.Name
			}
		}
	}

	var b strings.Builder
	current := ""
	for _, u := range l.Units {
		if u.Category != current {
			if current != "" {
				b.WriteByte('\n')
			}
			current = u.Category
			fmt.Fprintf(&b, "%s (base %s)\n", title.String(u.Category), label(base[u.Category]))
		}
		fmt.Fprintf(&b, "    - %s = %s %s", label(u.Name), strconv.FormatFloat(u.Factor, 'g', -1, 64), label(base[u.Category]))
		if len(u.Aliases) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(u.Aliases, ", "))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func label(name string) string {
	if name == "" {
		return "each"
	}
	return name
}
