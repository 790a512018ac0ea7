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

import "strconv"

// Rate is a compound quantity: Magnitude Numerator units per one Denominator
// unit, e.g. 0.60 dollar/lb.
type Rate struct {
	Magnitude   float64 `json:"magnitude" yaml:"magnitude"`
	Numerator   Unit    `json:"numerator" yaml:"numerator"`
	Denominator Unit    `json:"denominator" yaml:"denominator"`
}

// Apply multiplies the rate by q, converting q to the denominator unit first.
// The result is expressed in the numerator unit.
func (r Rate) Apply(q Quantity) (Quantity, error) {
	in, err := q.ConvertTo(r.Denominator)
	if err != nil {
		return Quantity{}, err
	}
	return New(in.Magnitude*r.Magnitude, r.Numerator), nil
}

// String renders the rate as "<magnitude> <numerator>/<denominator>".
func (r Rate) String() string {
	return strconv.FormatFloat(r.Magnitude, 'g', -1, 64) + " " + r.Numerator.label() + "/" + r.Denominator.label()
}
