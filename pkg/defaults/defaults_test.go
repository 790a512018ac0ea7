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

package defaults

import (
	"path/filepath"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"LoadTimeout", LoadTimeout, 30 * time.Second, 10 * time.Minute},
		{"RecipeBuildTimeout", RecipeBuildTimeout, 5 * time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestRecipeBuildTimeoutLessThanLoad(t *testing.T) {
	if RecipeBuildTimeout >= LoadTimeout {
		t.Errorf("RecipeBuildTimeout (%v) should be less than LoadTimeout (%v)",
			RecipeBuildTimeout, LoadTimeout)
	}
}

func TestBuildConcurrency(t *testing.T) {
	if BuildConcurrency < 1 || BuildConcurrency > MaxBuildConcurrency {
		t.Errorf("BuildConcurrency (%d) outside [1, %d]", BuildConcurrency, MaxBuildConcurrency)
	}
}

func TestFileNames(t *testing.T) {
	for _, name := range []string{PricesFile, IngredientsFile, ServingsFile, ConfigFile, RecipesDir} {
		if name == "" || filepath.Base(name) != name {
			t.Errorf("%q must be a bare file name", name)
		}
	}
	if IngredientsFile == ServingsFile {
		t.Error("ingredients and servings files must differ")
	}
}
