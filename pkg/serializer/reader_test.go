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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"report.table", FormatTable},
		{"report.txt", FormatText},
		{"config", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader_Formats(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, true},
		{FormatText, true},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := NewReader(tt.format, strings.NewReader(""))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader(%s) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest) {
				t.Errorf("expected INVALID_REQUEST, got %v", err)
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"a","value":1}`, testConfig{Name: "a", Value: 1}, false},
		{"yaml", FormatYAML, "name: b\nvalue: 2\n", testConfig{Name: "b", Value: 2}, false},
		{"empty yaml", FormatYAML, "", testConfig{}, false},
		{"unknown yaml field", FormatYAML, "name: b\nvalu: 2\n", testConfig{}, true},
		{"unknown json field", FormatJSON, `{"nam":"a"}`, testConfig{}, true},
		{"malformed", FormatJSON, `{"name":`, testConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			defer r.Close()

			var got testConfig
			err = r.Deserialize(&got)
			if tt.wantErr {
				if !apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest) {
					t.Fatalf("expected INVALID_REQUEST, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_NilSafety(t *testing.T) {
	var r *Reader
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error from nil reader")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("name: cake\nvalue: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile[testConfig](yamlPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "cake" || got.Value != 12 {
		t.Errorf("unexpected value %+v", got)
	}

	_, err = FromFile[testConfig](filepath.Join(dir, "missing.yaml"))
	if !apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("name: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = FromFile[testConfig](badPath)
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("error should name the file: %v", err)
	}
}
