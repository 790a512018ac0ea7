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

package tabular

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
)

// Column names shared by the input file formats.
const (
	ColName     = "name"
	ColQuantity = "quantity"
	ColUnit     = "unit"
	ColPrice    = "price"
	ColForm     = "form"
	ColSize     = "size"
	ColServes   = "serves"
)

const utf8BOM = "\ufeff"

// Source identifies the file and line a row was read from.
type Source struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

// String returns "file:line".
func (s Source) String() string {
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// record is one data row with cells addressed through the header index.
type record struct {
	source Source
	cells  []string
	index  map[string]int
}

// cell returns the named column, or "" when the row is short. Blank cells are
// kept as empty strings; there is no missing-value sentinel.
func (r record) cell(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// readRecords parses CSV from r, requiring the given header columns. Errors
// carry code so each file format reports its own error kind.
func readRecords(r io.Reader, file string, required []string, code apperrors.ErrorCode) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, apperrors.NewWithContext(code, "file is empty, expected a header row",
				map[string]any{"file": file})
		}
		return nil, apperrors.WrapWithContext(code, "failed to read header row", err,
			map[string]any{"file": file})
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		if _, dup := index[h]; dup {
			return nil, apperrors.NewWithContext(code, fmt.Sprintf("duplicate column %q", h),
				map[string]any{"file": file})
		}
		index[h] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, apperrors.NewWithContext(code, fmt.Sprintf("missing required column %q", col),
				map[string]any{"file": file, "columns": header})
		}
	}

	var out []record
	for {
		cells, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.WrapWithContext(code, "malformed CSV", err,
				map[string]any{"file": file})
		}
		line, _ := cr.FieldPos(0)
		out = append(out, record{
			source: Source{File: file, Line: line},
			cells:  cells,
			index:  index,
		})
	}

	slog.Debug("read tabular file", "file", file, "rows", len(out))
	return out, nil
}

// readFile opens path, hands it to read and always closes the handle.
func readFile[T any](path string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		code := apperrors.ErrCodeInternal
		if stderrors.Is(err, fs.ErrNotExist) {
			code = apperrors.ErrCodeNotFound
		}
		return nil, apperrors.WrapWithContext(code, "failed to open file", err,
			map[string]any{"file": path})
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close file", "file", path, "error", closeErr)
		}
	}()

	return read(f, path)
}

// parseNumber parses a finite float from a cell.
func parseNumber(rec record, col string, code apperrors.ErrorCode) (float64, error) {
	raw := strings.TrimSpace(rec.cell(col))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewWithContext(code,
			fmt.Sprintf("column %q: %q is not a number", col, raw),
			map[string]any{"source": rec.source.String(), "column": col})
	}
	return v, nil
}

// parseInt parses a base-10 integer from a cell.
func parseInt(rec record, col string, code apperrors.ErrorCode) (int, error) {
	raw := strings.TrimSpace(rec.cell(col))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewWithContext(code,
			fmt.Sprintf("column %q: %q is not an integer", col, raw),
			map[string]any{"source": rec.source.String(), "column": col})
	}
	return v, nil
}
