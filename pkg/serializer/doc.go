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

// Package serializer provides encoding and decoding of recipe-helper documents
// in multiple formats.
//
// # Supported Formats
//
// Text:
//   - The value's own layout, via the TextRenderer interface
//   - Values without one are written as a table
//
// JSON:
//   - Machine-parseable, indented representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package; also the config file format
//
// Table:
//   - Flattened FIELD/VALUE rows sorted by dotted key
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	cfg, err := serializer.FromFile[config.Config]("recipe-helper.yaml")
//
// The format is picked from the file extension by FormatFromPath. Decoding
// rejects unknown fields so typos in config files surface as INVALID_REQUEST.
package serializer
