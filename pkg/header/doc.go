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

// Package header provides the common header carried by every document
// recipe-helper writes in json or yaml form.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              // CostReport, PriceList, PriceQuote, CombineResult, UnitList
//	    APIVersion string            // "recipe-helper/v1"
//	    Metadata   map[string]string // timestamp, version, runID
//	}
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindCostReport, version)
//
// or with options:
//
//	h := header.New(
//	    header.WithKind(header.KindPriceList),
//	    header.WithMetadata("source", "prices.csv"),
//	)
//
// # Serialization
//
//	kind: CostReport
//	apiVersion: recipe-helper/v1
//	metadata:
//	  runID: 3f0c2a9e-5d7b-4c1e-9a47-0b6f5e2d8c11
//	  timestamp: "2026-01-12T10:30:00Z"
//	  version: v0.3.0
//
// The run ID is a random UUID; it lets log lines and written reports of a
// single invocation be matched up.
package header
