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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeUnknown      = "unknown_ingredient"
	outcomeIncompatible = "incompatible_units"
	outcomeInvalid      = "invalid_quantity"
)

var (
	priceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_helper_price_lookups_total",
			Help: "Total number of ingredient price lookups by outcome",
		},
		[]string{"outcome"},
	)

	priceEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipe_helper_price_entries",
			Help: "Number of ingredients in the most recently built price database",
		},
	)
)
