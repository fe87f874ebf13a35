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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonUnsupportedType = "unsupported_type"
	reasonMissingField    = "missing_field"
)

var (
	// Interpretation outcome metrics
	recipeInterpretedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipegen_recipes_interpreted_total",
			Help: "Total number of recipe records normalized, by kind",
		},
		[]string{"kind"},
	)
	recipeUnrecognizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipegen_recipes_unrecognized_total",
			Help: "Total number of recipe records dropped as unrecognized, by reason",
		},
		[]string{"reason"},
	)

	// Ingredient specs that name a tag or alternatives instead of an item
	ingredientSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipegen_ingredients_skipped_total",
			Help: "Total number of ingredient specs skipped because they do not name a concrete item",
		},
	)
)
