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

// Package emitter renders normalized recipes as Kotlin source.
//
// The generated file declares a single function returning every recipe in
// the order given:
//
//	package com.fracta7.crafter.data.repository
//
//	import com.fracta7.crafter.domain.model.Recipe
//
//	/**
//	 * Initiates all recipes
//	 * @return List of Recipes.
//	 */
//	fun recipesInit(): List<Recipe> {
//	    return listOf(
//	        Recipe(result = "ladder", resultQuantity = 3, requirements = mapOf("stick" to 8), recipeType = "crafting_shaped"),
//	    )
//	}
//
// The package, import and function name are configurable; the model class
// name is the last segment of the import. Emitting only produces a string,
// callers decide where it is written.
package emitter
