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

// Package recipe interprets crafting recipe records.
//
// A record is a parsed document (see Record) with a namespaced "type", a
// "result" object carrying "id" and an optional "count", and fields that
// depend on the type. Interpret dispatches on the type and normalizes the
// record into a Recipe: the produced item, its quantity, the consumed items
// and the recipe kind.
//
// # Supported Kinds
//
//	crafting_shaped      pattern + key, one requirement per mapped cell
//	crafting_shapeless   ingredients, one requirement per entry
//	smelting             ingredient plus a synthetic "fuel" requirement
//	blasting             same as smelting
//	smoking              same as smelting
//	campfire_cooking     ingredient
//	smithing_transform   addition, base and template
//	stonecutting         ingredient
//
// Every identifier has the namespace prefix (default "minecraft:") removed.
// Ingredients are counted only when they reference an item directly:
//
//	{"item": "minecraft:stick"}   counted as "stick"
//	{"tag": "minecraft:planks"}   skipped
//
// # Failure Semantics
//
// A record with an unknown type, no result id, or without a field its kind
// requires is rejected as a whole with errors.ErrCodeUnrecognized. A single
// unresolvable ingredient never rejects the record.
//
// # Usage
//
//	r, err := recipe.Interpret(doc)
//	if errors.IsCode(err, errors.ErrCodeUnrecognized) {
//	    // skip the record
//	}
package recipe
