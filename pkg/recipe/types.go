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

import "fmt"

// Record is a parsed recipe document: field names mapped to strings,
// numbers, nested mappings or sequences.
type Record map[string]any

// NewRecord returns doc as a Record when it is a mapping. Any other decoded
// document (a sequence, a scalar, null) yields an empty Record, which the
// interpreter rejects as having no type.
func NewRecord(doc any) Record {
	if m, ok := asMap(doc); ok {
		return Record(m)
	}
	return Record{}
}

// asMap returns v as a string-keyed mapping. Decoders differ in what they
// produce for nested mappings: JSON yields map[string]any, YAML yields the
// target's map type or map[any]any when a key is not a string.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// Requirement is one required input item and the number consumed.
type Requirement struct {
	Item  string `json:"item" yaml:"item"`
	Count int    `json:"count" yaml:"count"`
}

// Requirements counts required items, iterating in first-insertion order.
// The zero value is ready to use.
type Requirements struct {
	items []Requirement
	index map[string]int
}

// Add increments the count for item by one.
func (r *Requirements) Add(item string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[item]; ok {
		r.items[i].Count++
		return
	}
	r.index[item] = len(r.items)
	r.items = append(r.items, Requirement{Item: item, Count: 1})
}

// Count returns the accumulated count for item, or zero.
func (r Requirements) Count(item string) int {
	if i, ok := r.index[item]; ok {
		return r.items[i].Count
	}
	return 0
}

// Len returns the number of distinct items.
func (r Requirements) Len() int {
	return len(r.items)
}

// Items returns a copy of the requirements in insertion order.
func (r Requirements) Items() []Requirement {
	out := make([]Requirement, len(r.items))
	copy(out, r.items)
	return out
}

// Recipe is the normalized form of one recipe record.
type Recipe struct {
	// Result is the produced item without namespace.
	Result string

	// Quantity is the number of items produced, at least 1.
	Quantity int

	// Requirements lists consumed items.
	Requirements Requirements

	// Kind is the recipe type that produced this recipe.
	Kind Kind
}
