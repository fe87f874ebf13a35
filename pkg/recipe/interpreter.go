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
	"math"

	"k8s.io/utils/ptr"

	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/errors"
)

// Interpreter reduces recipe records to normalized recipes.
// An Interpreter holds no mutable state and is safe for concurrent use.
type Interpreter struct {
	namespace string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithNamespace sets the prefix stripped from type and item identifiers.
func WithNamespace(namespace string) Option {
	return func(i *Interpreter) {
		if namespace != "" {
			i.namespace = namespace
		}
	}
}

// NewInterpreter returns an Interpreter using defaults.Namespace unless
// overridden.
func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{namespace: defaults.Namespace}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Namespace returns the prefix stripped from identifiers.
func (i *Interpreter) Namespace() string {
	return i.namespace
}

// Interpret is a convenience wrapper around NewInterpreter(opts...).Interpret.
func Interpret(rec Record, opts ...Option) (*Recipe, error) {
	return NewInterpreter(opts...).Interpret(rec)
}

// Interpret reduces rec to a Recipe.
//
// The record is rejected with ErrCodeUnrecognized when its type is missing or
// unsupported, when result.id is missing, or when a field required by its
// kind is absent. Ingredients that do not name a concrete item (tags,
// alternative lists) are skipped without rejecting the record.
func (i *Interpreter) Interpret(rec Record) (*Recipe, error) {
	rawType, ok := rec["type"].(string)
	if !ok {
		recipeUnrecognizedTotal.WithLabelValues(reasonMissingField).Inc()
		return nil, errors.New(errors.ErrCodeUnrecognized, "record has no type")
	}

	kind, err := ParseKind(rawType, i.namespace)
	if err != nil {
		recipeUnrecognizedTotal.WithLabelValues(reasonUnsupportedType).Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeUnrecognized,
			"unsupported recipe type", err, map[string]any{"type": rawType})
	}

	result, ok := asMap(rec["result"])
	if !ok {
		recipeUnrecognizedTotal.WithLabelValues(reasonMissingField).Inc()
		return nil, missingField(kind, "result")
	}
	resultID, ok := result["id"].(string)
	if !ok {
		recipeUnrecognizedTotal.WithLabelValues(reasonMissingField).Inc()
		return nil, missingField(kind, "result.id")
	}

	out := &Recipe{
		Result:   i.strip(resultID),
		Quantity: ptr.Deref(positiveInt(result["count"]), defaults.ResultCount),
		Kind:     kind,
	}

	if err := i.collect(kind, rec, &out.Requirements); err != nil {
		recipeUnrecognizedTotal.WithLabelValues(reasonMissingField).Inc()
		return nil, err
	}

	recipeInterpretedTotal.WithLabelValues(string(kind)).Inc()
	return out, nil
}

func (i *Interpreter) collect(kind Kind, rec Record, reqs *Requirements) error {
	switch kind {
	case KindCraftingShaped:
		key, ok := asMap(rec["key"])
		if !ok {
			return missingField(kind, "key")
		}
		pattern, ok := rec["pattern"].([]any)
		if !ok {
			return missingField(kind, "pattern")
		}
		for _, row := range pattern {
			line, _ := row.(string)
			for _, symbol := range line {
				i.add(reqs, key[string(symbol)])
			}
		}

	case KindCraftingShapeless:
		ingredients, ok := rec["ingredients"].([]any)
		if !ok {
			return missingField(kind, "ingredients")
		}
		for _, ingredient := range ingredients {
			i.add(reqs, ingredient)
		}

	case KindSmelting, KindBlasting, KindSmoking:
		i.add(reqs, rec["ingredient"])
		reqs.Add(defaults.FuelItem)

	case KindCampfireCooking, KindStonecutting:
		i.add(reqs, rec["ingredient"])

	case KindSmithingTransform:
		// all three slots must be present before any is counted
		slots := make([]map[string]any, 0, 3)
		for _, field := range []string{"addition", "base", "template"} {
			slot, ok := asMap(rec[field])
			if !ok {
				return missingField(kind, field)
			}
			slots = append(slots, slot)
		}
		for _, slot := range slots {
			i.add(reqs, slot)
		}
	}
	return nil
}

// add counts ingredient when it names a concrete item.
func (i *Interpreter) add(reqs *Requirements, ingredient any) {
	if id, ok := itemID(ingredient); ok {
		reqs.Add(i.strip(id))
		return
	}
	if ingredient != nil {
		ingredientSkippedTotal.Inc()
	}
}

func (i *Interpreter) strip(id string) string {
	return StripNamespace(id, i.namespace)
}

// itemID returns the direct item reference of an ingredient spec.
func itemID(ingredient any) (string, bool) {
	spec, ok := asMap(ingredient)
	if !ok {
		return "", false
	}
	id, ok := spec["item"].(string)
	return id, ok
}

// positiveInt returns v as an int when it is a whole number greater than zero.
// JSON decodes numbers as float64 while YAML yields int or uint64.
func positiveInt(v any) *int {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int64:
		n = t
	case uint64:
		if t > math.MaxInt32 {
			return nil
		}
		n = int64(t)
	case float64:
		if t < 1 || t != math.Trunc(t) || t > math.MaxInt32 {
			return nil
		}
		n = int64(t)
	default:
		return nil
	}
	if n < 1 || n > math.MaxInt32 {
		return nil
	}
	return ptr.To(int(n))
}

func missingField(kind Kind, field string) error {
	return errors.NewWithContext(errors.ErrCodeUnrecognized,
		"recipe is missing required field "+field, map[string]any{
			"kind":  string(kind),
			"field": field,
		})
}
