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
	"fmt"
	"strings"

	"github.com/fracta7/recipegen/pkg/defaults"
)

// Kind represents the namespace-stripped recipe type tag.
type Kind string

// Kind constants for supported recipe types.
const (
	KindCraftingShaped    Kind = "crafting_shaped"
	KindCraftingShapeless Kind = "crafting_shapeless"
	KindSmelting          Kind = "smelting"
	KindBlasting          Kind = "blasting"
	KindSmoking           Kind = "smoking"
	KindCampfireCooking   Kind = "campfire_cooking"
	KindSmithingTransform Kind = "smithing_transform"
	KindStonecutting      Kind = "stonecutting"
)

// String returns the kind as it appears in generated output.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCraftingShaped, KindCraftingShapeless,
		KindSmelting, KindBlasting, KindSmoking,
		KindCampfireCooking, KindSmithingTransform, KindStonecutting:
		return true
	default:
		return false
	}
}

// IsFurnace reports whether k consumes fuel.
func (k Kind) IsFurnace() bool {
	switch k {
	case KindSmelting, KindBlasting, KindSmoking:
		return true
	default:
		return false
	}
}

// ParseKind strips the namespace from a raw type value and validates it.
func ParseKind(raw, namespace string) (Kind, error) {
	k := Kind(StripNamespace(raw, namespace))
	if !k.IsValid() {
		return k, fmt.Errorf("unsupported recipe type: %q", raw)
	}
	return k, nil
}

// SupportedKinds returns all supported kinds sorted alphabetically.
func SupportedKinds() []string {
	return []string{
		string(KindBlasting),
		string(KindCampfireCooking),
		string(KindCraftingShaped),
		string(KindCraftingShapeless),
		string(KindSmelting),
		string(KindSmithingTransform),
		string(KindSmoking),
		string(KindStonecutting),
	}
}

// StripNamespace removes the namespace prefix from id when present.
// An empty namespace falls back to defaults.Namespace.
func StripNamespace(id, namespace string) string {
	if namespace == "" {
		namespace = defaults.Namespace
	}
	return strings.TrimPrefix(id, namespace)
}
