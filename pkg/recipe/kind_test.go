package recipe

import (
	"sort"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    Kind
		wantErr bool
	}{
		{"minecraft:crafting_shaped", KindCraftingShaped, false},
		{"crafting_shapeless", KindCraftingShapeless, false},
		{"minecraft:blasting", KindBlasting, false},
		{"minecraft:smithing_trim", Kind("smithing_trim"), true},
		{"minecraft:unknown_kind", Kind("unknown_kind"), true},
		{"", Kind(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseKind(tt.raw, "minecraft:")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSupportedKinds(t *testing.T) {
	kinds := SupportedKinds()
	if len(kinds) != 8 {
		t.Fatalf("expected 8 kinds, got %d", len(kinds))
	}
	if !sort.StringsAreSorted(kinds) {
		t.Errorf("SupportedKinds() not sorted: %v", kinds)
	}
	for _, k := range kinds {
		if !Kind(k).IsValid() {
			t.Errorf("%q should be valid", k)
		}
	}
}

func TestKind_IsFurnace(t *testing.T) {
	furnace := map[Kind]bool{KindSmelting: true, KindBlasting: true, KindSmoking: true}
	for _, k := range SupportedKinds() {
		if got := Kind(k).IsFurnace(); got != furnace[Kind(k)] {
			t.Errorf("%s.IsFurnace() = %v", k, got)
		}
	}
}

func TestStripNamespace(t *testing.T) {
	tests := []struct {
		id, namespace, want string
	}{
		{"minecraft:stick", "minecraft:", "stick"},
		{"stick", "minecraft:", "stick"},
		{"minecraft:stick", "", "stick"},
		{"mymod:gear", "minecraft:", "mymod:gear"},
		{"minecraft:minecraft:stick", "minecraft:", "minecraft:stick"},
		{"#minecraft:planks", "minecraft:", "#minecraft:planks"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := StripNamespace(tt.id, tt.namespace); got != tt.want {
				t.Errorf("StripNamespace(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestStripNamespace_Idempotent(t *testing.T) {
	for _, id := range []string{"minecraft:stick", "stick", "mymod:gear", ""} {
		once := StripNamespace(id, "minecraft:")
		if twice := StripNamespace(once, "minecraft:"); twice != once {
			t.Errorf("stripping %q twice = %q, once = %q", id, twice, once)
		}
	}
}
