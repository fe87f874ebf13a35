package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirements_ZeroValue(t *testing.T) {
	var reqs Requirements
	assert.Equal(t, 0, reqs.Len())
	assert.Equal(t, 0, reqs.Count("stick"))
	assert.Empty(t, reqs.Items())
}

func TestRequirements_AddAccumulatesInOrder(t *testing.T) {
	var reqs Requirements
	for _, item := range []string{"planks", "stick", "planks", "fuel", "planks"} {
		reqs.Add(item)
	}

	assert.Equal(t, 3, reqs.Len())
	assert.Equal(t, 3, reqs.Count("planks"))
	assert.Equal(t, []Requirement{
		{Item: "planks", Count: 3},
		{Item: "stick", Count: 1},
		{Item: "fuel", Count: 1},
	}, reqs.Items())
}

func TestRequirements_ItemsIsCopy(t *testing.T) {
	var reqs Requirements
	reqs.Add("stick")

	items := reqs.Items()
	items[0].Count = 99

	assert.Equal(t, 1, reqs.Count("stick"))
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want Record
	}{
		{"string keys", map[string]any{"type": "minecraft:smelting"}, Record{"type": "minecraft:smelting"}},
		{"record", Record{"type": "minecraft:smoking"}, Record{"type": "minecraft:smoking"}},
		{"any keys", map[any]any{"type": "minecraft:blasting", 1: "one"}, Record{"type": "minecraft:blasting", "1": "one"}},
		{"sequence", []any{map[string]any{"type": "minecraft:smelting"}}, Record{}},
		{"scalar", "minecraft:stick", Record{}},
		{"number", float64(42), Record{}},
		{"null", nil, Record{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRecord(tt.doc))
		})
	}
}
