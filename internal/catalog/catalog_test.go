package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

func TestLoadShippedCatalog(t *testing.T) {
	reg, err := Load(filepath.Join("..", "..", "configs", "items.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, reg.Len())
	stone, ok := reg.Lookup("stone")
	require.True(t, ok)
	assert.Equal(t, 2, stone.Width)
	assert.Equal(t, 2, stone.Height)
	assert.Equal(t, 3, stone.MaxStack)
	assert.Equal(t, inventory.RegistryID(2), stone.NumericID)
}

func TestParseAssignsNumericIDs(t *testing.T) {
	reg, err := Parse([]byte(`
items:
  - {id: rope, width: 1, height: 2, max_stack: 4}
  - {id: torch, width: 1, height: 1, max_stack: 10, name: Torch}
`))
	require.NoError(t, err)

	defs := reg.Export()
	require.Len(t, defs, 2)
	assert.Equal(t, inventory.ItemID("rope"), defs[0].ID)
	assert.Equal(t, inventory.RegistryID(1), defs[0].NumericID)
	assert.Equal(t, "Torch", defs[1].Name)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "items: [\n"},
		{name: "no items", data: "items: []\n"},
		{name: "missing size", data: "items:\n  - {id: a, max_stack: 1}\n"},
		{name: "zero stack", data: "items:\n  - {id: a, width: 1, height: 1, max_stack: 0}\n"},
		{name: "unknown field", data: "items:\n  - {id: a, width: 1, height: 1, max_stack: 1, weight: 3}\n"},
		{name: "bad id", data: "items:\n  - {id: 'Bad Id', width: 1, height: 1, max_stack: 1}\n"},
		{name: "duplicate id", data: "items:\n  - {id: a, width: 1, height: 1, max_stack: 1}\n  - {id: a, width: 1, height: 1, max_stack: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}
