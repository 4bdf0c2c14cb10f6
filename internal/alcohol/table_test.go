package alcohol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 11, table.Len())
	assert.Equal(t, 40.0, table.Lookup("Vodka"))
	assert.Equal(t, 20.0, table.Lookup("Liqueur"))
	assert.Equal(t, 12.0, table.Lookup("Wine"))
	assert.Equal(t, 5.0, table.Lookup("Beer"))
}

func TestLookupIsExactMatchByDefault(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 40.0, table.Lookup("Tequila"))
	assert.Zero(t, table.Lookup("tequila"))
	assert.Zero(t, table.Lookup("Tequila "))
	assert.Zero(t, table.Lookup("Orange juice"))
	assert.Zero(t, table.Lookup(""))
}

func TestLookupCaseInsensitive(t *testing.T) {
	table, err := ParseTable([]byte(`
case_insensitive: true
ingredients:
  Tequila: 40
  tequila: 38
  Triple sec: 30
`))
	require.NoError(t, err)

	assert.Equal(t, 40.0, table.Lookup("Tequila"))
	assert.Equal(t, 38.0, table.Lookup("tequila"))
	assert.Equal(t, 30.0, table.Lookup("TRIPLE SEC"))
	assert.Zero(t, table.Lookup("Lime"))
}

func TestParseTableRejectsOutOfRange(t *testing.T) {
	_, err := ParseTable([]byte("ingredients:\n  Everclear: 195\n"))
	assert.Error(t, err)

	_, err = ParseTable([]byte("ingredients:\n  Water: -1\n"))
	assert.Error(t, err)
}

func TestParseTableRejectsInvalidYAML(t *testing.T) {
	_, err := ParseTable([]byte("ingredients: [unclosed"))
	assert.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  Absinthe: 70\n"), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 70.0, table.Lookup("Absinthe"))

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
