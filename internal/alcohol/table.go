package alcohol

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_table.yaml
var defaultTableYAML []byte

// TableConfig is the YAML shape of an alcohol table file
type TableConfig struct {
	// CaseInsensitive folds case on lookups that miss an exact key
	CaseInsensitive bool `yaml:"case_insensitive"`

	// Ingredients maps ingredient name to ABV percentage
	Ingredients map[string]float64 `yaml:"ingredients"`
}

// Table maps ingredient names to alcohol-by-volume percentages. It is immutable.
type Table struct {
	abv    map[string]float64
	folded map[string]float64
}

// NewTable builds a table from cfg, rejecting percentages outside [0, 100]
func NewTable(cfg *TableConfig) (*Table, error) {
	if cfg == nil {
		return nil, fmt.Errorf("alcohol table: config cannot be nil")
	}

	t := &Table{
		abv: make(map[string]float64, len(cfg.Ingredients)),
	}
	if cfg.CaseInsensitive {
		t.folded = make(map[string]float64, len(cfg.Ingredients))
	}

	for name, pct := range cfg.Ingredients {
		if math.IsNaN(pct) || pct < 0 || pct > 100 {
			return nil, fmt.Errorf("alcohol table: %q has percentage %v outside [0, 100]", name, pct)
		}
		t.abv[name] = pct
		if t.folded != nil {
			t.folded[strings.ToLower(name)] = pct
		}
	}

	return t, nil
}

// ParseTable parses a YAML alcohol table
func ParseTable(data []byte) (*Table, error) {
	var cfg TableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("alcohol table: parse yaml: %w", err)
	}
	return NewTable(&cfg)
}

// LoadTable reads the YAML alcohol table at path
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("alcohol table: read %q: %w", path, err)
	}
	return ParseTable(data)
}

// DefaultTable returns the built-in table of common spirits, liqueur, wine and beer
func DefaultTable() *Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the ABV percentage for name, or 0 when the name is unknown
func (t *Table) Lookup(name string) float64 {
	if pct, ok := t.abv[name]; ok {
		return pct
	}
	if t.folded != nil {
		return t.folded[strings.ToLower(name)]
	}
	return 0
}

// Len returns the number of ingredients in the table
func (t *Table) Len() int {
	return len(t.abv)
}
