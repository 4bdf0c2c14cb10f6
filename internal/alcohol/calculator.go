package alcohol

import (
	"errors"
	"math"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/mixology/internal/models"
)

// MaxAlcoholLines is how many leading ingredient positions count toward alcohol content
const MaxAlcoholLines = 5

var leadingNumber = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// Calculator derives a drink's absolute alcohol content from its recipe
type Calculator struct {
	table *Table
}

// NewCalculator creates a calculator over table
func NewCalculator(table *Table) (*Calculator, error) {
	if table == nil {
		return nil, errors.New("alcohol table cannot be nil")
	}
	return &Calculator{table: table}, nil
}

// AlcoholContent sums (ABV / 100) x volume over the first MaxAlcoholLines positions.
// Absent ingredients are skipped and unparseable measures contribute nothing.
func (c *Calculator) AlcoholContent(cocktail *models.Cocktail) float64 {
	if cocktail == nil {
		return 0
	}

	lines := cocktail.Ingredients
	if len(lines) > MaxAlcoholLines {
		lines = lines[:MaxAlcoholLines]
	}

	total := 0.0
	for _, line := range lines {
		if !line.Present() {
			continue
		}
		pct := c.table.Lookup(line.Ingredient)
		if pct == 0 {
			continue
		}
		total += (pct / 100) * ParseMeasure(line.Measure)
	}
	return total
}

// ParseMeasure returns the leading numeric token of a measure such as "50ml" or "1 1/2 oz".
// Missing, unparseable, non-finite and negative measures yield 0.
func ParseMeasure(measure string) float64 {
	match := leadingNumber.FindStringSubmatch(measure)
	if match == nil {
		return 0
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
