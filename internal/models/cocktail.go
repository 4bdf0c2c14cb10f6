package models

import "strings"

// MaxIngredientLines is the number of ingredient/measure positions a recipe source provides
const MaxIngredientLines = 15

// IngredientLine is one ingredient/measure pair of a recipe
type IngredientLine struct {
	// Ingredient is the ingredient name; empty means the line is absent
	Ingredient string `json:"ingredient,omitempty"`

	// Measure is the free-text measure, e.g. "50ml" or "1 1/2 oz"
	Measure string `json:"measure,omitempty"`
}

// Present reports whether the line names an ingredient
func (l IngredientLine) Present() bool {
	return strings.TrimSpace(l.Ingredient) != ""
}

// Cocktail is a recipe returned by the recipe source
type Cocktail struct {
	// ID is the recipe identity from the source
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Thumbnail is the image reference
	Thumbnail string `json:"thumbnail,omitempty"`

	// Instructions is the preparation text
	Instructions string `json:"instructions,omitempty"`

	// Alcoholic is the source's alcoholic/non-alcoholic label
	Alcoholic string `json:"alcoholic,omitempty"`

	// Ingredients keeps source positions; position N of the source is index N-1
	Ingredients []IngredientLine `json:"ingredients"`
}

// IngredientList renders the present lines as "measure ingredient" for display
func (c *Cocktail) IngredientList() []string {
	list := make([]string, 0, len(c.Ingredients))
	for _, line := range c.Ingredients {
		if !line.Present() {
			continue
		}
		list = append(list, strings.TrimSpace(strings.TrimSpace(line.Measure)+" "+line.Ingredient))
	}
	return list
}
