package cocktaildb

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/mixology/internal/models"
)

// searchResponse is the envelope of search.php; drinks is null when nothing matches
type searchResponse struct {
	Drinks []map[string]json.RawMessage `json:"drinks"`
}

func decodeSearchResponse(body []byte) ([]*models.Cocktail, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	cocktails := make([]*models.Cocktail, 0, len(resp.Drinks))
	for _, raw := range resp.Drinks {
		if raw == nil {
			continue
		}
		cocktail, err := toCocktail(raw)
		if err != nil {
			return nil, err
		}
		cocktails = append(cocktails, cocktail)
	}
	return cocktails, nil
}

func toCocktail(raw map[string]json.RawMessage) (*models.Cocktail, error) {
	field := func(key string) (string, error) {
		value, ok := raw[key]
		if !ok {
			return "", nil
		}
		var s *string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", fmt.Errorf("%w: field %s: %v", ErrMalformedResponse, key, err)
		}
		if s == nil {
			return "", nil
		}
		return *s, nil
	}

	var err error
	cocktail := &models.Cocktail{}
	for key, dst := range map[string]*string{
		"idDrink":         &cocktail.ID,
		"strDrink":        &cocktail.Name,
		"strDrinkThumb":   &cocktail.Thumbnail,
		"strInstructions": &cocktail.Instructions,
		"strAlcoholic":    &cocktail.Alcoholic,
	} {
		if *dst, err = field(key); err != nil {
			return nil, err
		}
	}

	if cocktail.ID == "" {
		return nil, fmt.Errorf("%w: drink without idDrink", ErrMalformedResponse)
	}

	lines := make([]models.IngredientLine, models.MaxIngredientLines)
	last := 0
	for n := 1; n <= models.MaxIngredientLines; n++ {
		ingredient, err := field("strIngredient" + strconv.Itoa(n))
		if err != nil {
			return nil, err
		}
		measure, err := field("strMeasure" + strconv.Itoa(n))
		if err != nil {
			return nil, err
		}
		lines[n-1] = models.IngredientLine{
			Ingredient: ingredient,
			Measure:    measure,
		}
		if lines[n-1].Present() {
			last = n
		}
	}
	cocktail.Ingredients = lines[:last]

	return cocktail, nil
}
