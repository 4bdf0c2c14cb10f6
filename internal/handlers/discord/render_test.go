package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionCustomIDRoundTrip(t *testing.T) {
	id, accept, ok := parseActionCustomID(actionCustomID(true, "abc-123"))
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
	assert.True(t, accept)

	id, accept, ok = parseActionCustomID(actionCustomID(false, "abc-123"))
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
	assert.False(t, accept)
}

func TestParseActionCustomIDRejectsForeignIDs(t *testing.T) {
	for _, customID := range []string{"", "roll_dice", "action:confirm:", "action:maybe:abc", "other:confirm:abc"} {
		_, _, ok := parseActionCustomID(customID)
		assert.False(t, ok, customID)
	}
}

func TestRenderActionConfirm(t *testing.T) {
	action := &models.PendingAction{
		ID:         "action-1",
		Kind:       models.ActionKindConfirm,
		OnAccept:   models.ActionRemovePatron,
		Title:      "Confirm Removal",
		Message:    "Are you sure you want to remove this patron?",
		PatronName: "Alice",
	}

	embed, buttons := renderAction(action, models.ThemeDark)
	assert.Equal(t, "Confirm Removal", embed.Title)
	assert.Equal(t, colorDark, embed.Color)
	require.Len(t, buttons, 2)

	remove := buttons[0].(discordgo.Button)
	assert.Equal(t, discordgo.DangerButton, remove.Style)
	assert.Equal(t, "action:confirm:action-1", remove.CustomID)

	cancel := buttons[1].(discordgo.Button)
	assert.Equal(t, "action:cancel:action-1", cancel.CustomID)
}

func TestRenderActionWarning(t *testing.T) {
	action := &models.PendingAction{
		ID:       "action-2",
		Kind:     models.ActionKindWarn,
		OnAccept: models.ActionDismissWarning,
		Title:    "Alcohol Limit Warning",
		Delay:    500 * time.Millisecond,
	}

	embed, buttons := renderAction(action, models.ThemeLight)
	assert.Equal(t, colorWarning, embed.Color)
	assert.Contains(t, embed.Title, "Alcohol Limit Warning")
	require.Len(t, buttons, 1)
	assert.Equal(t, "action:confirm:action-2", buttons[0].(discordgo.Button).CustomID)
}

func TestRenderPatrons(t *testing.T) {
	embed := renderPatrons(nil, models.ThemeLight)
	assert.Empty(t, embed.Fields)
	assert.NotEmpty(t, embed.Description)

	embed = renderPatrons([]*bar.PatronStatus{
		{
			Patron:     &models.Patron{ID: "p1", Name: "Bob", BodyMass: 68, Drinks: []models.Drink{{Name: "Vodka Bomb"}}},
			Saturation: 0.1,
			OverLimit:  true,
		},
	}, models.ThemeLight)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Bob", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "Drinks: 1")
	assert.Contains(t, embed.Fields[0].Value, "BAC: 0.100%")
	assert.Contains(t, embed.Fields[0].Value, "over limit")
}

func TestRenderCocktailsCapsFields(t *testing.T) {
	var cocktails []*models.Cocktail
	for i := 0; i < maxCocktailFields+3; i++ {
		cocktails = append(cocktails, &models.Cocktail{
			Name:        "Margarita",
			Ingredients: []models.IngredientLine{{Ingredient: "Tequila", Measure: "1 1/2 oz "}},
		})
	}

	embed := renderCocktails("marg", cocktails, models.ThemeLight)
	assert.Len(t, embed.Fields, maxCocktailFields)
	assert.Equal(t, "1 1/2 oz Tequila", embed.Fields[0].Value)

	embed = renderCocktails("zzz", nil, models.ThemeLight)
	assert.Equal(t, "No cocktails found.", embed.Description)
}

func TestRenderStatistics(t *testing.T) {
	embed := renderStatistics(&models.Statistics{
		TotalPatrons: 2,
		TotalDrinks:  3,
		Breakdown: []models.DrinkCount{
			{Name: "Mojito", Count: 2},
			{Name: "Negroni", Count: 1},
		},
	}, models.ThemeLight)

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "3", embed.Fields[1].Value)
	assert.Equal(t, "Mojito: 2\nNegroni: 1", embed.Fields[2].Value)
}

func TestCocktailChoices(t *testing.T) {
	names := []string{"Mojito", "Mojito", ""}
	for i := 0; i < maxChoices+5; i++ {
		names = append(names, string(rune('A'+i%26))+"x"+string(rune('a'+i/26)))
	}

	choices := cocktailChoices(names)
	assert.Len(t, choices, maxChoices)
	assert.Equal(t, "Mojito", choices[0].Name)
	assert.Equal(t, "Mojito", choices[0].Value)
	assert.NotEqual(t, "Mojito", choices[1].Name)
}

func TestPatronChoices(t *testing.T) {
	statuses := []*bar.PatronStatus{
		{Patron: &models.Patron{ID: "p1", Name: "Alice"}},
		{Patron: &models.Patron{ID: "p2", Name: "Bob"}},
		{Patron: &models.Patron{ID: "p3", Name: "Alicia"}},
	}

	choices := patronChoices(statuses, "ALI")
	require.Len(t, choices, 2)
	assert.Equal(t, "p1", choices[0].Value)
	assert.Equal(t, "p3", choices[1].Value)

	assert.Len(t, patronChoices(statuses, ""), 3)
}
