package rest

import (
	"encoding/json"

	"github.com/KirkDiggler/mixology/internal/ledger"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PatronRequest is the body for creating or editing a patron
type PatronRequest struct {
	Name     string  `json:"name"`
	BodyMass float64 `json:"bodyMass"`
}

// DrinkRequest is the body for logging drinks. Either Cocktail or CocktailName is set;
// Quantity may be a number or a string and anything unparseable counts as 1.
type DrinkRequest struct {
	Cocktail     *models.Cocktail `json:"cocktail"`
	CocktailName string           `json:"cocktailName"`
	Quantity     json.RawMessage  `json:"quantity"`
}

// ResolveRequest is the body for resolving a pending action
type ResolveRequest struct {
	Accept bool `json:"accept"`
}

// CocktailsResponse lists search results
type CocktailsResponse struct {
	Cocktails []*models.Cocktail `json:"cocktails"`
	Error     string             `json:"error,omitempty"`
}

// SuggestionsResponse is the suggestion set for a session
type SuggestionsResponse struct {
	Seq        uint64   `json:"seq"`
	Query      string   `json:"query"`
	Names      []string `json:"names"`
	Superseded bool     `json:"superseded,omitempty"`
}

// ActionResponse is a pending action as the frontend renders it
type ActionResponse struct {
	*models.PendingAction
	DelayMS int64 `json:"delayMs,omitempty"`
}

// PatronResponse wraps a single patron
type PatronResponse struct {
	Patron *models.Patron `json:"patron"`
}

// PatronsResponse lists patrons with their saturation
type PatronsResponse struct {
	Patrons []*bar.PatronStatus `json:"patrons"`
}

// RemovalResponse carries the confirmation for a removal request
type RemovalResponse struct {
	Action *ActionResponse `json:"action"`
}

// DrinkResponse carries the updated patron and the drink-added confirmation
type DrinkResponse struct {
	Status *bar.PatronStatus `json:"status"`
	Drink  models.Drink      `json:"drink"`
	Action *ActionResponse   `json:"action"`
}

// ResolveResponse carries the resolved action and any follow-up
type ResolveResponse struct {
	Resolved *ActionResponse `json:"resolved"`
	FollowUp *ActionResponse `json:"followUp,omitempty"`
}

// ThemeResponse carries the display theme
type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
}

func newActionResponse(action *models.PendingAction) *ActionResponse {
	if action == nil {
		return nil
	}
	return &ActionResponse{
		PendingAction: action,
		DelayMS:       action.Delay.Milliseconds(),
	}
}

// parseQuantity accepts 2, "2" or nothing
func parseQuantity(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ledger.ParseQuantity(s)
	}
	return ledger.ParseQuantity(string(raw))
}
