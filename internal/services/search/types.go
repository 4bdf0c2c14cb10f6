package search

import (
	"time"

	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
	"github.com/KirkDiggler/mixology/internal/models"
)

const (
	// DefaultDebounce is how long a suggestion request waits for a newer keystroke
	DefaultDebounce = 300 * time.Millisecond

	// DefaultSessionTTL is how long an idle suggestion session is kept
	DefaultSessionTTL = 30 * time.Minute

	// MinSuggestLength is the shortest query that fetches suggestions
	MinSuggestLength = 2
)

// Config holds configuration for the search service
type Config struct {
	// Client is the recipe source
	Client cocktaildb.Client

	// Debounce overrides DefaultDebounce
	Debounce time.Duration

	// SessionTTL overrides DefaultSessionTTL
	SessionTTL time.Duration
}

// SearchInput contains parameters for searching recipes
type SearchInput struct {
	Query string
}

// SearchOutput contains the matching recipes
type SearchOutput struct {
	Cocktails []*models.Cocktail
}

// FindCocktailInput contains parameters for resolving one recipe
type FindCocktailInput struct {
	Name string
}

// FindCocktailOutput contains the resolved recipe
type FindCocktailOutput struct {
	Cocktail *models.Cocktail
}

// SuggestInput contains parameters for a suggestion request
type SuggestInput struct {
	// SessionID scopes debouncing and stale suppression, e.g. one per user
	SessionID string

	// Query is the text typed so far
	Query string
}

// SuggestOutput contains the suggestions applied for this request
type SuggestOutput struct {
	Suggestions Suggestions
}

// Suggestions is the visible suggestion set of a session
type Suggestions struct {
	// Seq is the sequence number of the request that produced the set
	Seq uint64

	// Query is the query the set answers
	Query string

	// Names are the suggested recipe names
	Names []string
}
