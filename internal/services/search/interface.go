package search

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mixology/internal/services/search Service

import "context"

// Service defines cocktail search operations
type Service interface {
	// Search returns the recipes matching a query
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// FindCocktail resolves a single recipe by name
	FindCocktail(ctx context.Context, input *FindCocktailInput) (*FindCocktailOutput, error)

	// Suggest returns debounced name suggestions for a session's latest query
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)
}
