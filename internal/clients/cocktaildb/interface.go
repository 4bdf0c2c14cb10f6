package cocktaildb

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/mixology/internal/clients/cocktaildb Client

import (
	"context"

	"github.com/KirkDiggler/mixology/internal/models"
)

// Client queries the recipe source
type Client interface {
	// SearchByName returns the recipes whose name matches name; no match is an empty slice
	SearchByName(ctx context.Context, name string) ([]*models.Cocktail, error)
}
