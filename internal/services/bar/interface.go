package bar

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mixology/internal/services/bar Service

import "context"

// Service defines the operations on the bar's patrons and preferences
type Service interface {
	// Load replaces the in-memory state with the stored snapshot
	Load(ctx context.Context) error

	// Save stores the current patrons and theme
	Save(ctx context.Context) error

	// AddPatron registers a new patron
	AddPatron(ctx context.Context, input *AddPatronInput) (*AddPatronOutput, error)

	// EditPatron changes a patron's name and body mass
	EditPatron(ctx context.Context, input *EditPatronInput) (*EditPatronOutput, error)

	// GetPatron returns one patron with their current saturation
	GetPatron(ctx context.Context, input *GetPatronInput) (*GetPatronOutput, error)

	// ListPatrons returns every patron with their current saturation
	ListPatrons(ctx context.Context) (*ListPatronsOutput, error)

	// RequestRemovePatron raises a confirmation for removing a patron
	RequestRemovePatron(ctx context.Context, input *RequestRemovePatronInput) (*RequestRemovePatronOutput, error)

	// AddDrink logs servings of a cocktail for a patron
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// ResolveAction accepts or cancels a pending action
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// GetStatistics summarises every logged serving
	GetStatistics(ctx context.Context) (*GetStatisticsOutput, error)

	// GetTheme returns the display theme
	GetTheme(ctx context.Context) (*GetThemeOutput, error)

	// ToggleTheme flips the display theme
	ToggleTheme(ctx context.Context) (*ToggleThemeOutput, error)
}
