package state

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mixology/internal/repositories/state Repository

import (
	"context"
)

// Repository persists the application state as a flat key-value snapshot
type Repository interface {
	// SavePatrons replaces the stored patron list
	SavePatrons(ctx context.Context, input *SavePatronsInput) error

	// LoadPatrons returns the stored patron list, empty when nothing is stored
	LoadPatrons(ctx context.Context) (*LoadPatronsOutput, error)

	// SaveTheme stores the theme preference
	SaveTheme(ctx context.Context, input *SaveThemeInput) error

	// LoadTheme returns the stored theme preference, light when nothing is stored
	LoadTheme(ctx context.Context) (*LoadThemeOutput, error)

	// AcquireLock takes or extends the writer lock for input.Owner.
	// Returns ErrLocked when another owner holds it.
	AcquireLock(ctx context.Context, input *AcquireLockInput) error

	// ReleaseLock drops the writer lock if input.Owner still holds it
	ReleaseLock(ctx context.Context, input *ReleaseLockInput) error
}
