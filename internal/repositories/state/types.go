package state

import (
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
)

// SavePatronsInput contains the patron list to store
type SavePatronsInput struct {
	Patrons []*models.Patron
}

// LoadPatronsOutput contains the stored patron list
type LoadPatronsOutput struct {
	Patrons []*models.Patron
}

// SaveThemeInput contains the theme to store
type SaveThemeInput struct {
	Theme models.Theme
}

// LoadThemeOutput contains the stored theme
type LoadThemeOutput struct {
	Theme models.Theme
}

// AcquireLockInput identifies the process taking the writer lock
type AcquireLockInput struct {
	Owner string

	// TTL is how long the lock survives without being extended
	TTL time.Duration
}

// ReleaseLockInput identifies the process giving up the writer lock
type ReleaseLockInput struct {
	Owner string
}
