package bar

import (
	"time"

	"github.com/KirkDiggler/mixology/internal/alcohol"
	"github.com/KirkDiggler/mixology/internal/common/clock"
	"github.com/KirkDiggler/mixology/internal/common/uuid"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/repositories/state"
)

// DefaultWarningDelay is how long after a drink is acknowledged the limit warning appears
const DefaultWarningDelay = 500 * time.Millisecond

// Config holds configuration for the bar service
type Config struct {
	// StateRepo stores the patron snapshot and theme
	StateRepo state.Repository

	// Clock stamps drinks and drives saturation
	Clock clock.Clock

	// UUIDGenerator creates patron and action ids
	UUIDGenerator uuid.UUID

	// Calculator derives a serving's alcohol content
	Calculator *alcohol.Calculator

	// WarningDelay overrides DefaultWarningDelay
	WarningDelay time.Duration
}

// PatronStatus is a patron together with their saturation at read time
type PatronStatus struct {
	Patron     *models.Patron `json:"patron"`
	Saturation float64        `json:"saturation"`
	OverLimit  bool           `json:"overLimit"`
}

// AddPatronInput contains parameters for adding a patron
type AddPatronInput struct {
	Name     string
	BodyMass float64
}

// AddPatronOutput contains the added patron
type AddPatronOutput struct {
	Patron *models.Patron
}

// EditPatronInput contains parameters for editing a patron
type EditPatronInput struct {
	PatronID string
	Name     string
	BodyMass float64
}

// EditPatronOutput contains the edited patron
type EditPatronOutput struct {
	Patron *models.Patron
}

// GetPatronInput contains parameters for reading a patron
type GetPatronInput struct {
	PatronID string
}

// GetPatronOutput contains the patron and their saturation
type GetPatronOutput struct {
	Status *PatronStatus
}

// ListPatronsOutput contains every patron in insertion order
type ListPatronsOutput struct {
	Patrons []*PatronStatus
}

// RequestRemovePatronInput contains parameters for removing a patron
type RequestRemovePatronInput struct {
	PatronID string
}

// RequestRemovePatronOutput contains the confirmation to resolve
type RequestRemovePatronOutput struct {
	Action *models.PendingAction
}

// AddDrinkInput contains parameters for logging servings
type AddDrinkInput struct {
	PatronID string
	Cocktail *models.Cocktail

	// Quantity below 1 is treated as 1
	Quantity int
}

// AddDrinkOutput contains the updated patron and the confirmation to resolve
type AddDrinkOutput struct {
	Status *PatronStatus
	Drink  models.Drink
	Action *models.PendingAction
}

// ResolveActionInput contains parameters for resolving a pending action
type ResolveActionInput struct {
	ActionID string

	// Accept is false when the user cancelled
	Accept bool
}

// ResolveActionOutput contains the outcome of a resolution
type ResolveActionOutput struct {
	// Resolved is the action that was resolved
	Resolved *models.PendingAction

	// FollowUp is set when accepting raised another action, shown after its Delay
	FollowUp *models.PendingAction
}

// GetStatisticsOutput contains the summary
type GetStatisticsOutput struct {
	Statistics *models.Statistics
}

// GetThemeOutput contains the display theme
type GetThemeOutput struct {
	Theme models.Theme
}

// ToggleThemeOutput contains the new display theme
type ToggleThemeOutput struct {
	Theme models.Theme
}
