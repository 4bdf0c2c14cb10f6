package models

import "time"

// ActionKind is how a pending action is presented
type ActionKind string

const (
	// ActionKindConfirm asks the user to confirm or cancel
	ActionKindConfirm ActionKind = "confirm"

	// ActionKindWarn is a warning the user acknowledges
	ActionKindWarn ActionKind = "warn"
)

// ActionID names what happens when a pending action is accepted
type ActionID string

const (
	// ActionRemovePatron removes PatronID
	ActionRemovePatron ActionID = "remove_patron"

	// ActionAcknowledgeDrink closes the drink-added confirmation and may raise a limit warning
	ActionAcknowledgeDrink ActionID = "acknowledge_drink"

	// ActionDismissWarning closes a limit warning
	ActionDismissWarning ActionID = "dismiss_warning"
)

// PendingAction is a confirmation round-trip waiting on the user
type PendingAction struct {
	// ID identifies this instance of the action
	ID string `json:"id"`

	Kind     ActionKind `json:"kind"`
	OnAccept ActionID   `json:"onAccept"`

	Title   string `json:"title"`
	Message string `json:"message"`

	PatronID   string `json:"patronId,omitempty"`
	PatronName string `json:"patronName,omitempty"`

	// Saturation is the value computed when the action was raised
	Saturation float64 `json:"saturation,omitempty"`

	// Delay is how long the surface waits before showing the action
	Delay time.Duration `json:"-"`
}
