package models

import (
	"time"
)

// Drink is one logged serving. It is never edited once appended to a patron.
type Drink struct {
	// ID is the recipe identity the serving was made from
	ID string `json:"id"`

	// Name is the recipe display name
	Name string `json:"name"`

	// AlcoholContent is the absolute alcohol delivered by one serving
	AlcoholContent float64 `json:"alcoholContent"`

	// Timestamp is when the drink was logged
	Timestamp time.Time `json:"timestamp"`
}

// Patron is a tracked guest and their drink history
type Patron struct {
	// ID is the unique identifier for the patron
	ID string `json:"id"`

	// Name is unique case-insensitively among patrons
	Name string `json:"name"`

	// BodyMass is in kilograms and always positive
	BodyMass float64 `json:"bodyMass"`

	// Drinks is in consumption order
	Drinks []Drink `json:"drinks"`
}

// Clone returns a deep copy of the patron
func (p *Patron) Clone() *Patron {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Drinks = make([]Drink, len(p.Drinks))
	copy(clone.Drinks, p.Drinks)
	return &clone
}
