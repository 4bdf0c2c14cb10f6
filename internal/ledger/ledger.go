package ledger

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/mixology/internal/common/uuid"
	"github.com/KirkDiggler/mixology/internal/models"
)

// Config holds the ledger's dependencies
type Config struct {
	UUIDGenerator uuid.UUID
}

// Ledger is the in-memory patron set and their append-only drink histories.
// It is not safe for concurrent use; the owning controller serialises access.
type Ledger struct {
	uuid    uuid.UUID
	patrons []*models.Patron
}

// New creates an empty ledger
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Ledger{
		uuid:    cfg.UUIDGenerator,
		patrons: []*models.Patron{},
	}, nil
}

// AddPatron registers a new patron with an empty drink history
func (l *Ledger) AddPatron(name string, bodyMass float64) (*models.Patron, error) {
	name, err := validate(name, bodyMass)
	if err != nil {
		return nil, err
	}

	if l.nameTaken(name, "") {
		return nil, ErrDuplicateName
	}

	patron := &models.Patron{
		ID:       l.uuid.NewUUID(),
		Name:     name,
		BodyMass: bodyMass,
		Drinks:   []models.Drink{},
	}
	l.patrons = append(l.patrons, patron)

	return patron.Clone(), nil
}

// EditPatron changes a patron's name and body mass; the drink history is untouched
func (l *Ledger) EditPatron(id, name string, bodyMass float64) (*models.Patron, error) {
	patron := l.find(id)
	if patron == nil {
		return nil, ErrPatronNotFound
	}

	name, err := validate(name, bodyMass)
	if err != nil {
		return nil, err
	}

	if l.nameTaken(name, id) {
		return nil, ErrDuplicateName
	}

	patron.Name = name
	patron.BodyMass = bodyMass

	return patron.Clone(), nil
}

// RemovePatron deletes a patron and their drink history
func (l *Ledger) RemovePatron(id string) error {
	for i, patron := range l.patrons {
		if patron.ID == id {
			l.patrons = append(l.patrons[:i], l.patrons[i+1:]...)
			return nil
		}
	}
	return ErrPatronNotFound
}

// AppendDrink appends quantity servings of drink to the patron's history.
// Quantities below 1 are clamped to 1.
func (l *Ledger) AppendDrink(patronID string, drink models.Drink, quantity int) (*models.Patron, error) {
	patron := l.find(patronID)
	if patron == nil {
		return nil, ErrPatronNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	if drink.AlcoholContent < 0 || math.IsNaN(drink.AlcoholContent) {
		drink.AlcoholContent = 0
	}

	for i := 0; i < quantity; i++ {
		patron.Drinks = append(patron.Drinks, drink)
	}

	return patron.Clone(), nil
}

// Patron returns a copy of the patron with id
func (l *Ledger) Patron(id string) (*models.Patron, error) {
	patron := l.find(id)
	if patron == nil {
		return nil, ErrPatronNotFound
	}
	return patron.Clone(), nil
}

// Patrons returns copies of all patrons in insertion order
func (l *Ledger) Patrons() []*models.Patron {
	out := make([]*models.Patron, 0, len(l.patrons))
	for _, patron := range l.patrons {
		out = append(out, patron.Clone())
	}
	return out
}

// Snapshot returns the full patron list for persistence
func (l *Ledger) Snapshot() []*models.Patron {
	return l.Patrons()
}

// Restore replaces the patron list with a persisted snapshot. The snapshot is not validated.
func (l *Ledger) Restore(patrons []*models.Patron) {
	l.patrons = make([]*models.Patron, 0, len(patrons))
	for _, patron := range patrons {
		if patron == nil {
			continue
		}
		clone := patron.Clone()
		if clone.Drinks == nil {
			clone.Drinks = []models.Drink{}
		}
		l.patrons = append(l.patrons, clone)
	}
}

// ParseQuantity parses a serving count; anything unparseable or below 1 is 1
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (l *Ledger) find(id string) *models.Patron {
	for _, patron := range l.patrons {
		if patron.ID == id {
			return patron
		}
	}
	return nil
}

func (l *Ledger) nameTaken(name, exceptID string) bool {
	for _, patron := range l.patrons {
		if patron.ID != exceptID && strings.EqualFold(patron.Name, name) {
			return true
		}
	}
	return false
}

func validate(name string, bodyMass float64) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingFields
	}
	if bodyMass <= 0 || math.IsNaN(bodyMass) || math.IsInf(bodyMass, 0) {
		return "", ErrInvalidBodyMass
	}
	return name, nil
}
