package bar

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/mixology/internal/alcohol"
	"github.com/KirkDiggler/mixology/internal/common/clock"
	"github.com/KirkDiggler/mixology/internal/common/uuid"
	"github.com/KirkDiggler/mixology/internal/ledger"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/repositories/state"
)

// service implements the Service interface. Every exported method holds mu for
// its whole duration, so callers from any goroutine observe a single actor.
type service struct {
	stateRepo    state.Repository
	clock        clock.Clock
	uuid         uuid.UUID
	calculator   *alcohol.Calculator
	warningDelay time.Duration

	mu      sync.Mutex
	ledger  *ledger.Ledger
	theme   models.Theme

	// pending holds at most one open action per patron, keyed by action id
	pending map[string]*models.PendingAction
}

// New creates a new bar service with an empty ledger and the light theme
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StateRepo == nil {
		return nil, ErrNilStateRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Calculator == nil {
		return nil, ErrNilCalculator
	}

	l, err := ledger.New(&ledger.Config{UUIDGenerator: cfg.UUIDGenerator})
	if err != nil {
		return nil, err
	}

	warningDelay := cfg.WarningDelay
	if warningDelay <= 0 {
		warningDelay = DefaultWarningDelay
	}

	return &service{
		stateRepo:    cfg.StateRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		calculator:   cfg.Calculator,
		warningDelay: warningDelay,
		ledger:       l,
		theme:        models.ThemeLight,
		pending:      make(map[string]*models.PendingAction),
	}, nil
}

// Load replaces patrons and theme with the stored snapshot and drops pending actions
func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	patrons, err := s.stateRepo.LoadPatrons(ctx)
	if err != nil {
		return fmt.Errorf("failed to load patrons: %w", err)
	}
	theme, err := s.stateRepo.LoadTheme(ctx)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	s.ledger.Restore(patrons.Patrons)
	s.theme = theme.Theme
	s.pending = make(map[string]*models.PendingAction)

	return nil
}

// Save stores the full patron list and the theme
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stateRepo.SavePatrons(ctx, &state.SavePatronsInput{
		Patrons: s.ledger.Snapshot(),
	}); err != nil {
		return fmt.Errorf("failed to save patrons: %w", err)
	}
	if err := s.stateRepo.SaveTheme(ctx, &state.SaveThemeInput{
		Theme: s.theme,
	}); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

// AddPatron registers a new patron
func (s *service) AddPatron(ctx context.Context, input *AddPatronInput) (*AddPatronOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patron, err := s.ledger.AddPatron(input.Name, input.BodyMass)
	if err != nil {
		return nil, err
	}

	return &AddPatronOutput{Patron: patron}, nil
}

// EditPatron changes a patron's name and body mass, keeping their drinks
func (s *service) EditPatron(ctx context.Context, input *EditPatronInput) (*EditPatronOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patron, err := s.ledger.EditPatron(input.PatronID, input.Name, input.BodyMass)
	if err != nil {
		return nil, err
	}

	return &EditPatronOutput{Patron: patron}, nil
}

// GetPatron returns one patron with their current saturation
func (s *service) GetPatron(ctx context.Context, input *GetPatronInput) (*GetPatronOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patron, err := s.ledger.Patron(input.PatronID)
	if err != nil {
		return nil, err
	}

	return &GetPatronOutput{Status: s.status(patron, s.clock.Now())}, nil
}

// ListPatrons returns every patron with their current saturation
func (s *service) ListPatrons(ctx context.Context) (*ListPatronsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	patrons := s.ledger.Patrons()
	statuses := make([]*PatronStatus, 0, len(patrons))
	for _, patron := range patrons {
		statuses = append(statuses, s.status(patron, now))
	}

	return &ListPatronsOutput{Patrons: statuses}, nil
}

// RequestRemovePatron raises a confirmation; the patron is removed only when it is accepted
func (s *service) RequestRemovePatron(ctx context.Context, input *RequestRemovePatronInput) (*RequestRemovePatronOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patron, err := s.ledger.Patron(input.PatronID)
	if err != nil {
		return nil, err
	}

	action := s.raise(&models.PendingAction{
		Kind:       models.ActionKindConfirm,
		OnAccept:   models.ActionRemovePatron,
		Title:      "Confirm Removal",
		Message:    "Are you sure you want to remove this patron?",
		PatronID:   patron.ID,
		PatronName: patron.Name,
	})

	return &RequestRemovePatronOutput{Action: action}, nil
}

// AddDrink appends quantity servings of the cocktail, all stamped with the same time,
// and raises the drink-added confirmation
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Cocktail == nil {
		return nil, ErrNilCocktail
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	drink := models.Drink{
		ID:             input.Cocktail.ID,
		Name:           input.Cocktail.Name,
		AlcoholContent: s.calculator.AlcoholContent(input.Cocktail),
		Timestamp:      now,
	}

	patron, err := s.ledger.AppendDrink(input.PatronID, drink, quantity)
	if err != nil {
		return nil, err
	}

	status := s.status(patron, now)
	action := s.raise(&models.PendingAction{
		Kind:       models.ActionKindConfirm,
		OnAccept:   models.ActionAcknowledgeDrink,
		Title:      "Drink Added",
		Message:    fmt.Sprintf("Added %d %s(s) to %s", quantity, drink.Name, patron.Name),
		PatronID:   patron.ID,
		PatronName: patron.Name,
		Saturation: status.Saturation,
	})

	return &AddDrinkOutput{
		Status: status,
		Drink:  drink,
		Action: action,
	}, nil
}

// ResolveAction consumes a pending action. Cancelling has no other effect.
func (s *service) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.pending[input.ActionID]
	if !ok {
		return nil, ErrActionNotFound
	}
	delete(s.pending, input.ActionID)

	output := &ResolveActionOutput{Resolved: action}
	if !input.Accept {
		return output, nil
	}

	switch action.OnAccept {
	case models.ActionRemovePatron:
		if err := s.ledger.RemovePatron(action.PatronID); err != nil {
			return nil, err
		}
	case models.ActionAcknowledgeDrink:
		if alcohol.IsOverLimit(action.Saturation) {
			message := fmt.Sprintf("%s has exceeded the recommended alcohol limit! Current blood alcohol content: %.3f%%. Please ensure patron safety.",
				action.PatronName, action.Saturation)
			output.FollowUp = s.raise(&models.PendingAction{
				Kind:       models.ActionKindWarn,
				OnAccept:   models.ActionDismissWarning,
				Title:      "Alcohol Limit Warning",
				Message:    message,
				PatronID:   action.PatronID,
				PatronName: action.PatronName,
				Saturation: action.Saturation,
				Delay:      s.warningDelay,
			})
		}
	case models.ActionDismissWarning:
	default:
		log.Printf("Unknown pending action %q resolved", action.OnAccept)
	}

	return output, nil
}

// GetStatistics counts every logged serving, broken down by drink name
func (s *service) GetStatistics(ctx context.Context) (*GetStatisticsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patrons := s.ledger.Patrons()
	counts := make(map[string]int)
	total := 0
	for _, patron := range patrons {
		for _, drink := range patron.Drinks {
			counts[drink.Name]++
			total++
		}
	}

	breakdown := make([]models.DrinkCount, 0, len(counts))
	for name, count := range counts {
		breakdown = append(breakdown, models.DrinkCount{Name: name, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Name < breakdown[j].Name
	})

	return &GetStatisticsOutput{
		Statistics: &models.Statistics{
			TotalPatrons: len(patrons),
			TotalDrinks:  total,
			Breakdown:    breakdown,
		},
	}, nil
}

// GetTheme returns the display theme
func (s *service) GetTheme(ctx context.Context) (*GetThemeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetThemeOutput{Theme: s.theme}, nil
}

// ToggleTheme flips the display theme
func (s *service) ToggleTheme(ctx context.Context) (*ToggleThemeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Toggle()

	return &ToggleThemeOutput{Theme: s.theme}, nil
}

func (s *service) status(patron *models.Patron, now time.Time) *PatronStatus {
	saturation := alcohol.Saturation(patron, now)
	return &PatronStatus{
		Patron:     patron,
		Saturation: saturation,
		OverLimit:  alcohol.IsOverLimit(saturation),
	}
}

// raise registers action under a fresh id, replacing any action still open for the same patron
func (s *service) raise(action *models.PendingAction) *models.PendingAction {
	for id, open := range s.pending {
		if open.PatronID == action.PatronID {
			delete(s.pending, id)
		}
	}

	action.ID = s.uuid.NewUUID()
	s.pending[action.ID] = action
	copied := *action
	return &copied
}
