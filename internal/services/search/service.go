package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
	"github.com/KirkDiggler/mixology/internal/models"
)

// service implements the Service interface
type service struct {
	client     cocktaildb.Client
	debounce   time.Duration
	sessionTTL time.Duration

	mu         sync.Mutex
	suggesters map[string]*Suggester
}

// New creates a new search service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &service{
		client:     cfg.Client,
		debounce:   debounce,
		sessionTTL: sessionTTL,
		suggesters: make(map[string]*Suggester),
	}, nil
}

// Search returns the recipes matching the query; an empty query matches nothing
func (s *service) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchOutput{Cocktails: []*models.Cocktail{}}, nil
	}

	cocktails, err := s.client.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return &SearchOutput{Cocktails: cocktails}, nil
}

// FindCocktail prefers an exact case-insensitive name match, then the first result
func (s *service) FindCocktail(ctx context.Context, input *FindCocktailInput) (*FindCocktailOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyQuery
	}

	output, err := s.Search(ctx, &SearchInput{Query: name})
	if err != nil {
		return nil, err
	}
	if len(output.Cocktails) == 0 {
		return nil, ErrCocktailNotFound
	}

	for _, cocktail := range output.Cocktails {
		if strings.EqualFold(cocktail.Name, name) {
			return &FindCocktailOutput{Cocktail: cocktail}, nil
		}
	}

	return &FindCocktailOutput{Cocktail: output.Cocktails[0]}, nil
}

// Suggest issues a request on the session's suggester and waits for it to settle.
// A request overtaken by a newer one for the same session returns ErrSuperseded.
func (s *service) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	suggester := s.suggester(input.SessionID)
	seq, done := suggester.Request(input.Query)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	suggestions, err := suggester.Result(seq)
	if err == ErrSuperseded {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return &SuggestOutput{Suggestions: suggestions}, nil
}

func (s *service) suggester(sessionID string) *Suggester {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.sessionTTL)
	for id, suggester := range s.suggesters {
		if id != sessionID && suggester.idleSince().Before(cutoff) {
			suggester.Close()
			delete(s.suggesters, id)
		}
	}

	suggester, ok := s.suggesters[sessionID]
	if !ok {
		suggester = NewSuggester(s.client, s.debounce)
		s.suggesters[sessionID] = suggester
	}
	return suggester
}
