package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
)

// Suggester turns keystrokes into suggestion requests. Every request carries a
// sequence number; a request cancels the one before it, and a response is only
// applied when it belongs to the latest issued request.
type Suggester struct {
	client   cocktaildb.Client
	debounce time.Duration

	mu       sync.Mutex
	issued   uint64
	cancel   context.CancelFunc
	current  Suggestions
	failures map[uint64]error
	lastUsed time.Time
}

// NewSuggester creates a suggester over client
func NewSuggester(client cocktaildb.Client, debounce time.Duration) *Suggester {
	return &Suggester{
		client:   client,
		debounce: debounce,
		current:  Suggestions{Names: []string{}},
		failures: make(map[uint64]error),
		lastUsed: time.Now(),
	}
}

// Request issues a suggestion request for query. It returns the request's
// sequence number and a channel closed once the request has been applied or discarded.
func (s *Suggester) Request(query string) (uint64, <-chan struct{}) {
	query = strings.TrimSpace(query)
	done := make(chan struct{})

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.lastUsed = time.Now()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if utf8.RuneCountInString(query) < MinSuggestLength {
		s.current = Suggestions{Seq: seq, Query: query, Names: []string{}}
		s.mu.Unlock()
		close(done)
		return seq, done
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, cancel, seq, query, done)

	return seq, done
}

// Current returns the visible suggestion set
func (s *Suggester) Current() Suggestions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Result reports the outcome of request seq once it is done
func (s *Suggester) Result(seq uint64) (Suggestions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Seq == seq {
		return s.snapshot(), nil
	}
	if err, ok := s.failures[seq]; ok {
		delete(s.failures, seq)
		return s.snapshot(), err
	}
	return Suggestions{}, ErrSuperseded
}

// Close cancels any in-flight request
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Suggester) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Suggester) run(ctx context.Context, cancel context.CancelFunc, seq uint64, query string, done chan struct{}) {
	defer close(done)
	defer cancel()

	timer := time.NewTimer(s.debounce)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	cocktails, err := s.client.SearchByName(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued {
		return
	}

	if err != nil {
		log.Printf("Error fetching suggestions for %q: %v", query, err)
		for old := range s.failures {
			if old < seq {
				delete(s.failures, old)
			}
		}
		s.failures[seq] = err
		return
	}

	names := make([]string, 0, len(cocktails))
	for _, cocktail := range cocktails {
		names = append(names, cocktail.Name)
	}
	s.current = Suggestions{Seq: seq, Query: query, Names: names}
}

func (s *Suggester) snapshot() Suggestions {
	names := make([]string, len(s.current.Names))
	copy(names, s.current.Names)
	return Suggestions{Seq: s.current.Seq, Query: s.current.Query, Names: names}
}
