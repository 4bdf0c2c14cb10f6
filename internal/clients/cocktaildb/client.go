package cocktaildb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
)

const (
	// DefaultBaseURL is TheCocktailDB's free v1 API
	DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1"

	// DefaultTimeout bounds a single search request
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

// Config holds configuration for the HTTP client
type Config struct {
	// BaseURL overrides DefaultBaseURL
	BaseURL string

	// HTTPClient overrides the default client with DefaultTimeout
	HTTPClient *http.Client
}

// httpClient implements Client against TheCocktailDB's JSON API
type httpClient struct {
	baseURL string
	client  *http.Client
}

// New creates a recipe source client
func New(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	return &httpClient{
		baseURL: baseURL,
		client:  client,
	}, nil
}

// SearchByName calls search.php?s=name
func (c *httpClient) SearchByName(ctx context.Context, name string) ([]*models.Cocktail, error) {
	endpoint := c.baseURL + "/search.php?s=" + url.QueryEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return decodeSearchResponse(body)
}
