package search

import (
	"context"
	"net/http"
	"time"
)

const (
	// DefaultHTTPTimeout is the default timeout for search HTTP requests
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultMaxResults is the default maximum number of search results
	DefaultMaxResults = 3

	// AbsoluteMaxResults caps any configured result count
	AbsoluteMaxResults = 20
)

// Result represents a single search result snippet
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Engine represents a search engine implementation
type Engine interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// New creates a search engine based on the available credentials: Tavily
// when an API key is configured, otherwise the keyless DuckDuckGo engine.
func New(tavilyAPIKey string) Engine {
	if tavilyAPIKey != "" {
		return NewTavilyEngine(tavilyAPIKey)
	}
	return NewDuckDuckGoEngine()
}

// newHTTPClient returns the HTTP client shared by engine implementations
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: DefaultHTTPTimeout,
	}
}

// normalizeMaxResults ensures maxResults is within valid bounds
func normalizeMaxResults(maxResults int) int {
	if maxResults <= 0 {
		return DefaultMaxResults
	}
	if maxResults > AbsoluteMaxResults {
		return AbsoluteMaxResults
	}
	return maxResults
}
