package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultTavilyURL is the Tavily search API endpoint
const DefaultTavilyURL = "https://api.tavily.com/search"

// TavilyEngine implements search using the Tavily API
type TavilyEngine struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewTavilyEngine creates a new Tavily search engine
func NewTavilyEngine(apiKey string) *TavilyEngine {
	return &TavilyEngine{
		client:  newHTTPClient(),
		apiKey:  apiKey,
		baseURL: DefaultTavilyURL,
	}
}

// tavilyRequest is the Tavily API request body
type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// tavilyResult is a single item in the Tavily API response
type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Search performs a Tavily API search
func (e *TavilyEngine) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	maxResults = normalizeMaxResults(maxResults)

	body, err := json.Marshal(tavilyRequest{
		APIKey:     e.apiKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search request failed: HTTP %d: %s", resp.StatusCode, string(data))
	}

	var apiResp struct {
		Results []tavilyResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]Result, 0, len(apiResp.Results))
	for _, item := range apiResp.Results {
		if len(results) >= maxResults {
			break
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Content: item.Content,
		})
	}

	return results, nil
}
