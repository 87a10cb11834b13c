package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultDuckDuckGoURL is the DuckDuckGo HTML endpoint
const DefaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"

// DuckDuckGoEngine implements search by scraping DuckDuckGo HTML results.
// It needs no credential.
type DuckDuckGoEngine struct {
	client  *http.Client
	baseURL string
}

// NewDuckDuckGoEngine creates a new DuckDuckGo search engine
func NewDuckDuckGoEngine() *DuckDuckGoEngine {
	return &DuckDuckGoEngine{
		client:  newHTTPClient(),
		baseURL: DefaultDuckDuckGoURL,
	}
}

// Search performs a DuckDuckGo HTML search
func (e *DuckDuckGoEngine) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	maxResults = normalizeMaxResults(maxResults)

	searchURL := fmt.Sprintf("%s?q=%s", e.baseURL, url.QueryEscape(query))

	doc, err := e.fetchAndParse(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	return extractResults(doc, maxResults), nil
}

// fetchAndParse performs the HTTP request and parses the HTML response
func (e *DuckDuckGoEngine) fetchAndParse(ctx context.Context, searchURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CookingAssistant/1.0)")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	return doc, nil
}

// extractResults extracts search results from DuckDuckGo HTML
func extractResults(doc *goquery.Document, maxResults int) []Result {
	var results []Result
	doc.Find(".result").Each(func(i int, s *goquery.Selection) {
		if len(results) >= maxResults {
			return
		}

		titleLink := s.Find(".result__a")
		title := strings.TrimSpace(titleLink.Text())
		href, exists := titleLink.Attr("href")

		content := strings.TrimSpace(s.Find(".result__snippet").Text())

		if exists && title != "" {
			results = append(results, Result{
				Title:   title,
				URL:     resolveRedirectURL(href),
				Content: content,
			})
		}
	})

	return results
}

// resolveRedirectURL extracts the actual URL from DuckDuckGo's redirect URL
func resolveRedirectURL(ddgURL string) string {
	// DuckDuckGo links look like: //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com
	parsedURL, err := url.Parse(ddgURL)
	if err != nil {
		return ddgURL
	}

	if uddg := parsedURL.Query().Get("uddg"); uddg != "" {
		return uddg
	}

	return ddgURL
}
