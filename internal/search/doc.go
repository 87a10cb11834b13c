// Package search provides the web search engines used by the research agent.
//
// Two engines are available: Tavily (JSON API, needs a credential) and
// DuckDuckGo (HTML scraping, keyless). New selects Tavily when a key is
// configured and falls back to DuckDuckGo otherwise. Every call caps the
// number of returned snippets.
package search
