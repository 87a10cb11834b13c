package prompt

import (
	"fmt"
	"sync"

	"github.com/aymerick/raymond"
)

// Renderer renders Handlebars prompt templates
type Renderer struct {
	cache map[string]*raymond.Template
	mu    sync.RWMutex
}

// NewRenderer creates a new prompt renderer
func NewRenderer() *Renderer {
	return &Renderer{
		cache: make(map[string]*raymond.Template),
	}
}

// Render renders a template with the given data
func (r *Renderer) Render(templateStr string, data interface{}) (string, error) {
	// Get or compile template
	tmpl, err := r.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	// Execute the template
	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (r *Renderer) getTemplate(templateStr string) (*raymond.Template, error) {
	// Check cache first (read lock)
	r.mu.RLock()
	if tmpl, ok := r.cache[templateStr]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	// Compile the template (write lock)
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := r.cache[templateStr]; ok {
		return tmpl, nil
	}

	// Parse and compile the template
	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	// Cache the template
	r.cache[templateStr] = tmpl

	return tmpl, nil
}

// ValidateTemplate validates a template without rendering it
func (r *Renderer) ValidateTemplate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}
