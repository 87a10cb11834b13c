package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the cooking assistant service
type Config struct {
	// HTTP configuration
	BindAddr string `env:"BIND_ADDR" envDefault:"0.0.0.0"`
	Port     int    `env:"PORT" envDefault:"8011"`

	// LLM configuration
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Search configuration
	TavilyAPIKey     string `env:"TAVILY_API_KEY" envDefault:""`
	SearchMaxResults int    `env:"SEARCH_MAX_RESULTS" envDefault:"3"`

	// Researcher agent configuration
	AgentMaxSteps int `env:"AGENT_MAX_STEPS" envDefault:"8"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("BIND_ADDR is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// The LLM credential is a startup requirement, not a per-request one
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.OpenAIModel == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}

	// TAVILY_API_KEY is optional - without it the keyless DuckDuckGo
	// engine is used for web search

	if c.SearchMaxResults <= 0 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be positive")
	}

	if c.AgentMaxSteps <= 0 {
		return fmt.Errorf("AGENT_MAX_STEPS must be positive")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{BindAddr=%s, Port=%d, OpenAIModel=%s, TavilySet=%v, "+
			"SearchMaxResults=%d, AgentMaxSteps=%d, LogLevel=%s}",
		c.BindAddr,
		c.Port,
		c.OpenAIModel,
		c.TavilyAPIKey != "",
		c.SearchMaxResults,
		c.AgentMaxSteps,
		c.LogLevel,
	)
}
