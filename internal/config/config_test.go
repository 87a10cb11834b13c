package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BindAddr != "0.0.0.0" {
		t.Errorf("BindAddr = %s, want 0.0.0.0", cfg.BindAddr)
	}
	if cfg.Port != 8011 {
		t.Errorf("Port = %d, want 8011", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %s, want gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.TavilyAPIKey != "" {
		t.Errorf("TavilyAPIKey = %s, want empty", cfg.TavilyAPIKey)
	}
	if cfg.SearchMaxResults != 3 {
		t.Errorf("SearchMaxResults = %d, want 3", cfg.SearchMaxResults)
	}
	if cfg.AgentMaxSteps != 8 {
		t.Errorf("AgentMaxSteps = %d, want 8", cfg.AgentMaxSteps)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("BIND_ADDR", "127.0.0.1")
	os.Setenv("PORT", "9000")
	os.Setenv("OPENAI_MODEL", "gpt-4o")
	os.Setenv("TAVILY_API_KEY", "tavily-key")
	os.Setenv("SEARCH_MAX_RESULTS", "5")
	os.Setenv("AGENT_MAX_STEPS", "12")
	os.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BindAddr != "127.0.0.1" {
		t.Errorf("BindAddr = %s", cfg.BindAddr)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %s", cfg.OpenAIModel)
	}
	if cfg.TavilyAPIKey != "tavily-key" {
		t.Errorf("TavilyAPIKey = %s", cfg.TavilyAPIKey)
	}
	if cfg.SearchMaxResults != 5 {
		t.Errorf("SearchMaxResults = %d", cfg.SearchMaxResults)
	}
	if cfg.AgentMaxSteps != 12 {
		t.Errorf("AgentMaxSteps = %d", cfg.AgentMaxSteps)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}

	if cfg.ListenAddr() != "127.0.0.1:9000" {
		t.Errorf("ListenAddr() = %s", cfg.ListenAddr())
	}
}

func TestLoad_MissingAPIKeyFailsFast(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Error("Load() without OPENAI_API_KEY should fail")
	}
}

func TestValidate_Bounds(t *testing.T) {
	base := func() *Config {
		return &Config{
			BindAddr:         "0.0.0.0",
			Port:             8011,
			OpenAIAPIKey:     "key",
			OpenAIModel:      "gpt-4o-mini",
			SearchMaxResults: 3,
			AgentMaxSteps:    8,
			LogLevel:         "info",
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("Validate() failed on valid config: %v", err)
	}

	cfg := base()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject port 0")
	}

	cfg = base()
	cfg.SearchMaxResults = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject non-positive SEARCH_MAX_RESULTS")
	}

	cfg = base()
	cfg.AgentMaxSteps = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject non-positive AGENT_MAX_STEPS")
	}

	cfg = base()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown log level")
	}
}

func TestString_HidesSecrets(t *testing.T) {
	cfg := &Config{
		OpenAIAPIKey: "sk-secret",
		TavilyAPIKey: "tvly-secret",
		OpenAIModel:  "gpt-4o-mini",
	}

	s := cfg.String()
	if strings.Contains(s, "sk-secret") || strings.Contains(s, "tvly-secret") {
		t.Errorf("String() leaks credentials: %s", s)
	}
}
