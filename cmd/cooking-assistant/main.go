package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aescanero/cooking-assistant/internal/agent"
	"github.com/aescanero/cooking-assistant/internal/config"
	"github.com/aescanero/cooking-assistant/internal/graph"
	"github.com/aescanero/cooking-assistant/internal/llm"
	"github.com/aescanero/cooking-assistant/internal/prompt"
	"github.com/aescanero/cooking-assistant/internal/router"
	"github.com/aescanero/cooking-assistant/internal/search"
	"github.com/aescanero/cooking-assistant/internal/server"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting cooking assistant",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// Log configuration (without sensitive data)
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	// Initialize LLM client
	llmClient, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		logger.Fatal("failed to initialize llm client", zap.Error(err))
	}
	logger.Info("llm client initialized", zap.String("model", cfg.OpenAIModel))

	// Initialize search engine
	engine := search.New(cfg.TavilyAPIKey)
	if cfg.TavilyAPIKey != "" {
		logger.Info("search engine initialized", zap.String("engine", "tavily"))
	} else {
		logger.Info("search engine initialized", zap.String("engine", "duckduckgo"))
	}

	// Initialize research agent
	renderer := prompt.NewRenderer()
	researchAgent := agent.New(llmClient, engine, renderer, logger, agent.Options{
		MaxSteps:          cfg.AgentMaxSteps,
		MaxSearchResults:  cfg.SearchMaxResults,
		HandleParseErrors: true,
	})

	// Initialize verdict router
	verdictRouter, err := router.New(
		router.DefaultRules(graph.NodeResearcher, graph.NodeRefusal),
		graph.NodeRefusal,
		logger,
	)
	if err != nil {
		logger.Fatal("failed to initialize router", zap.Error(err))
	}

	// Build the pipeline graph
	pipeline := graph.New(logger)
	pipeline.AddNode(graph.NewClassifier(llmClient, logger))
	pipeline.AddNode(graph.NewResearcher(researchAgent, logger))
	pipeline.AddNode(graph.Refusal{})
	pipeline.SetEntry(graph.NodeClassifier)
	pipeline.AddConditionalEdge(graph.NodeClassifier, verdictRouter)
	pipeline.AddEdge(graph.NodeResearcher, graph.End)
	pipeline.AddEdge(graph.NodeRefusal, graph.End)

	if err := pipeline.Validate(); err != nil {
		logger.Fatal("invalid pipeline graph", zap.Error(err))
	}
	logger.Info("pipeline graph initialized")

	// Start API server
	apiServer := server.New(cfg.ListenAddr(), pipeline, logger)
	if err := apiServer.Start(); err != nil {
		logger.Fatal("failed to start api server", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("cooking assistant running, press Ctrl+C to stop")
	<-sigChan

	logger.Info("shutdown signal received, stopping server")

	if err := apiServer.Stop(); err != nil {
		logger.Error("failed to stop api server", zap.Error(err))
	}

	logger.Info("cooking assistant stopped gracefully")
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
