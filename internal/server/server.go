package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/graph"
)

// Query is the request body of the cooking endpoint
type Query struct {
	Query string `json:"query"`
}

// Response is the success body of the cooking endpoint
type Response struct {
	Response string `json:"response"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Server serves the cooking assistant HTTP API
type Server struct {
	addr     string
	pipeline *graph.Graph
	logger   *zap.Logger
	server   *http.Server
}

// New creates a new API server. The pipeline is shared across requests;
// every request gets its own conversation state.
func New(addr string, pipeline *graph.Graph, logger *zap.Logger) *Server {
	return &Server{
		addr:     addr,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cooking", s.handleCooking)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	return mux
}

// Start starts the API server
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("starting api server", zap.String("addr", s.addr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("api server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop stops the API server gracefully
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("stopping api server")
	return s.server.Shutdown(ctx)
}

// handleCooking runs the pipeline for one query
func (s *Server) handleCooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "method not allowed"})
		return
	}

	var query Query
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
		return
	}
	if strings.TrimSpace(query.Query) == "" {
		s.respondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "query is required"})
		return
	}

	requestID := uuid.NewString()
	logger := s.logger.With(zap.String("request_id", requestID))
	logger.Info("cooking query received", zap.String("query", query.Query))

	state := conversation.NewState(query.Query)

	// The single catch-all boundary: any pipeline failure becomes the
	// uniform error payload
	if err := s.pipeline.Run(r.Context(), state); err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		s.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	last, err := state.Last()
	if err != nil {
		logger.Error("pipeline produced no messages", zap.Error(err))
		s.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	logger.Info("cooking query answered", zap.Int("messages", state.Len()))
	s.respondJSON(w, http.StatusOK, Response{Response: last.Content})
}

// handleHealth handles the /health endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleReady handles the /ready endpoint
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
