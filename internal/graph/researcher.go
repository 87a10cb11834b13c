package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
)

// ResearchAgent produces a final answer for a question, issuing search
// calls as needed.
type ResearchAgent interface {
	Run(ctx context.Context, question string) (string, error)
}

// Researcher answers the original user query with the research agent and
// appends the answer to the conversation.
type Researcher struct {
	agent  ResearchAgent
	logger *zap.Logger
}

// NewResearcher creates the researcher node
func NewResearcher(agent ResearchAgent, logger *zap.Logger) *Researcher {
	return &Researcher{
		agent:  agent,
		logger: logger,
	}
}

// Name implements Node
func (r *Researcher) Name() string {
	return NodeResearcher
}

// Run researches the query message, found by its origin tag rather than by
// position in the conversation.
func (r *Researcher) Run(ctx context.Context, state *conversation.State) error {
	query, err := state.Query()
	if err != nil {
		return fmt.Errorf("no query to research: %w", err)
	}

	r.logger.Info("researching query", zap.String("query", query.Content))

	answer, err := r.agent.Run(ctx, query.Content)
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	state.Append(conversation.Message{
		Role:    conversation.RoleAssistant,
		Content: answer,
		Origin:  conversation.OriginAnswer,
	})

	return nil
}
