package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/llm"
	"github.com/aescanero/cooking-assistant/internal/prompt"
)

// Classifier asks the LLM for a single-word relevance verdict and appends
// the raw reply to the conversation. No validation happens here - the
// router downstream interprets whatever came back.
type Classifier struct {
	llmClient    llm.Client
	systemPrompt string
	logger       *zap.Logger
}

// NewClassifier creates the classifier node
func NewClassifier(llmClient llm.Client, logger *zap.Logger) *Classifier {
	return &Classifier{
		llmClient:    llmClient,
		systemPrompt: prompt.ClassifierSystem,
		logger:       logger,
	}
}

// Name implements Node
func (c *Classifier) Name() string {
	return NodeClassifier
}

// Run prepends the classification instruction, delegates the full history to
// the LLM and appends the reply as the verdict message. Provider errors
// propagate to the caller.
func (c *Classifier) Run(ctx context.Context, state *conversation.State) error {
	messages := make([]conversation.Message, 0, state.Len()+1)
	messages = append(messages, conversation.Message{
		Role:    conversation.RoleSystem,
		Content: c.systemPrompt,
	})
	messages = append(messages, state.Messages()...)

	c.logger.Info("classifier request", zap.Any("messages", messages))

	reply, err := c.llmClient.Complete(ctx, messages)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	c.logger.Info("classifier verdict", zap.String("verdict", reply))

	state.Append(conversation.Message{
		Role:    conversation.RoleAssistant,
		Content: reply,
		Origin:  conversation.OriginVerdict,
	})

	return nil
}
