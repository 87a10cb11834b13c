package graph

import (
	"context"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/prompt"
)

// Refusal appends the fixed out-of-domain reply. It contacts no external
// service and cannot fail.
type Refusal struct{}

// Name implements Node
func (Refusal) Name() string {
	return NodeRefusal
}

// Run implements Node
func (Refusal) Run(_ context.Context, state *conversation.State) error {
	state.Append(conversation.Message{
		Role:    conversation.RoleAssistant,
		Content: prompt.RefusalAnswer,
		Origin:  conversation.OriginAnswer,
	})
	return nil
}
