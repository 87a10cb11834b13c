package llm

import (
	"context"

	"github.com/aescanero/cooking-assistant/internal/conversation"
)

// Client generates one assistant reply for an ordered list of role-tagged
// messages.
type Client interface {
	Complete(ctx context.Context, messages []conversation.Message) (string, error)
}
