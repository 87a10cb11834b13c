package router

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := New(DefaultRules("researcher", "refusal"), "refusal", zap.NewNop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func stateWithVerdict(role conversation.Role, content string) *conversation.State {
	state := conversation.NewState("How do I boil an egg?")
	state.Append(conversation.Message{
		Role:    role,
		Content: content,
		Origin:  conversation.OriginVerdict,
	})
	return state
}

func TestRoute_Verdicts(t *testing.T) {
	r := newTestRouter(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		role    conversation.Role
		content string
		want    string
	}{
		{"relevant", conversation.RoleAssistant, "relevant", "researcher"},
		{"relevant uppercase", conversation.RoleAssistant, "RELEVANT", "researcher"},
		{"relevant mixed case", conversation.RoleAssistant, "Relevant", "researcher"},
		{"irrelevant", conversation.RoleAssistant, "irrelevant", "refusal"},
		{"irrelevant uppercase", conversation.RoleAssistant, "IRRELEVANT", "refusal"},
		{"ambiguous text", conversation.RoleAssistant, "maybe?", "refusal"},
		{"empty verdict", conversation.RoleAssistant, "", "refusal"},
		{"sentence containing relevant", conversation.RoleAssistant, "this is relevant", "refusal"},
		{"non-assistant message", conversation.RoleUser, "relevant", "refusal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := r.Route(ctx, stateWithVerdict(tt.role, tt.content))
			if decision.Target != tt.want {
				t.Errorf("Route() target = %q, want %q", decision.Target, tt.want)
			}
		})
	}
}

func TestRoute_Idempotent(t *testing.T) {
	r := newTestRouter(t)
	ctx := context.Background()
	state := stateWithVerdict(conversation.RoleAssistant, "relevant")

	first := r.Route(ctx, state)
	second := r.Route(ctx, state)

	if first != second {
		t.Errorf("Route() not idempotent: first %+v, second %+v", first, second)
	}
}

func TestRoute_EmptyConversation(t *testing.T) {
	r := newTestRouter(t)

	decision := r.Route(context.Background(), &conversation.State{})
	if decision.Target != "refusal" {
		t.Errorf("Route() on empty conversation = %q, want refusal", decision.Target)
	}
	if decision.PathTaken != "fallback" {
		t.Errorf("PathTaken = %q, want fallback", decision.PathTaken)
	}
}

func TestRoute_FallbackPath(t *testing.T) {
	r := newTestRouter(t)

	decision := r.Route(context.Background(), stateWithVerdict(conversation.RoleAssistant, "maybe?"))
	if decision.PathTaken != "fallback" {
		t.Errorf("PathTaken = %q, want fallback", decision.PathTaken)
	}
}

func TestNew_Validation(t *testing.T) {
	logger := zap.NewNop()

	if _, err := New(nil, "", logger); err == nil {
		t.Error("New() without fallback should fail")
	}

	if _, err := New([]Rule{{Condition: "", Target: "x"}}, "refusal", logger); err == nil {
		t.Error("New() with empty condition should fail")
	}

	if _, err := New([]Rule{{Condition: `verdict ==`, Target: "x"}}, "refusal", logger); err == nil {
		t.Error("New() with broken condition should fail")
	}

	if _, err := New([]Rule{{Condition: `verdict == "relevant"`, Target: ""}}, "refusal", logger); err == nil {
		t.Error("New() with empty target should fail")
	}
}
