package router

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/eval/cel"
)

// Rule represents a CEL-based routing rule
type Rule struct {
	Condition string `json:"condition"`
	Target    string `json:"target"`
}

// Result represents a routing decision
type Result struct {
	Target    string `json:"target"`
	Reasoning string `json:"reasoning"`
	PathTaken string `json:"path_taken"` // "rule", "fallback"
}

// Router decides the next pipeline node from the most recent conversation
// message. It is deterministic and total: rule evaluation errors skip to the
// next rule and ultimately to the fallback target.
type Router struct {
	celEvaluator *cel.Evaluator
	rules        []Rule
	fallback     string
	logger       *zap.Logger
}

// DefaultRules returns the verdict rule set: an assistant message reading
// exactly "relevant" selects the research target, "irrelevant" the refusal
// target. Every other verdict falls through to the router's fallback.
func DefaultRules(researchTarget, refusalTarget string) []Rule {
	return []Rule{
		{Condition: `role == "assistant" && verdict == "relevant"`, Target: researchTarget},
		{Condition: `role == "assistant" && verdict == "irrelevant"`, Target: refusalTarget},
	}
}

// New creates a new router. The rule set is validated up front so a broken
// condition is a startup failure, not a per-request one.
func New(rules []Rule, fallback string, logger *zap.Logger) (*Router, error) {
	if fallback == "" {
		return nil, fmt.Errorf("fallback target is required")
	}

	evaluator := cel.NewEvaluator()
	for i, rule := range rules {
		if rule.Condition == "" {
			return nil, fmt.Errorf("rule %d: condition is required", i)
		}
		if rule.Target == "" {
			return nil, fmt.Errorf("rule %d: target is required", i)
		}
		if err := evaluator.ValidateExpression(rule.Condition); err != nil {
			return nil, fmt.Errorf("rule %d: invalid condition: %w", i, err)
		}
	}

	return &Router{
		celEvaluator: evaluator,
		rules:        rules,
		fallback:     fallback,
		logger:       logger,
	}, nil
}

// Route selects the next node for the conversation. The fail-closed default
// is the fallback target: unknown verdicts, non-assistant messages, and rule
// evaluation errors all land there.
func (r *Router) Route(ctx context.Context, state *conversation.State) Result {
	last, err := state.Last()
	if err != nil {
		r.logger.Warn("routing an empty conversation, using fallback",
			zap.String("fallback", r.fallback),
		)
		return Result{
			Target:    r.fallback,
			Reasoning: "conversation is empty",
			PathTaken: "fallback",
		}
	}

	vars := map[string]interface{}{
		"role":    string(last.Role),
		"verdict": strings.ToLower(last.Content),
	}

	for i, rule := range r.rules {
		result, err := r.celEvaluator.Evaluate(ctx, rule.Condition, vars)
		if err != nil {
			r.logger.Warn("rule evaluation error",
				zap.Int("rule_index", i),
				zap.String("condition", rule.Condition),
				zap.Error(err),
			)
			// Continue to next rule on error
			continue
		}

		matched, ok := result.(bool)
		if !ok {
			r.logger.Warn("rule condition did not return boolean",
				zap.Int("rule_index", i),
				zap.String("condition", rule.Condition),
				zap.Any("result", result),
			)
			continue
		}

		if matched {
			r.logger.Info("rule matched",
				zap.Int("rule_index", i),
				zap.String("condition", rule.Condition),
				zap.String("target", rule.Target),
			)

			return Result{
				Target:    rule.Target,
				Reasoning: fmt.Sprintf("matched rule %d: %s", i, rule.Condition),
				PathTaken: "rule",
			}
		}
	}

	// No rules matched, use fallback
	r.logger.Info("no rules matched, using fallback",
		zap.String("fallback", r.fallback),
	)

	return Result{
		Target:    r.fallback,
		Reasoning: "no rules matched",
		PathTaken: "fallback",
	}
}
