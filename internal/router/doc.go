// Package router implements the verdict router that picks the pipeline
// branch after classification.
//
// Routing is deterministic and rule-based: CEL conditions are evaluated
// in order against the role and lowercased content of the most recent
// conversation message, and the first match wins. The router is total -
// unmatched or unparseable verdicts route to the fallback target, so a
// garbled classifier reply degrades to a refusal rather than an error.
//
// Example:
//
//	rules := router.DefaultRules("researcher", "refusal")
//	r, err := router.New(rules, "refusal", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decision := r.Route(ctx, state)
//	// decision.Target is "researcher", "refusal", ...
package router
