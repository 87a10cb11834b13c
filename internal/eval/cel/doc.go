// Package cel provides a CEL (Common Expression Language) evaluator for the
// verdict router.
//
// CEL is a non-Turing complete expression language that provides fast, safe
// evaluation of routing conditions. Conditions are evaluated against the
// classifier's output:
//
//	evaluator := cel.NewEvaluator()
//
//	vars := map[string]interface{}{
//	    "role":    "assistant",
//	    "verdict": "relevant",
//	}
//
//	result, err := evaluator.Evaluate(ctx, `role == "assistant" && verdict == "relevant"`, vars)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matched := result.(bool) // true
//
// Compiled programs are cached per expression, so repeated evaluation of the
// fixed rule set costs a map lookup.
package cel
