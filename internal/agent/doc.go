// Package agent implements the research reasoning loop.
//
// The agent speaks the textual ReAct protocol with the LLM: each step renders
// the prompt with the accumulated scratchpad, reads the model's reply, and
// either returns the final answer, executes the requested web search and
// records its observation, or (for malformed replies) records a corrective
// observation and continues. The loop is bounded; exhausting the step budget
// without a final answer is an error.
//
// Example usage:
//
//	a := agent.New(llmClient, engine, renderer, logger, agent.Options{
//	    MaxSteps:          8,
//	    MaxSearchResults:  3,
//	    HandleParseErrors: true,
//	})
//	answer, err := a.Run(ctx, "How do I boil an egg?")
package agent
