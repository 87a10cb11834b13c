// Package graph composes the classify-then-answer pipeline as a small
// directed flow.
//
// The shape is fixed: START -> classifier -> (router) -> researcher or
// refusal -> END. A run makes a single pass; no node executes twice. Nodes
// append to the request's conversation state and any node error aborts the
// run and propagates to the caller.
//
// Example usage:
//
//	g := graph.New(logger)
//	g.AddNode(graph.NewClassifier(llmClient, logger))
//	g.AddNode(graph.NewResearcher(researchAgent, logger))
//	g.AddNode(graph.Refusal{})
//	g.SetEntry(graph.NodeClassifier)
//	g.AddConditionalEdge(graph.NodeClassifier, verdictRouter)
//	g.AddEdge(graph.NodeResearcher, graph.End)
//	g.AddEdge(graph.NodeRefusal, graph.End)
//
//	state := conversation.NewState(query)
//	err := g.Run(ctx, state)
package graph
