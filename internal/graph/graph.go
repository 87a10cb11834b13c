package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/router"
)

// End is the terminal pseudo-node of every pipeline run
const End = "END"

// Node names of the cooking pipeline
const (
	NodeClassifier = "classifier"
	NodeResearcher = "researcher"
	NodeRefusal    = "refusal"
)

// Node is a single pipeline step operating on the conversation state
type Node interface {
	Name() string
	Run(ctx context.Context, state *conversation.State) error
}

// Graph is a fixed directed flow of nodes with at most one conditional
// branch point per node. It holds no per-request state and is safe to share
// across requests.
type Graph struct {
	nodes       map[string]Node
	edges       map[string]string
	conditional map[string]*router.Router
	entry       string
	logger      *zap.Logger
}

// New creates an empty graph
func New(logger *zap.Logger) *Graph {
	return &Graph{
		nodes:       make(map[string]Node),
		edges:       make(map[string]string),
		conditional: make(map[string]*router.Router),
		logger:      logger,
	}
}

// AddNode registers a node under its own name
func (g *Graph) AddNode(n Node) {
	g.nodes[n.Name()] = n
}

// AddEdge registers an unconditional transition
func (g *Graph) AddEdge(from, to string) {
	g.edges[from] = to
}

// AddConditionalEdge registers a router deciding the successor of a node
func (g *Graph) AddConditionalEdge(from string, r *router.Router) {
	g.conditional[from] = r
}

// SetEntry sets the node executed first
func (g *Graph) SetEntry(name string) {
	g.entry = name
}

// Validate checks that the graph is runnable: an entry exists and every
// transition points at a registered node or End.
func (g *Graph) Validate() error {
	if g.entry == "" {
		return fmt.Errorf("graph has no entry node")
	}
	if _, ok := g.nodes[g.entry]; !ok {
		return fmt.Errorf("entry node %q is not registered", g.entry)
	}
	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("edge source %q is not registered", from)
		}
		if to != End {
			if _, ok := g.nodes[to]; !ok {
				return fmt.Errorf("edge target %q is not registered", to)
			}
		}
	}
	for from := range g.conditional {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("conditional edge source %q is not registered", from)
		}
	}
	return nil
}

// Run executes the pipeline on the given state. Exactly one pass is made:
// a node reached twice means a miswired graph and aborts the run.
func (g *Graph) Run(ctx context.Context, state *conversation.State) error {
	current := g.entry
	visited := make(map[string]bool)

	for current != End {
		if visited[current] {
			return fmt.Errorf("node %q reached twice, graph has a cycle", current)
		}
		visited[current] = true

		node, ok := g.nodes[current]
		if !ok {
			return fmt.Errorf("unknown node %q", current)
		}

		g.logger.Debug("executing node", zap.String("node", current))

		if err := node.Run(ctx, state); err != nil {
			return fmt.Errorf("node %q failed: %w", current, err)
		}

		next, err := g.next(ctx, current, state)
		if err != nil {
			return err
		}
		current = next
	}

	return nil
}

// next resolves the successor of a node after it has run
func (g *Graph) next(ctx context.Context, current string, state *conversation.State) (string, error) {
	if r, ok := g.conditional[current]; ok {
		decision := r.Route(ctx, state)
		g.logger.Info("routing decision",
			zap.String("node", current),
			zap.String("target", decision.Target),
			zap.String("path", decision.PathTaken),
			zap.String("reasoning", decision.Reasoning),
		)
		// The verdict has served its purpose; the final transcript is
		// the query plus one answer
		state.DropVerdicts()
		return decision.Target, nil
	}

	if to, ok := g.edges[current]; ok {
		return to, nil
	}

	return "", fmt.Errorf("node %q has no outgoing edge", current)
}
