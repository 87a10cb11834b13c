package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aescanero/cooking-assistant/internal/conversation"
	"github.com/aescanero/cooking-assistant/internal/llm"
	"github.com/aescanero/cooking-assistant/internal/prompt"
	"github.com/aescanero/cooking-assistant/internal/search"
)

const (
	// SearchToolName is the single tool exposed to the model
	SearchToolName = "web_search"

	searchToolDescription = "web_search: searches the web for current information. " +
		"The input is a plain-text search query."

	// parseErrorObservation is fed back to the model when its reply
	// matches neither the action format nor a final answer
	parseErrorObservation = "Invalid format. Reply either with " +
		"'Action: <tool>' and 'Action Input: <input>' or with 'Final Answer: <answer>'."
)

// Options configures the research agent
type Options struct {
	// MaxSteps bounds the number of reasoning iterations
	MaxSteps int

	// MaxSearchResults caps the snippets returned per search call
	MaxSearchResults int

	// HandleParseErrors keeps the loop running on malformed model
	// replies instead of failing the step
	HandleParseErrors bool
}

// Agent runs the ReAct reasoning loop over an LLM and a search engine
type Agent struct {
	llmClient llm.Client
	engine    search.Engine
	renderer  *prompt.Renderer
	logger    *zap.Logger
	opts      Options
}

// New creates a new research agent
func New(llmClient llm.Client, engine search.Engine, renderer *prompt.Renderer, logger *zap.Logger, opts Options) *Agent {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = 8
	}
	if opts.MaxSearchResults <= 0 {
		opts.MaxSearchResults = search.DefaultMaxResults
	}

	return &Agent{
		llmClient: llmClient,
		engine:    engine,
		renderer:  renderer,
		logger:    logger,
		opts:      opts,
	}
}

// Run answers the question, issuing zero or more search calls along the way.
// LLM and search failures propagate; malformed intermediate replies do not
// when HandleParseErrors is set.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	var scratchpad strings.Builder

	for step := 0; step < a.opts.MaxSteps; step++ {
		promptText, err := a.renderer.Render(prompt.ReactTemplate, map[string]interface{}{
			"tools":      searchToolDescription,
			"toolNames":  SearchToolName,
			"input":      question,
			"scratchpad": scratchpad.String(),
		})
		if err != nil {
			return "", fmt.Errorf("failed to render prompt: %w", err)
		}

		reply, err := a.llmClient.Complete(ctx, []conversation.Message{
			{Role: conversation.RoleUser, Content: promptText},
		})
		if err != nil {
			return "", fmt.Errorf("reasoning step failed: %w", err)
		}

		a.logger.Debug("agent step",
			zap.Int("step", step),
			zap.String("reply", reply),
		)

		if answer, ok := parseFinalAnswer(reply); ok {
			return answer, nil
		}

		action, input, ok := parseAction(reply)
		if !ok {
			if !a.opts.HandleParseErrors {
				return "", fmt.Errorf("malformed agent reply: %q", reply)
			}
			a.logger.Warn("malformed agent reply, continuing",
				zap.Int("step", step),
			)
			a.observe(&scratchpad, reply, parseErrorObservation)
			continue
		}

		observation, err := a.execute(ctx, action, input)
		if err != nil {
			return "", err
		}
		a.observe(&scratchpad, reply, observation)
	}

	return "", fmt.Errorf("agent exhausted %d steps without a final answer", a.opts.MaxSteps)
}

// execute runs the requested tool and formats its observation
func (a *Agent) execute(ctx context.Context, action, input string) (string, error) {
	if action != SearchToolName {
		// Unknown tool is a model mistake, not a provider failure
		return fmt.Sprintf("Unknown tool %q. Available tools: [%s].", action, SearchToolName), nil
	}

	results, err := a.engine.Search(ctx, input, a.opts.MaxSearchResults)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}

	return formatResults(input, results), nil
}

// observe appends a completed step to the scratchpad
func (a *Agent) observe(scratchpad *strings.Builder, reply, observation string) {
	scratchpad.WriteString(strings.TrimSpace(reply))
	scratchpad.WriteString("\nObservation: ")
	scratchpad.WriteString(observation)
	scratchpad.WriteString("\n")
}

// formatResults renders search results as an observation block
func formatResults(query string, results []search.Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.", query)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Search results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&out, "%d. %s (%s): %s\n", i+1, r.Title, r.URL, r.Content)
	}
	return out.String()
}

// parseFinalAnswer extracts the final answer if the reply contains one
func parseFinalAnswer(reply string) (string, bool) {
	const marker = "Final Answer:"
	idx := strings.Index(reply, marker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(reply[idx+len(marker):]), true
}

// parseAction extracts the tool name and input from a ReAct step
func parseAction(reply string) (action, input string, ok bool) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if rest, found := strings.CutPrefix(line, "Action:"); found && action == "" {
			action = strings.TrimSpace(rest)
		}
		if rest, found := strings.CutPrefix(line, "Action Input:"); found && input == "" {
			input = strings.TrimSpace(rest)
		}
	}

	if action == "" || input == "" {
		return "", "", false
	}
	return action, input, true
}
