// Package llm defines the chat-completion client used by the classifier and
// the research agent.
//
// Client is a narrow port so tests can substitute a scripted fake; the
// production implementation wraps the OpenAI chat completions API. Clients
// hold only read-only configuration and are safe to share across requests.
package llm
