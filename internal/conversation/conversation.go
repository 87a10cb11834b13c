package conversation

import "fmt"

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Origin tags why a message entered the conversation.
type Origin string

const (
	// OriginQuery marks the user's original question.
	OriginQuery Origin = "query"

	// OriginVerdict marks the classifier's routing signal.
	OriginVerdict Origin = "verdict"

	// OriginAnswer marks the final assistant answer (research or refusal).
	OriginAnswer Origin = "answer"
)

// Message is a single conversation turn. Messages are treated as immutable
// once appended to a State.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Origin  Origin `json:"origin,omitempty"`
}

// State is the append-only conversation history of one request.
type State struct {
	messages []Message
}

// NewState creates a State seeded with a single user query message.
func NewState(query string) *State {
	return &State{
		messages: []Message{
			{
				Role:    RoleUser,
				Content: query,
				Origin:  OriginQuery,
			},
		},
	}
}

// Append adds a message to the end of the conversation.
func (s *State) Append(msg Message) {
	s.messages = append(s.messages, msg)
}

// Last returns the most recent message.
func (s *State) Last() (Message, error) {
	if len(s.messages) == 0 {
		return Message{}, fmt.Errorf("conversation is empty")
	}
	return s.messages[len(s.messages)-1], nil
}

// Query returns the original user query message, identified by its Origin
// tag rather than its position.
func (s *State) Query() (Message, error) {
	for _, msg := range s.messages {
		if msg.Origin == OriginQuery {
			return msg, nil
		}
	}
	return Message{}, fmt.Errorf("conversation has no query message")
}

// DropVerdicts removes verdict messages from the conversation. The verdict
// is a transient routing signal, not part of the final transcript; the
// pipeline drops it once the routing decision has consumed it.
func (s *State) DropVerdicts() {
	kept := s.messages[:0]
	for _, msg := range s.messages {
		if msg.Origin != OriginVerdict {
			kept = append(kept, msg)
		}
	}
	s.messages = kept
}

// Messages returns a copy of the conversation history in order.
func (s *State) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the conversation.
func (s *State) Len() int {
	return len(s.messages)
}
