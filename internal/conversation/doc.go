// Package conversation defines the message types threaded through the
// cooking-assistant pipeline.
//
// A State is an append-only sequence of Messages built up during a single
// request. Every message carries an Origin tag so downstream steps can find
// the original user query without relying on list positions:
//
//	state := conversation.NewState("How do I boil an egg?")
//	state.Append(conversation.Message{
//	    Role:    conversation.RoleAssistant,
//	    Content: "relevant",
//	    Origin:  conversation.OriginVerdict,
//	})
//	query, _ := state.Query() // the user message, regardless of what
//	                          // was appended after it
//
// States are never shared between requests and are not safe for concurrent
// use.
package conversation
