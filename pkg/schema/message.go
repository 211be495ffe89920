package schema

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message represents a message in a conversation with an LLM
type Message struct {
	Role    string         `json:"role"`             // "user", "assistant", "system"
	Content string         `json:"content"`          // Text content
	Tokens  uint           `json:"tokens,omitempty"` // Number of tokens
	Result  ResultType     `json:"result"`           // Why generation stopped
	Meta    map[string]any `json:"meta,omitzero"`    // Provider-specific metadata
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage returns a message with the given role and text content. The
// text is trimmed of surrounding whitespace.
func NewMessage(role, text string) *Message {
	return types.Ptr(Message{
		Role:    role,
		Content: strings.TrimSpace(text),
	})
}

// NewUserMessage returns a message from the user
func NewUserMessage(text string) *Message {
	return NewMessage(RoleUser, text)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the text content of the message
func (m Message) Text() string {
	return m.Content
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return Stringify(m)
}
