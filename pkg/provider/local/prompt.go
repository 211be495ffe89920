package local

import (
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	instructionHeader = "### Instruction:"
	responseHeader    = "### Response:"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// renderPrompt flattens a conversation into an instruction prompt for the
// completions endpoint. The prompt always ends with an open response
// section for the model to fill in.
func renderPrompt(system string, conversation schema.Conversation) string {
	var b strings.Builder
	if system = strings.TrimSpace(system); system != "" {
		b.WriteString(system)
		b.WriteString("\n\n")
	}
	for _, message := range conversation {
		text := strings.TrimSpace(message.Content)
		switch message.Role {
		case schema.RoleSystem:
			b.WriteString(text)
		case schema.RoleAssistant:
			b.WriteString(responseHeader + "\n" + text)
		default:
			b.WriteString(instructionHeader + "\n" + text)
		}
		b.WriteString("\n\n")
	}
	b.WriteString(responseHeader + "\n")
	return b.String()
}

// trimAtStop cuts text at the first stop sequence, for servers which
// return the stop sequence as part of the text
func trimAtStop(text string, stop []string) string {
	for _, s := range stop {
		if s == "" {
			continue
		}
		if i := strings.Index(text, s); i >= 0 {
			text = text[:i]
		}
	}
	return strings.TrimSpace(text)
}
