package schema_test

import (
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func TestConversationAppend(t *testing.T) {
	assert := assert.New(t)

	var conversation schema.Conversation
	conversation.Append(*schema.NewUserMessage("Hello"))
	conversation.Append(*schema.NewMessage(schema.RoleAssistant, "Hi there!"))

	assert.Len(conversation, 2)
	assert.Equal(schema.RoleUser, conversation[0].Role)
	assert.Equal(schema.RoleAssistant, conversation.Last().Role)
	assert.Equal("Hi there!", conversation.Last().Text())
}

func TestConversationEmpty(t *testing.T) {
	assert := assert.New(t)

	var conversation schema.Conversation
	assert.Equal(uint(0), conversation.Tokens())
	assert.Nil(conversation.Last())
}

func TestConversationAppendWithOutput(t *testing.T) {
	assert := assert.New(t)

	var conversation schema.Conversation
	conversation.Append(*schema.NewUserMessage("Hello"))

	// The backend reports 12 prompt tokens and 4 completion tokens
	conversation.AppendWithOutput(*schema.NewMessage(schema.RoleAssistant, "Hi"), 12, 4)
	assert.Len(conversation, 2)
	assert.Equal(uint(12), conversation[0].Tokens)
	assert.Equal(uint(4), conversation[1].Tokens)
	assert.Equal(uint(16), conversation.Tokens())

	// The next turn only attributes the new prompt tokens to the new message
	conversation.Append(*schema.NewUserMessage("And again"))
	conversation.AppendWithOutput(*schema.NewMessage(schema.RoleAssistant, "Hi again"), 25, 5)
	assert.Equal(uint(9), conversation[2].Tokens)
	assert.Equal(uint(5), conversation[3].Tokens)
	assert.Equal(uint(30), conversation.Tokens())
}

func TestNewMessageTrims(t *testing.T) {
	assert := assert.New(t)
	msg := schema.NewUserMessage("  what is the time?\n")
	assert.Equal("what is the time?", msg.Text())
	assert.Contains(msg.String(), `"role": "user"`)
}
