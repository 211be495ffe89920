package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_message_001(t *testing.T) {
	// Text is trimmed and the role is set
	assert := assert.New(t)
	m := schema.NewUserMessage("  hello \n")
	assert.Equal(schema.RoleUser, m.Role)
	assert.Equal("hello", m.Text())
	assert.Equal(schema.ResultStop, m.Result)
}

func Test_message_002(t *testing.T) {
	// String is the JSON form, with the result by name
	assert := assert.New(t)
	m := schema.NewMessage(schema.RoleAssistant, "hi")
	m.Result = schema.ResultMaxTokens

	var parsed map[string]any
	assert.NoError(json.Unmarshal([]byte(m.String()), &parsed))
	assert.Equal("assistant", parsed["role"])
	assert.Equal("hi", parsed["content"])
	assert.Equal("max_tokens", parsed["result"])
	assert.NotContains(parsed, "meta")
	assert.NotContains(parsed, "tokens")
}
