package local_test

import (
	"errors"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	assert "github.com/stretchr/testify/assert"
)

func Test_selector_001(t *testing.T) {
	// Fine-tune prefix is stripped to the base model
	assert := assert.New(t)
	assert.Equal("local-model", local.EffectiveName("ft:local-model:abc123"))
	assert.Equal("local-model", local.EffectiveName("ft:local-model"))
	assert.Equal("local-model", local.EffectiveName("local-model"))
	assert.Equal("", local.EffectiveName("ft:"))
}

func Test_selector_002(t *testing.T) {
	// Every default chat model is classified as chat
	assert := assert.New(t)
	for _, model := range local.DefaultChatModels {
		kind, err := local.Classify(model, local.DefaultChatModels, local.DefaultCompletionModels)
		assert.NoError(err)
		assert.Equal(local.Chat, kind, model)
	}
}

func Test_selector_003(t *testing.T) {
	// Every default completion model is classified as completion
	assert := assert.New(t)
	for _, model := range local.DefaultCompletionModels {
		kind, err := local.Classify(model, local.DefaultChatModels, local.DefaultCompletionModels)
		assert.NoError(err)
		assert.Equal(local.Completion, kind, model)
	}
}

func Test_selector_004(t *testing.T) {
	// Unknown models fail with the name as given
	assert := assert.New(t)
	for _, model := range []string{"gpt-4", "", "ft:gpt-4:abc", "LOCAL-MODEL"} {
		_, err := local.Classify(model, local.DefaultChatModels, local.DefaultCompletionModels)
		assert.ErrorIs(err, llm.ErrUnsupportedModel)

		var target *llm.UnsupportedModelError
		if assert.True(errors.As(err, &target)) {
			assert.Equal(model, target.Model)
		}
	}
}

func Test_selector_005(t *testing.T) {
	// Fine-tuned models are classified by their base model
	assert := assert.New(t)
	kind, err := local.Classify("ft:local-model:abc123", local.DefaultChatModels, local.DefaultCompletionModels)
	assert.NoError(err)
	assert.Equal(local.Chat, kind)

	kind, err = local.Classify("ft:local-completion-model:xyz", local.DefaultChatModels, local.DefaultCompletionModels)
	assert.NoError(err)
	assert.Equal(local.Completion, kind)
}

func Test_selector_006(t *testing.T) {
	// Chat takes precedence when lists overlap
	assert := assert.New(t)
	kind, err := local.Classify("both", []string{"both"}, []string{"both"})
	assert.NoError(err)
	assert.Equal(local.Chat, kind)
	assert.Equal("chat", kind.String())
	assert.Equal("completion", local.Completion.String())
	assert.Equal("unknown", local.Kind(0).String())
}
