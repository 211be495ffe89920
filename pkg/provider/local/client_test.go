package local_test

import (
	"errors"
	"testing"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	assert "github.com/stretchr/testify/assert"
)

func Test_client_001(t *testing.T) {
	// A chat model on the default loopback server
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New("local-model-chat", local.OptEndpoint("http://127.0.0.1:1234/v1"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.True(c.IsChat())
	assert.Equal(local.Chat, c.Kind())
	assert.Equal("local-model-chat", c.Model())
	assert.Equal("http://127.0.0.1:1234/v1", c.Endpoint())
	assert.Equal("### Instruction:", c.Stop())
	assert.Equal(uint(2048), c.MaxTokens())
	assert.Equal("openai", c.Type())
	assert.Equal("local", c.Name())
	assert.Nil(c.Proxy())
}

func Test_client_002(t *testing.T) {
	// Defaults apply when no options are given
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New(local.DefaultModel)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(local.DefaultEndpoint, c.Endpoint())
	assert.True(c.IsChat())
}

func Test_client_003(t *testing.T) {
	// Fine-tuned and completion models
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New("ft:local-model:abc123")
	if assert.NoError(err) {
		assert.Equal(local.Chat, c.Kind())
		assert.Equal("ft:local-model:abc123", c.Model())
	}

	c, err = local.New("local-completion-model")
	if assert.NoError(err) {
		assert.Equal(local.Completion, c.Kind())
		assert.False(c.IsChat())
	}

	c, err = local.New("ft:local-model-completion:xyz")
	if assert.NoError(err) {
		assert.Equal(local.Completion, c.Kind())
	}
}

func Test_client_004(t *testing.T) {
	// Unknown models fail with the name as given
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	for _, model := range []string{"gpt-4", "ft:gpt-4:abc", ""} {
		c, err := local.New(model)
		assert.Nil(c)
		assert.ErrorIs(err, llm.ErrUnsupportedModel)

		var target *llm.UnsupportedModelError
		if assert.True(errors.As(err, &target)) {
			assert.Equal(model, target.Model)
		}
	}
}

func Test_client_005(t *testing.T) {
	// Default parameters include the model and the parent defaults
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New("local-model")
	if !assert.NoError(err) {
		t.FailNow()
	}

	params := c.DefaultParams()
	assert.Equal("local-model", params["model"])
	assert.Equal(float64(0), params["temperature"])
	assert.Equal(float64(1), params["top_p"])
	assert.Equal(0.6, params["presence_penalty"])
	assert.Equal(float64(0), params["frequency_penalty"])
	assert.Equal(uint(1), params["n"])
	assert.Equal([]string{"### Instruction:"}, params["stop"])
	assert.Equal(uint(2048), params["max_tokens"])

	// Each call returns a fresh map
	params["model"] = "other"
	delete(params, "temperature")
	params = c.DefaultParams()
	assert.Equal("local-model", params["model"])
	assert.Contains(params, "temperature")
}

func Test_client_006(t *testing.T) {
	// Stop, token limit and parameter overrides
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New("local-model",
		local.OptStop("</s>"),
		local.OptMaxTokens(256),
		local.OptParam("temperature", 0.5),
		local.OptParams(map[string]any{"seed": 7, "presence_penalty": 0}),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("</s>", c.Stop())
	assert.Equal(uint(256), c.MaxTokens())

	params := c.DefaultParams()
	assert.Equal(0.5, params["temperature"])
	assert.Equal(7, params["seed"])
	assert.Equal(float64(0), params["presence_penalty"])

	// Zero values keep the defaults
	c, err = local.New("local-model", local.OptStop(""), local.OptMaxTokens(0))
	if assert.NoError(err) {
		assert.Equal(local.DefaultStop, c.Stop())
		assert.Equal(uint(local.DefaultMaxTokens), c.MaxTokens())
	}
}

func Test_client_007(t *testing.T) {
	// Invalid options
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	_, err := local.New("local-model", local.OptParam("temperature", 3))
	assert.ErrorIs(err, llm.ErrBadParameter)

	_, err = local.New("local-model", local.OptParam("unknown", 1))
	assert.ErrorIs(err, llm.ErrBadParameter)

	_, err = local.New("local-model", local.OptTimeout(-time.Second))
	assert.ErrorIs(err, llm.ErrBadParameter)

	for _, endpoint := range []string{"ftp://127.0.0.1/v1", "127.0.0.1:1234", "http:///v1"} {
		_, err = local.New("local-model", local.OptEndpoint(endpoint))
		assert.ErrorIs(err, llm.ErrBadParameter, endpoint)
	}
}

func Test_client_008(t *testing.T) {
	// Token handling
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	// No token is fine unless one is required
	_, err := local.New("local-model")
	assert.NoError(err)
	_, err = local.New("local-model", local.OptRequireToken())
	assert.ErrorIs(err, llm.ErrAPIKeyNotFound)

	// The placeholder token counts as no token
	_, err = local.New("local-model", local.OptToken("OPENAI_API_TOKEN"), local.OptRequireToken())
	assert.ErrorIs(err, llm.ErrAPIKeyNotFound)
	_, err = local.New("local-model", local.OptToken("  "), local.OptRequireToken())
	assert.ErrorIs(err, llm.ErrAPIKeyNotFound)

	_, err = local.New("local-model", local.OptToken("secret"), local.OptRequireToken())
	assert.NoError(err)
}

func Test_client_009(t *testing.T) {
	// Proxy from the environment, overridden by the option
	assert := assert.New(t)
	t.Setenv("OPENAI_PROXY", "http://proxy.example.com:3128")

	c, err := local.New("local-model")
	if assert.NoError(err) && assert.NotNil(c.Proxy()) {
		assert.Equal("http://proxy.example.com:3128", c.Proxy().String())
	}

	c, err = local.New("local-model", local.OptProxy("socks5://127.0.0.1:1080"))
	if assert.NoError(err) && assert.NotNil(c.Proxy()) {
		assert.Equal("socks5", c.Proxy().Scheme)
	}

	// An empty option disables the environment proxy
	c, err = local.New("local-model", local.OptProxy(""))
	if assert.NoError(err) {
		assert.Nil(c.Proxy())
	}

	_, err = local.New("local-model", local.OptProxy("ftp://proxy.example.com"))
	assert.ErrorIs(err, llm.ErrBadParameter)

	t.Setenv("OPENAI_PROXY", "http://")
	_, err = local.New("local-model")
	assert.ErrorIs(err, llm.ErrBadParameter)
}

func Test_client_010(t *testing.T) {
	// Replacement model sets must not overlap
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	_, err := local.New("a", local.OptChatModels("a", "b"), local.OptCompletionModels("b"))
	assert.ErrorIs(err, llm.ErrBadParameter)

	c, err := local.New("c", local.OptChatModels("a", "b"), local.OptCompletionModels("c"))
	if assert.NoError(err) {
		assert.Equal(local.Completion, c.Kind())
	}

	// The default chat model is no longer known
	_, err = local.New("local-model", local.OptChatModels("a"))
	assert.ErrorIs(err, llm.ErrUnsupportedModel)
}

func Test_client_011(t *testing.T) {
	// Supports classifies against the client's own model sets
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	c, err := local.New("local-model")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(c.Supports("local-model-chat"))
	assert.NoError(c.Supports("local-completion-model"))
	assert.NoError(c.Supports("ft:local-model:abc123"))

	err = c.Supports("llama-3-8b-instruct")
	assert.ErrorIs(err, llm.ErrUnsupportedModel)
	var unsupported *llm.UnsupportedModelError
	if assert.True(errors.As(err, &unsupported)) {
		assert.Equal("llama-3-8b-instruct", unsupported.Model)
	}

	c, err = local.New("a", local.OptChatModels("a"), local.OptCompletionModels("b"))
	if assert.NoError(err) {
		assert.NoError(c.Supports("b"))
		assert.ErrorIs(c.Supports("local-model"), llm.ErrUnsupportedModel)
	}
}
