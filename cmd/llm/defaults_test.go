package main

import (
	"path/filepath"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	assert "github.com/stretchr/testify/assert"
)

func Test_defaults_001(t *testing.T) {
	// Values survive a reload and empty values are removed
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "llm", "defaults.json")

	d, err := NewDefaults(path)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Empty(d.GetString(defaultModel))
	assert.NoError(d.Set(defaultModel, "local-model-chat"))

	d, err = NewDefaults(path)
	if assert.NoError(err) {
		assert.Equal("local-model-chat", d.GetString(defaultModel))
	}

	assert.NoError(d.Set(defaultModel, ""))
	d, err = NewDefaults(path)
	if assert.NoError(err) {
		assert.Empty(d.GetString(defaultModel))
	}
}

func Test_defaults_002(t *testing.T) {
	// Flags take precedence over saved values
	assert := assert.New(t)
	t.Setenv("OPENAI_API_BASE", "")
	t.Setenv("OPENAI_API_KEY", "")

	d, err := NewDefaults(filepath.Join(t.TempDir(), "defaults.json"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(d.Set(defaultModel, "local-completion-model"))

	g := &Globals{defaults: d}
	config, err := g.config()
	if assert.NoError(err) {
		assert.Equal("local-completion-model", config.Model)
	}

	g.Model = "local-model"
	g.Endpoint = "http://10.0.0.1:1234/v1"
	config, err = g.config()
	if assert.NoError(err) {
		assert.Equal("local-model", config.Model)
		assert.Equal("http://10.0.0.1:1234/v1", config.Endpoint)
	}
}

func Test_defaults_003(t *testing.T) {
	// A model the client cannot serve is never saved as the default
	t.Setenv("OPENAI_PROXY", "")
	assert := assert.New(t)

	d, err := NewDefaults(filepath.Join(t.TempDir(), "defaults.json"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	c, err := local.New("local-model")
	if !assert.NoError(err) {
		t.FailNow()
	}

	assert.ErrorIs(saveDefaultModel(c, d, "llama-3-8b-instruct"), llm.ErrUnsupportedModel)
	assert.Empty(d.GetString(defaultModel))

	assert.NoError(saveDefaultModel(c, d, "local-completion-model"))
	assert.Equal("local-completion-model", d.GetString(defaultModel))

	// The saved value still builds a client
	g := &Globals{defaults: d}
	config, err := g.config()
	if assert.NoError(err) {
		assert.Equal("local-completion-model", config.Model)
	}
	_, err = local.New(config.Model)
	assert.NoError(err)
}
