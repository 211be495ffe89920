package local

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the settings for a client, as loaded from a YAML file
type Config struct {
	Endpoint         string         `yaml:"endpoint"`
	Token            string         `yaml:"token,omitempty"`
	RequireToken     bool           `yaml:"require_token,omitempty"`
	Model            string         `yaml:"model"`
	Stop             string         `yaml:"stop,omitempty"`
	MaxTokens        uint           `yaml:"max_tokens,omitempty"`
	Proxy            string         `yaml:"proxy,omitempty"`
	Timeout          time.Duration  `yaml:"timeout,omitempty"`
	ChatModels       []string       `yaml:"chat_models,omitempty"`
	CompletionModels []string       `yaml:"completion_models,omitempty"`
	Params           map[string]any `yaml:"params,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	envEndpoint = "OPENAI_API_BASE"
	envToken    = "OPENAI_API_KEY"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultConfig returns the default settings, with the endpoint and token
// taken from the environment when set. The proxy environment variable is
// read when the client is created.
func DefaultConfig() Config {
	config := Config{
		Endpoint: DefaultEndpoint,
		Model:    DefaultModel,
		Stop:     DefaultStop,
		Timeout:  DefaultTimeout,

		MaxTokens: DefaultMaxTokens,
	}
	if v := strings.TrimSpace(os.Getenv(envEndpoint)); v != "" {
		config.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(envToken)); v != "" {
		config.Token = v
	}
	return config
}

// LoadConfig reads settings from a YAML file on top of the defaults.
// Unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	r, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer r.Close()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, llm.ErrBadParameter.Withf("%s: %v", path, err)
	}

	return config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Opts returns the client options for the settings
func (c Config) Opts() []Opt {
	opts := []Opt{
		OptEndpoint(c.Endpoint),
		OptToken(c.Token),
		OptStop(c.Stop),
		OptMaxTokens(c.MaxTokens),
		OptTimeout(c.Timeout),
	}
	if c.RequireToken {
		opts = append(opts, OptRequireToken())
	}
	if c.Proxy != "" {
		opts = append(opts, OptProxy(c.Proxy))
	}
	if len(c.ChatModels) > 0 {
		opts = append(opts, OptChatModels(c.ChatModels...))
	}
	if len(c.CompletionModels) > 0 {
		opts = append(opts, OptCompletionModels(c.CompletionModels...))
	}
	if len(c.Params) > 0 {
		opts = append(opts, OptParams(c.Params))
	}
	return opts
}

// New creates a client for the configured model. Extra options are applied
// after the configured ones.
func (c Config) New(extra ...Opt) (*Client, error) {
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	return New(model, append(c.Opts(), extra...)...)
}
