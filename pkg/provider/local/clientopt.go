package local

import (
	"time"

	// Packages
	log "github.com/charmbracelet/log"
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-local"
	params "github.com/mutablelogic/go-llm-local/pkg/params"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt configures a client when it is created
type Opt func(*opts) error

type opts struct {
	endpoint     string
	token        string
	proxy        *string
	params       params.Params
	chat         []string
	completion   []string
	requireToken bool
	timeout      time.Duration
	clientOpts   []client.ClientOpt
	logger       *log.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	self := &opts{
		endpoint:   DefaultEndpoint,
		params:     params.Defaults(),
		chat:       DefaultChatModels,
		completion: DefaultCompletionModels,
		timeout:    DefaultTimeout,
	}
	for _, fn := range o {
		if err := fn(self); err != nil {
			return nil, err
		}
	}

	// Fill in the stop sequence and token limit when not set
	if len(self.params.Stop) == 0 {
		self.params.Stop = []string{DefaultStop}
	}
	if self.params.MaxTokens == 0 {
		self.params.MaxTokens = DefaultMaxTokens
	}
	if self.logger == nil {
		self.logger = log.Default()
	}

	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptEndpoint sets the base URL of the server, including any version path
func OptEndpoint(value string) Opt {
	return func(o *opts) error {
		if value != "" {
			o.endpoint = value
		}
		return nil
	}
}

// OptToken sets the API token. An empty token means no Authorization header
// is sent, which is what most local servers expect.
func OptToken(value string) Opt {
	return func(o *opts) error {
		o.token = value
		return nil
	}
}

// OptRequireToken makes an empty API token an error
func OptRequireToken() Opt {
	return func(o *opts) error {
		o.requireToken = true
		return nil
	}
}

// OptStop sets the stop sequence. An empty value keeps the default.
func OptStop(value string) Opt {
	return func(o *opts) error {
		if value != "" {
			o.params.Stop = []string{value}
		}
		return nil
	}
}

// OptMaxTokens sets the token limit for each response. Zero keeps the default.
func OptMaxTokens(value uint) Opt {
	return func(o *opts) error {
		if value > 0 {
			o.params.MaxTokens = value
		}
		return nil
	}
}

// OptProxy sets the outbound proxy URL. An empty value disables the proxy,
// including any proxy set in the environment.
func OptProxy(value string) Opt {
	return func(o *opts) error {
		o.proxy = &value
		return nil
	}
}

// OptChatModels replaces the models served from the chat endpoint
func OptChatModels(value ...string) Opt {
	return func(o *opts) error {
		o.chat = value
		return nil
	}
}

// OptCompletionModels replaces the models served from the completions endpoint
func OptCompletionModels(value ...string) Opt {
	return func(o *opts) error {
		o.completion = value
		return nil
	}
}

// OptParam sets a default request parameter by name, for example
// "temperature" or "presence_penalty"
func OptParam(key string, value any) Opt {
	return func(o *opts) error {
		return o.params.Set(key, value)
	}
}

// OptParams sets several default request parameters
func OptParams(values map[string]any) Opt {
	return func(o *opts) error {
		return o.params.SetAll(values)
	}
}

// OptTimeout sets the timeout for each request
func OptTimeout(value time.Duration) Opt {
	return func(o *opts) error {
		if value < 0 {
			return llm.ErrBadParameter.With("timeout must not be negative")
		}
		if value > 0 {
			o.timeout = value
		}
		return nil
	}
}

// OptClient appends options for the underlying HTTP client, such as
// client.OptTrace or client.OptTracer
func OptClient(value ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.clientOpts = append(o.clientOpts, value...)
		return nil
	}
}

// OptLogger sets the logger
func OptLogger(value *log.Logger) Opt {
	return func(o *opts) error {
		o.logger = value
		return nil
	}
}
