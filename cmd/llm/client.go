package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	version "github.com/mutablelogic/go-llm-local/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a client configured from the configuration file, the saved
// defaults and the global flags, in increasing order of precedence
func (g *Globals) Client() (*local.Client, error) {
	config, err := g.config()
	if err != nil {
		return nil, err
	}

	// HTTP client options
	opts := []client.ClientOpt{
		client.OptUserAgent(version.UserAgent(g.name)),
	}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}

	return config.New(local.OptLogger(g.logger), local.OptClient(opts...))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) config() (local.Config, error) {
	config := local.DefaultConfig()
	if g.Config != "" {
		if c, err := local.LoadConfig(g.Config); err != nil {
			return config, err
		} else {
			config = c
		}
	}
	if model := g.defaults.GetString(defaultModel); model != "" {
		config.Model = model
	}

	// Flags
	if g.Endpoint != "" {
		config.Endpoint = g.Endpoint
	}
	if g.Token != "" {
		config.Token = g.Token
	}
	if g.Proxy != "" {
		config.Proxy = g.Proxy
	}
	if g.Model != "" {
		config.Model = g.Model
	}
	if g.Timeout > 0 {
		config.Timeout = g.Timeout
	}
	return config, nil
}
