package llm

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps basic LLM client methods
type Client interface {
	// Return the provider name
	Name() string

	// ListModels returns the list of available models
	ListModels(ctx context.Context) ([]schema.Model, error)

	// GetModel returns the model with the given name
	GetModel(ctx context.Context, name string) (*schema.Model, error)
}

// Generator is an interface for generating a response from a backend
// which is already bound to a model
type Generator interface {
	// WithoutSession sends a single message and returns the response (stateless)
	WithoutSession(ctx context.Context, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)

	// WithSession sends a message within a conversation and returns the response.
	// Both the message and the response are appended to the conversation.
	WithSession(ctx context.Context, conversation *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)
}
