package local

import (
	"context"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-local"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the models loaded by the server
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	return c.ModelCache.ListModels(ctx, func(ctx context.Context) ([]schema.Model, error) {
		var response listModelsResponse
		if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models")); err != nil {
			return nil, err
		}

		result := make([]schema.Model, 0, len(response.Data))
		for _, m := range response.Data {
			result = append(result, c.toSchema(m))
		}
		return result, nil
	})
}

// GetModel returns a model by name
func (c *Client) GetModel(ctx context.Context, name string) (*schema.Model, error) {
	return c.ModelCache.GetModel(ctx, name, func(ctx context.Context, name string) (*schema.Model, error) {
		// Local servers don't all implement GET /models/{id}, so list and find
		models, err := c.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range models {
			if m.Name == name {
				return types.Ptr(m), nil
			}
		}
		return nil, llm.ErrNotFound.Withf("model %q", name)
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts a model entry. The endpoint style is recorded in the
// metadata when the model is one this client can serve.
func (c *Client) toSchema(m modelEntry) schema.Model {
	model := schema.Model{
		Name:    m.Id,
		OwnedBy: m.OwnedBy,
	}
	if model.OwnedBy == "" {
		model.OwnedBy = schema.Local
	}
	if m.Created > 0 {
		model.Created = time.Unix(m.Created, 0)
	}
	if kind, err := Classify(m.Id, c.chat, c.completion); err == nil {
		model.Meta = map[string]any{"kind": kind.String()}
	}
	return model
}
