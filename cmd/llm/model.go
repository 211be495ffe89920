package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	table "github.com/mutablelogic/go-llm-local/pkg/ui/table"
	attribute "go.opentelemetry.io/otel/attribute"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelCommands struct {
	ListModels ListModelsCommand `cmd:"" name:"models" help:"List models loaded by the server." group:"MODEL"`
	GetModel   GetModelCommand   `cmd:"" name:"model" help:"Get a model." group:"MODEL"`
	Params     ParamsCommand     `cmd:"" name:"params" help:"Print the default request parameters." group:"MODEL"`
}

type ListModelsCommand struct{}

type GetModelCommand struct {
	Name    string `arg:"" name:"name" help:"Model name"`
	Default bool   `name:"default" help:"Save as the default model" optional:""`
}

type ParamsCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand",
		attribute.String("endpoint", client.Endpoint()),
	)
	defer func() { endSpan(err) }()

	models, err := client.ListModels(parent)
	if err != nil {
		return err
	}

	fmt.Println(table.Render(schema.ModelTable{
		Models:       models,
		CurrentModel: client.Model(),
	}, termWidth()))
	return nil
}

func (cmd *GetModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand",
		attribute.String("model", cmd.Name),
	)
	defer func() { endSpan(err) }()

	model, err := client.GetModel(parent, cmd.Name)
	if err != nil {
		return err
	}
	fmt.Println(model)

	// Save as default if requested
	if cmd.Default {
		if err := saveDefaultModel(client, ctx.defaults, model.Name); err != nil {
			return err
		}
		ctx.logger.Info("saved default", "model", model.Name)
	}
	return nil
}

func (cmd *ParamsCommand) Run(ctx *Globals) error {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(map[string]any{
		"endpoint": client.Endpoint(),
		"type":     client.Type(),
		"kind":     client.Kind().String(),
		"params":   client.DefaultParams(),
	})
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// saveDefaultModel stores the model as the default, provided a client could
// later be created with it
func saveDefaultModel(client *local.Client, defaults *Defaults, name string) error {
	if err := client.Supports(name); err != nil {
		return err
	}
	return defaults.Set(defaultModel, name)
}
