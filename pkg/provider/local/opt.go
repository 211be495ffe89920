package local

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	llm "github.com/mutablelogic/go-llm-local"
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// These override the client defaults for a single request.

// WithModel sends the request for a different model on the same endpoint
func WithModel(value string) opt.Opt {
	if value == "" {
		return opt.Error(llm.ErrBadParameter.With("model is required"))
	}
	return opt.SetString(opt.ModelKey, value)
}

// WithSystemPrompt sets the system prompt for the request
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithTemperature sets the temperature for the request (0.0 to 2.0)
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(llm.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0)
func WithTopP(value float64) opt.Opt {
	if value < 0 || value > 1 {
		return opt.Error(llm.ErrBadParameter.With("top_p must be between 0.0 and 1.0"))
	}
	return opt.SetFloat64(opt.TopPKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(llm.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return opt.SetUint(opt.MaxTokensKey, value)
}

// WithStopSequences replaces the stop sequences for the request
func WithStopSequences(values ...string) opt.Opt {
	if len(values) == 0 {
		return opt.Error(llm.ErrBadParameter.With("at least one stop sequence is required"))
	}
	return opt.AddString(opt.StopSequencesKey, values...)
}

// WithSeed sets the random seed for deterministic generation
func WithSeed(value uint) opt.Opt {
	return opt.SetUint(opt.SeedKey, value)
}

// WithPresencePenalty sets the presence penalty (-2.0 to 2.0)
func WithPresencePenalty(value float64) opt.Opt {
	if value < -2 || value > 2 {
		return opt.Error(llm.ErrBadParameter.With("presence_penalty must be between -2.0 and 2.0"))
	}
	return opt.SetFloat64(opt.PresencePenaltyKey, value)
}

// WithFrequencyPenalty sets the frequency penalty (-2.0 to 2.0)
func WithFrequencyPenalty(value float64) opt.Opt {
	if value < -2 || value > 2 {
		return opt.Error(llm.ErrBadParameter.With("frequency_penalty must be between -2.0 and 2.0"))
	}
	return opt.SetFloat64(opt.FrequencyPenaltyKey, value)
}

// WithUser sets an identifier for the end user
func WithUser(value string) opt.Opt {
	return opt.SetString(opt.UserKey, value)
}

// WithJSONOutput constrains the model to produce JSON conforming to the
// given schema. Only chat models support this.
func WithJSONOutput(schema *jsonschema.Schema) opt.Opt {
	if schema == nil {
		return opt.Error(llm.ErrBadParameter.With("schema is required for JSON output"))
	}
	return opt.SetAny(opt.JSONSchemaKey, schema)
}
