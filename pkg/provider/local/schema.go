package local

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - OpenAI-compatible wire format
//
// Reference: https://platform.openai.com/docs/api-reference/chat
//            https://platform.openai.com/docs/api-reference/completions

///////////////////////////////////////////////////////////////////////////////
// REQUEST

// sampling holds the parameters common to both endpoints
type sampling struct {
	Model            string   `json:"model"`
	Temperature      float64  `json:"temperature"`
	TopP             float64  `json:"top_p"`
	FrequencyPenalty float64  `json:"frequency_penalty"`
	PresencePenalty  float64  `json:"presence_penalty"`
	N                uint     `json:"n,omitempty"`
	Seed             *int     `json:"seed,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	MaxTokens        uint     `json:"max_tokens,omitempty"`
	User             string   `json:"user,omitempty"`
}

// chatCompletionRequest is the request body for POST /chat/completions
type chatCompletionRequest struct {
	sampling
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// completionRequest is the request body for POST /completions
type completionRequest struct {
	sampling
	Prompt string `json:"prompt"`
	BestOf uint   `json:"best_of,omitempty"`
}

// chatMessage is a single turn in a conversation
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat constrains chat output to a JSON schema
type responseFormat struct {
	Type       string      `json:"type"` // always "json_schema"
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

type jsonSchema struct {
	Name   string             `json:"name"`
	Schema *jsonschema.Schema `json:"schema"`
	Strict bool               `json:"strict,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE

// chatCompletionResponse is the response body from POST /chat/completions
type chatCompletionResponse struct {
	Id      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   usage        `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// completionResponse is the response body from POST /completions
type completionResponse struct {
	Id      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
	Usage   usage              `json:"usage"`
}

type completionChoice struct {
	Index        int    `json:"index"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type usage struct {
	PromptTokens     uint `json:"prompt_tokens"`
	CompletionTokens uint `json:"completion_tokens"`
	TotalTokens      uint `json:"total_tokens"`
}

///////////////////////////////////////////////////////////////////////////////
// MODELS

// listModelsResponse is the response from GET /models
type listModelsResponse struct {
	Object string       `json:"object"`
	Data   []modelEntry `json:"data"`
}

type modelEntry struct {
	Id      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	responseFormatJSONSchema = "json_schema"
	responseSchemaName       = "response"
)

// Finish reasons
const (
	finishReasonStop          = "stop"
	finishReasonLength        = "length"
	finishReasonContentFilter = "content_filter"
)
