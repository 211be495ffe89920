package local

import (
	"context"
	"fmt"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	uuid "github.com/google/uuid"
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-local"
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
	params "github.com/mutablelogic/go-llm-local/pkg/params"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE CHECK

var _ llm.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	requestIdHeader = "X-Request-Id"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (c *Client) WithoutSession(ctx context.Context, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if message == nil {
		return nil, llm.ErrBadParameter.With("message is required")
	}
	conversation := schema.Conversation{message}
	return c.generate(ctx, &conversation, opts...)
}

// WithSession sends a message within a conversation and returns the response.
// The message and the response are appended to the conversation.
func (c *Client) WithSession(ctx context.Context, conversation *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if conversation == nil {
		return nil, llm.ErrBadParameter.With("conversation is required")
	}
	if message == nil {
		return nil, llm.ErrBadParameter.With("message is required")
	}
	conversation.Append(*message)
	return c.generate(ctx, conversation, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate builds a request for the endpoint style of the client, sends it
// and appends the response to the conversation
func (c *Client) generate(ctx context.Context, conversation *schema.Conversation, opts ...opt.Opt) (*schema.Message, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Parameters for this request
	p, err := c.requestParams(options)
	if err != nil {
		return nil, err
	}
	model := c.model
	if options.Has(opt.ModelKey) {
		model = options.GetString(opt.ModelKey)
	}
	base := newSampling(model, p, options.GetString(opt.UserKey))
	system := options.GetString(opt.SystemPromptKey)

	// Send the request
	var message *schema.Message
	var tokens usage
	switch c.kind {
	case Chat:
		request := &chatCompletionRequest{
			sampling: base,
			Messages: chatMessages(system, *conversation),
		}
		if v := options.Get(opt.JSONSchemaKey); v != nil {
			s, ok := v.(*jsonschema.Schema)
			if !ok {
				return nil, llm.ErrBadParameter.With("json_schema must be a *jsonschema.Schema")
			}
			request.ResponseFormat = &responseFormat{
				Type:       responseFormatJSONSchema,
				JSONSchema: &jsonSchema{Name: responseSchemaName, Schema: s, Strict: true},
			}
		}
		var response chatCompletionResponse
		if err := c.submit(ctx, request, &response, "chat", "completions"); err != nil {
			return nil, err
		}
		if message, err = messageFromChat(&response); err != nil {
			return nil, err
		}
		tokens = response.Usage
	case Completion:
		if options.Has(opt.JSONSchemaKey) {
			return nil, llm.ErrNotImplemented.With("JSON output requires a chat model")
		}
		request := &completionRequest{
			sampling: base,
			Prompt:   renderPrompt(system, *conversation),
		}
		if p.BestOf > 1 {
			request.BestOf = p.BestOf
		}
		var response completionResponse
		if err := c.submit(ctx, request, &response, "completions"); err != nil {
			return nil, err
		}
		if message, err = messageFromCompletion(&response, p.Stop); err != nil {
			return nil, err
		}
		tokens = response.Usage
	default:
		return nil, llm.ErrInternalServerError.Withf("unexpected endpoint kind %v", c.kind)
	}

	// Append the response with token counts
	conversation.AppendWithOutput(*message, tokens.PromptTokens, tokens.CompletionTokens)
	result := conversation.Last()

	// Truncated responses are returned with an error
	if result.Result == schema.ResultMaxTokens {
		return result, llm.ErrMaxTokens
	}
	return result, nil
}

// submit posts a JSON request to the path below the endpoint
func (c *Client) submit(ctx context.Context, request, response any, path ...any) error {
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return err
	}
	id := uuid.NewString()
	c.logger.Debug("submit", "id", id, "path", fmt.Sprint(path))
	return c.DoWithContext(ctx, payload, response, client.OptPath(path...), client.OptReqHeader(requestIdHeader, id))
}

// requestParams returns the client parameters with request options applied
func (c *Client) requestParams(options *opt.Options) (params.Params, error) {
	p := c.params.Clone()
	for _, key := range []string{opt.TemperatureKey, opt.TopPKey, opt.PresencePenaltyKey, opt.FrequencyPenaltyKey} {
		if options.Has(key) {
			if err := p.Set(key, options.GetFloat64(key)); err != nil {
				return p, err
			}
		}
	}
	for _, key := range []string{opt.MaxTokensKey, opt.SeedKey} {
		if options.Has(key) {
			if err := p.Set(key, options.GetUint(key)); err != nil {
				return p, err
			}
		}
	}
	if stop := options.GetStringArray(opt.StopSequencesKey); len(stop) > 0 {
		p.Stop = stop
	}
	return p, nil
}

func newSampling(model string, p params.Params, user string) sampling {
	return sampling{
		Model:            model,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		FrequencyPenalty: p.FrequencyPenalty,
		PresencePenalty:  p.PresencePenalty,
		N:                p.N,
		Seed:             p.Seed,
		Stop:             p.Stop,
		MaxTokens:        p.MaxTokens,
		User:             user,
	}
}

func chatMessages(system string, conversation schema.Conversation) []chatMessage {
	messages := make([]chatMessage, 0, len(conversation)+1)
	if system = strings.TrimSpace(system); system != "" {
		messages = append(messages, chatMessage{Role: schema.RoleSystem, Content: system})
	}
	for _, message := range conversation {
		messages = append(messages, chatMessage{Role: message.Role, Content: message.Content})
	}
	return messages
}

func messageFromChat(response *chatCompletionResponse) (*schema.Message, error) {
	if len(response.Choices) == 0 {
		return nil, llm.ErrInternalServerError.With("no choices in response")
	}
	choice := response.Choices[0]
	message := schema.NewMessage(schema.RoleAssistant, choice.Message.Content)
	message.Result = resultType(choice.FinishReason)
	message.Meta = responseMeta(response.Id, response.Model, choice.FinishReason)
	return message, nil
}

func messageFromCompletion(response *completionResponse, stop []string) (*schema.Message, error) {
	if len(response.Choices) == 0 {
		return nil, llm.ErrInternalServerError.With("no choices in response")
	}
	choice := response.Choices[0]
	message := schema.NewMessage(schema.RoleAssistant, trimAtStop(choice.Text, stop))
	message.Result = resultType(choice.FinishReason)
	message.Meta = responseMeta(response.Id, response.Model, choice.FinishReason)
	return message, nil
}

func responseMeta(id, model, reason string) map[string]any {
	meta := make(map[string]any, 3)
	if id != "" {
		meta["id"] = id
	}
	if model != "" {
		meta["model"] = model
	}
	if reason != "" {
		meta["finish_reason"] = reason
	}
	return meta
}

// resultType maps a finish reason to a result. Some local servers leave the
// finish reason empty when generation stops normally.
func resultType(reason string) schema.ResultType {
	switch reason {
	case finishReasonStop, "":
		return schema.ResultStop
	case finishReasonLength:
		return schema.ResultMaxTokens
	case finishReasonContentFilter:
		return schema.ResultBlocked
	default:
		return schema.ResultOther
	}
}
