package local

import (
	"slices"
	"strings"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind is the endpoint style a model is served from
type Kind uint

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	_ Kind = iota
	Chat
	Completion
)

const (
	// Marks a fine-tuned model name, ft:<base>:<id>
	fineTunePrefix = "ft:"
)

var (
	// Models served from the chat completions endpoint by default
	DefaultChatModels = []string{"local-model", "local-model-chat"}

	// Models served from the completions endpoint by default
	DefaultCompletionModels = []string{"local-completion-model", "local-model-completion"}
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Kind) String() string {
	switch k {
	case Chat:
		return "chat"
	case Completion:
		return "completion"
	default:
		return "unknown"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// EffectiveName returns the name used to look up a model. For a fine-tuned
// model ft:<base>:<id> this is <base>, otherwise the name is unchanged.
func EffectiveName(model string) string {
	if strings.Contains(model, fineTunePrefix) {
		if fields := strings.Split(model, ":"); len(fields) > 1 {
			return fields[1]
		}
	}
	return model
}

// Classify returns the endpoint style for a model. Chat models take
// precedence. When the model is in neither list, the error is an
// *llm.UnsupportedModelError carrying the model name as given.
func Classify(model string, chat, completion []string) (Kind, error) {
	name := EffectiveName(model)
	switch {
	case slices.Contains(chat, name):
		return Chat, nil
	case slices.Contains(completion, name):
		return Completion, nil
	default:
		return 0, &llm.UnsupportedModelError{Model: model}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// checkDisjoint returns an error if a name appears in both lists
func checkDisjoint(chat, completion []string) error {
	for _, name := range chat {
		if slices.Contains(completion, name) {
			return llm.ErrBadParameter.Withf("model %q is both a chat and a completion model", name)
		}
	}
	return nil
}
