package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Provider names
const (
	Local = "local"
)

// Backend families, used by callers which dispatch over several backends
const (
	TypeOpenAI = "openai"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns indented JSON for v, or the marshal error text
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
