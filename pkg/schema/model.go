package schema

import "time"

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents an LLM model as reported by a backend
type Model struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Created     time.Time      `json:"created,omitzero"`
	OwnedBy     string         `json:"owned_by,omitempty"`
	Aliases     []string       `json:"aliases,omitzero"`
	Meta        map[string]any `json:"meta,omitzero"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}
