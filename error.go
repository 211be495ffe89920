package llm

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrMaxTokens
	ErrUnsupportedModel
	ErrAPIKeyNotFound
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// UnsupportedModelError is returned when a model name matches neither the
// chat nor the completion models of a backend. Model is the name as given,
// including any fine-tune prefix.
type UnsupportedModelError struct {
	Model string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrMaxTokens:
		return "response truncated: max tokens reached"
	case ErrUnsupportedModel:
		return "unsupported model"
	case ErrAPIKeyNotFound:
		return "api key not found"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedModel, e.Model)
}

func (e *UnsupportedModelError) Unwrap() error {
	return ErrUnsupportedModel
}
