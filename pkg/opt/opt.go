package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a request
type Opt func(*Options) error

// Options is a set of applied options. Scalar values are kept as strings,
// other values are kept as-is.
type Options struct {
	url.Values
	any map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys shared between packages
const (
	ModelKey            = "model"
	SystemPromptKey     = "system"
	TemperatureKey      = "temperature"
	TopPKey             = "top_p"
	MaxTokensKey        = "max_tokens"
	StopSequencesKey    = "stop"
	SeedKey             = "seed"
	PresencePenaltyKey  = "presence_penalty"
	FrequencyPenaltyKey = "frequency_penalty"
	UserKey             = "user"
	JSONSchemaKey       = "json_schema"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(opts ...Opt) (*Options, error) {
	o := &Options{Values: make(url.Values), any: make(map[string]any)}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the string values for the given keys
func (o *Options) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}

// Has returns true if the key exists
func (o *Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.any[key]
	return ok
}

// Get returns an arbitrary value for key, or nil
func (o *Options) Get(key string) any {
	return o.any[key]
}

// Set stores an arbitrary value for key
func (o *Options) Set(key string, value any) {
	o.any[key] = value
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetStringArray returns all values for key
func (o *Options) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

// GetBool returns true if key is present and not "false"
func (o *Options) GetBool(key string) bool {
	if values, ok := o.Values[key]; ok {
		if len(values) == 0 {
			return true
		}
		v, err := strconv.ParseBool(values[0])
		return err != nil || v
	}
	return false
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(*Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces the value for key
func SetString(key, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends values for key
func AddString(key string, values ...string) Opt {
	return func(o *Options) error {
		for _, v := range values {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint replaces the value for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, fmt.Sprint(value))
		return nil
	}
}

// SetFloat64 replaces the value for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetBool replaces the value for key
func SetBool(key string, value bool) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}

// SetAny stores an arbitrary value for key
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		o.Set(key, value)
		return nil
	}
}
