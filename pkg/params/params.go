/*
params holds the request parameters shared by OpenAI-compatible backends,
and the defaults applied when a backend does not override them.
*/
package params

import (
	"fmt"
	"maps"
	"math"
	"slices"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Params are the sampling parameters sent with every request
type Params struct {
	Temperature      float64  `json:"temperature" yaml:"temperature"`
	TopP             float64  `json:"top_p" yaml:"top_p"`
	FrequencyPenalty float64  `json:"frequency_penalty" yaml:"frequency_penalty"`
	PresencePenalty  float64  `json:"presence_penalty" yaml:"presence_penalty"`
	N                uint     `json:"n" yaml:"n"`
	BestOf           uint     `json:"best_of" yaml:"best_of"`
	Seed             *int     `json:"seed,omitempty" yaml:"seed,omitempty"`
	Stop             []string `json:"stop,omitempty" yaml:"stop,omitempty"`
	MaxTokens        uint     `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Temperature      = "temperature"
	TopP             = "top_p"
	FrequencyPenalty = "frequency_penalty"
	PresencePenalty  = "presence_penalty"
	N                = "n"
	BestOf           = "best_of"
	Seed             = "seed"
	Stop             = "stop"
	MaxTokens        = "max_tokens"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Defaults returns the parameters used when nothing else is set
func Defaults() Params {
	return Params{
		Temperature:      0,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0.6,
		N:                1,
		BestOf:           1,
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Params) String() string {
	return types.Stringify(p)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Map returns the parameters as a request body fragment. Optional values
// are only present when set, and best_of only when greater than one.
func (p Params) Map() map[string]any {
	result := map[string]any{
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		FrequencyPenalty: p.FrequencyPenalty,
		PresencePenalty:  p.PresencePenalty,
		N:                p.N,
	}
	if p.Seed != nil {
		result[Seed] = types.Value(p.Seed)
	}
	if len(p.Stop) > 0 {
		result[Stop] = slices.Clone(p.Stop)
	}
	if p.MaxTokens > 0 {
		result[MaxTokens] = p.MaxTokens
	}
	if p.BestOf > 1 {
		result[BestOf] = p.BestOf
	}
	return result
}

// Clone returns a deep copy of the parameters
func (p Params) Clone() Params {
	if p.Seed != nil {
		p.Seed = types.Ptr(types.Value(p.Seed))
	}
	p.Stop = slices.Clone(p.Stop)
	return p
}

// SetAll applies each key and value in turn, in key order
func (p *Params) SetAll(values map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := p.Set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Set sets one parameter by name, validating its value. Numeric values of
// any Go numeric kind are accepted.
func (p *Params) Set(key string, value any) error {
	switch key {
	case Temperature:
		v, err := toFloat(key, value)
		if err != nil {
			return err
		} else if v < 0 || v > 2 {
			return llm.ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		p.Temperature = v
	case TopP:
		v, err := toFloat(key, value)
		if err != nil {
			return err
		} else if v < 0 || v > 1 {
			return llm.ErrBadParameter.With("top_p must be between 0.0 and 1.0")
		}
		p.TopP = v
	case FrequencyPenalty, PresencePenalty:
		v, err := toFloat(key, value)
		if err != nil {
			return err
		} else if v < -2 || v > 2 {
			return llm.ErrBadParameter.Withf("%s must be between -2.0 and 2.0", key)
		}
		if key == FrequencyPenalty {
			p.FrequencyPenalty = v
		} else {
			p.PresencePenalty = v
		}
	case N, BestOf, MaxTokens:
		v, err := toUint(key, value)
		if err != nil {
			return err
		} else if v < 1 {
			return llm.ErrBadParameter.Withf("%s must be at least 1", key)
		}
		switch key {
		case N:
			p.N = v
		case BestOf:
			p.BestOf = v
		default:
			p.MaxTokens = v
		}
	case Seed:
		if value == nil {
			p.Seed = nil
			return nil
		}
		v, err := toInt(key, value)
		if err != nil {
			return err
		}
		p.Seed = types.Ptr(v)
	case Stop:
		switch v := value.(type) {
		case nil:
			p.Stop = nil
		case string:
			p.Stop = []string{v}
		case []string:
			p.Stop = slices.Clone(v)
		case []any:
			stop := make([]string, 0, len(v))
			for _, s := range v {
				if s, ok := s.(string); !ok {
					return llm.ErrBadParameter.With("stop must be a string or list of strings")
				} else {
					stop = append(stop, s)
				}
			}
			p.Stop = stop
		default:
			return llm.ErrBadParameter.With("stop must be a string or list of strings")
		}
	default:
		return llm.ErrBadParameter.Withf("unknown parameter %q", key)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toFloat(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	}
	return 0, llm.ErrBadParameter.Withf("%s: expected a number, got %s", key, fmt.Sprintf("%T", value))
}

// toInt converts integer kinds directly, so large values keep their
// precision. Floats are accepted when they hold an integral value.
func toInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, llm.ErrBadParameter.Withf("%s is out of range", key)
		}
		return int(v), nil
	case uint, uint32, uint64:
		u, err := toUint(key, v)
		if err != nil {
			return 0, err
		} else if uint64(u) > math.MaxInt {
			return 0, llm.ErrBadParameter.Withf("%s is out of range", key)
		}
		return int(u), nil
	}
	f, err := toFloat(key, value)
	if err != nil {
		return 0, err
	} else if f != math.Trunc(f) {
		return 0, llm.ErrBadParameter.Withf("%s must be an integer", key)
	} else if f < math.MinInt || f >= math.MaxInt {
		return 0, llm.ErrBadParameter.Withf("%s is out of range", key)
	}
	return int(f), nil
}

// toUint converts integer kinds directly and rejects negative values
func toUint(key string, value any) (uint, error) {
	var n uint64
	switch v := value.(type) {
	case uint:
		return v, nil
	case uint32:
		return uint(v), nil
	case uint64:
		n = v
	case int, int32, int64:
		i := toInt64(v)
		if i < 0 {
			return 0, llm.ErrBadParameter.Withf("%s must be a positive integer", key)
		}
		n = uint64(i)
	default:
		f, err := toFloat(key, value)
		if err != nil {
			return 0, err
		} else if f < 0 || f != math.Trunc(f) {
			return 0, llm.ErrBadParameter.Withf("%s must be a positive integer", key)
		} else if f >= math.MaxUint {
			return 0, llm.ErrBadParameter.Withf("%s is out of range", key)
		}
		return uint(f), nil
	}
	if n > math.MaxUint {
		return 0, llm.ErrBadParameter.Withf("%s is out of range", key)
	}
	return uint(n), nil
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return 0
}
