package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
	assert.Nil(opts.Get("missing"))
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.AddString("key", "value1", "value2"))
	assert.NoError(err)
	assert.Equal([]string{"value1", "value2"}, opts.GetStringArray("key"))
	assert.Equal("value1", opts.GetString("key"))
	assert.Equal([]string{"value1", "value2"}, opts.Query("key")["key"])

	// Stop sequences keep their surrounding whitespace
	opts, err = opt.Apply(opt.AddString("stop", "\n### Instruction:"))
	assert.NoError(err)
	assert.Equal([]string{"\n### Instruction:"}, opts.GetStringArray("stop"))
}

func TestSetReplaces(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetString("model", "a"), opt.SetString("model", "b"))
	assert.NoError(err)
	assert.Equal([]string{"b"}, opts.GetStringArray("model"))
}

func TestUintOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetUint("limit", 10))
	assert.NoError(err)
	assert.Equal(uint(10), opts.GetUint("limit"))
	assert.Equal("10", opts.Query("limit").Get("limit"))
}

func TestFloatOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetFloat64("score", 1.5))
	assert.NoError(err)
	assert.InDelta(1.5, opts.GetFloat64("score"), 1e-9)
	assert.Zero(opts.GetFloat64("missing"))
}

func TestBoolOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetBool("flag", true), opt.SetBool("other", false))
	assert.NoError(err)
	assert.True(opts.GetBool("flag"))
	assert.False(opts.GetBool("other"))
	assert.False(opts.GetBool("missing"))
}

func TestAnyOptions(t *testing.T) {
	assert := assert.New(t)
	v := struct{ Name string }{"schema"}
	opts, err := opt.Apply(opt.SetAny("obj", v))
	assert.NoError(err)
	assert.True(opts.Has("obj"))
	assert.Equal(v, opts.Get("obj"))
	assert.Empty(opts.Query("obj").Get("obj"))
}

func TestErrorOption(t *testing.T) {
	assert := assert.New(t)
	sentinel := errors.New("sentinel")
	_, err := opt.Apply(opt.WithOpts(opt.SetString("a", "b"), opt.Error(sentinel)))
	assert.ErrorIs(err, sentinel)
}
