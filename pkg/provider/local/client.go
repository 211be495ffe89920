/*
local implements a client for a locally hosted server which speaks the
OpenAI chat completions and completions API, such as LM Studio, llama.cpp
or vLLM.

Each client is bound to one model. The model decides whether requests go to
the chat completions or the completions endpoint.
*/
package local

import (
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	// Packages
	log "github.com/charmbracelet/log"
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-local"
	modelcache "github.com/mutablelogic/go-llm-local/pkg/modelcache"
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
	params "github.com/mutablelogic/go-llm-local/pkg/params"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	*modelcache.ModelCache
	model      string
	kind       Kind
	endpoint   string
	proxy      *url.URL
	params     params.Params
	chat       []string
	completion []string
	logger     *log.Logger
}

var _ llm.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint  = "http://127.0.0.1:1234/v1"
	DefaultModel     = "local-model"
	DefaultStop      = "### Instruction:"
	DefaultMaxTokens = 2048
	DefaultTimeout   = 2 * time.Minute

	// Placeholder some configurations use in place of a real token
	placeholderToken = "OPENAI_API_TOKEN"
)

const (
	envProxy = "OPENAI_PROXY"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the named model. The model must be one of the
// chat or completion models, after removing any fine-tune prefix, or an
// *llm.UnsupportedModelError is returned.
func New(model string, opts ...Opt) (*Client, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Select the endpoint style
	if err := checkDisjoint(o.chat, o.completion); err != nil {
		return nil, err
	}
	kind, err := Classify(model, o.chat, o.completion)
	if err != nil {
		return nil, err
	}

	// Check the endpoint and token
	endpoint, err := parseEndpoint(o.endpoint)
	if err != nil {
		return nil, err
	}
	token := strings.TrimSpace(o.token)
	if token == placeholderToken {
		token = ""
	}
	if token == "" && o.requireToken {
		return nil, llm.ErrAPIKeyNotFound.With("an API token is required for ", endpoint)
	}

	// The proxy comes from the options, else the environment
	proxy := os.Getenv(envProxy)
	if o.proxy != nil {
		proxy = *o.proxy
	}
	proxyURL, err := parseProxy(proxy)
	if err != nil {
		return nil, err
	}

	// Client options. The proxy replaces the transport so goes first, and
	// the endpoint and token always apply.
	clientopts := make([]client.ClientOpt, 0, len(o.clientOpts)+4)
	if proxyURL != nil {
		clientopts = append(clientopts, optProxy(proxyURL))
	}
	clientopts = append(clientopts, client.OptTimeout(o.timeout))
	clientopts = append(clientopts, o.clientOpts...)
	clientopts = append(clientopts, client.OptEndpoint(endpoint))
	if token != "" {
		clientopts = append(clientopts, client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  token,
		}))
	}

	c, err := client.New(clientopts...)
	if err != nil {
		return nil, err
	}

	self := &Client{
		Client:     c,
		ModelCache: modelcache.NewModelCache(time.Hour, 20),
		model:      model,
		kind:       kind,
		endpoint:   endpoint,
		proxy:      proxyURL,
		params:     o.params,
		chat:       slices.Clone(o.chat),
		completion: slices.Clone(o.completion),
		logger:     o.logger,
	}
	self.logger.Debug("created client", "model", model, "kind", kind, "endpoint", endpoint, "proxy", redact(proxyURL), "auth", token != "")

	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return schema.Local
}

// Type returns the API family, for callers which dispatch over several backends
func (*Client) Type() string {
	return schema.TypeOpenAI
}

// Model returns the model name as given when the client was created
func (c *Client) Model() string {
	return c.model
}

// Kind returns the endpoint style used for requests
func (c *Client) Kind() Kind {
	return c.kind
}

// IsChat returns true if requests go to the chat completions endpoint
func (c *Client) IsChat() bool {
	return c.kind == Chat
}

// Supports returns nil if the client could serve the named model, or an
// *llm.UnsupportedModelError otherwise
func (c *Client) Supports(model string) error {
	_, err := Classify(model, c.chat, c.completion)
	return err
}

// Endpoint returns the base URL of the server
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Proxy returns the outbound proxy, or nil
func (c *Client) Proxy() *url.URL {
	return c.proxy
}

// Stop returns the first stop sequence
func (c *Client) Stop() string {
	if len(c.params.Stop) == 0 {
		return ""
	}
	return c.params.Stop[0]
}

// MaxTokens returns the token limit for each response
func (c *Client) MaxTokens() uint {
	return c.params.MaxTokens
}

// Params returns a copy of the default request parameters
func (c *Client) Params() params.Params {
	return c.params.Clone()
}

// DefaultParams returns the parameters sent with every request, including
// the model. Callers own the returned map.
func (c *Client) DefaultParams() map[string]any {
	result := c.params.Map()
	result[opt.ModelKey] = c.model
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parseEndpoint(value string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", llm.ErrBadParameter.Withf("endpoint: %v", err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return "", llm.ErrBadParameter.Withf("endpoint: unsupported scheme %q", u.Scheme)
	} else if u.Host == "" {
		return "", llm.ErrBadParameter.Withf("endpoint: missing host in %q", value)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String(), nil
}
