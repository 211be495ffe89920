package local

import (
	"net/http"
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-local"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parseProxy returns nil for an empty value
func parseProxy(value string) (*url.URL, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return nil, llm.ErrBadParameter.Withf("proxy: %v", err)
	}
	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
		// Supported by net/http
	default:
		return nil, llm.ErrBadParameter.Withf("proxy: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, llm.ErrBadParameter.Withf("proxy: missing host in %q", value)
	}
	return u, nil
}

// optProxy routes requests for one client through a proxy. The transport is
// cloned, so http.DefaultTransport and other clients are not affected.
func optProxy(proxy *url.URL) client.ClientOpt {
	return func(c *client.Client) error {
		var transport *http.Transport
		switch t := c.Client.Transport.(type) {
		case nil:
			transport = http.DefaultTransport.(*http.Transport).Clone()
		case *http.Transport:
			transport = t.Clone()
		default:
			return llm.ErrBadParameter.Withf("proxy: cannot be set on transport %T", t)
		}
		transport.Proxy = http.ProxyURL(proxy)
		c.Client.Transport = transport
		return nil
	}
}

// redact returns the proxy URL without a password, for logging
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Redacted()
}
