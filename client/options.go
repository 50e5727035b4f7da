package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/tokenstore"
)

// Option configures a Client during construction in New.
//
// Options run before the underlying resty client is built, so transport
// options are wrapped by the debug transport when debug logging is on.
type Option func(*Client) error

// WithHTTPTimeout overrides Config.Timeout. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.cfg.Timeout = d
		return nil
	}
}

// WithTokenStore sets where the session token is read from and cleared.
// Defaults to an empty in-memory store.
func WithTokenStore(s tokenstore.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return errors.New("token store cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithNavigator sets the handler of the post-401 redirect to the login view.
func WithNavigator(n Navigator) Option {
	return func(c *Client) error {
		if n == nil {
			return errors.New("navigator cannot be nil")
		}
		c.nav = n
		return nil
	}
}

// WithLogger sets the logger for configuration, request and error events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithHTTPClient makes the client send through a copy of hc. The copy's
// Timeout is replaced by the configured one; hc itself is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTransport sets the RoundTripper requests are sent through.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return errors.New("transport cannot be nil")
		}
		c.transport = rt
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped
// to the logger when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}
