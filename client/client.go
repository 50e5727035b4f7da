package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/api"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/tokenstore"
)

const (
	// DefaultTimeout bounds every request, connection setup included.
	DefaultTimeout = 30 * time.Second

	// ProductionBaseURL is the backend origin used outside development.
	ProductionBaseURL = "https://fenix-pbad.onrender.com/api"

	// DevelopmentPath is the path the development proxy serves the API under.
	DevelopmentPath = "/api"

	// LoginPath is where the session is sent after a 401.
	LoginPath = "/login"

	// BinaryAccept replaces the JSON Accept header on blob downloads.
	BinaryAccept = "text/csv, application/octet-stream;q=0.9, */*;q=0.8"
)

// Config is resolved once at process start and fixed for the lifetime of the
// Client.
type Config struct {
	BaseURL string
	// Timeout defaults to DefaultTimeout when zero.
	Timeout time.Duration
	// DefaultHeaders are added to (and override) the JSON Content-Type and
	// Accept headers sent with every request.
	DefaultHeaders map[string]string
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the single HTTP client of a process. It is safe for concurrent use.
type Client struct {
	cfg Config
	rc  *resty.Client

	store tokenstore.Store
	nav   Navigator
	log   zerolog.Logger

	// set by options, consumed while building rc
	httpClient *http.Client
	transport  http.RoundTripper
	debug      bool

	Categories *Resource
	Products   *FormResource
	Customers  *ExportableResource
	Users      *UserResource
	Orders     *ExportableResource
	OrderItems *ExportableResource
}

// New constructs a Client for cfg. Additional options can be provided via
// functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0, got %s", cfg.Timeout)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:   copyConfig(cfg),
		store: &tokenstore.Memory{},
		nav:   logNavigator{},
		log:   log.Logger,
	}
	c.cfg.BaseURL = base

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rc = c.buildResty()
	c.bindResources()

	c.log.Info().
		Str("base_url", c.cfg.BaseURL).
		Dur("timeout", c.cfg.Timeout).
		Bool("debug", c.debug).
		Msg("API configuration")
	return c, nil
}

func (c *Client) buildResty() *resty.Client {
	var rc *resty.Client
	if c.httpClient != nil {
		// resty writes Timeout, Transport and Jar on the client it wraps.
		hc := *c.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}
	if c.transport != nil {
		rc.SetTransport(c.transport)
	}
	if c.debug {
		base := rc.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		rc.SetTransport(&debugTransport{base: base, log: c.log})
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	for k, v := range c.cfg.DefaultHeaders {
		headers[k] = v
	}

	rc.SetBaseURL(c.cfg.BaseURL).
		SetTimeout(c.cfg.Timeout).
		SetHeaders(headers).
		SetLogger(restyLogger{log: c.log}).
		SetRetryCount(0)
	// No ambient cookies: requests authenticate with the bearer token only.
	rc.SetCookieJar(nil)

	rc.OnBeforeRequest(c.authorize)
	rc.OnAfterResponse(c.handleUnauthorized)
	return rc
}

func (c *Client) bindResources() {
	c.Categories = api.NewResource(c, types.SegmentCategories)
	c.Products = api.NewFormResource(c, types.SegmentProducts)
	c.Customers = api.NewExportableResource(c, types.SegmentCustomers)
	c.Users = api.NewUserResource(c)
	c.Orders = api.NewExportableResource(c, types.SegmentOrders)
	c.OrderItems = api.NewExportableResource(c, types.SegmentOrderItems)
}

// BaseURL returns the URL every path is resolved against.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// Config returns a copy of the resolved configuration.
func (c *Client) Config() Config { return copyConfig(c.cfg) }

// TokenStore returns the store the client reads its session token from.
func (c *Client) TokenStore() tokenstore.Store { return c.store }

// --------------------------------------------------------------------
// Interceptors
// --------------------------------------------------------------------

// authorize runs before every request is dispatched.
func (c *Client) authorize(_ *resty.Client, r *resty.Request) error {
	reqID := uuid.NewString()
	r.SetHeader("X-Request-ID", reqID)
	tok, ok := tokenstore.Token(c.store)
	if ok {
		r.SetHeader("Authorization", "Bearer "+tok)
	}
	c.log.Debug().
		Str("request_id", reqID).
		Str("method", r.Method).
		Str("url", r.URL).
		Bool("authenticated", ok).
		Msg("outbound request")
	return nil
}

// handleUnauthorized resets the session when the backend answers 401. The
// response itself still reaches the caller as a *ResponseError.
func (c *Client) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}
	unauthorizedTotal.Inc()
	if err := c.store.Delete(tokenstore.Key); err != nil {
		c.log.Error().Stack().Err(err).Msg("failed to clear auth token")
	}
	c.log.Warn().Str("url", resp.Request.URL).Msg("session rejected, redirecting to login")
	c.nav.Navigate(LoginPath)
	return nil
}

// --------------------------------------------------------------------
// Transport
// --------------------------------------------------------------------

// Execute performs call against the backend. Non-2xx statuses are returned
// as *ResponseError, dispatch failures as *RequestError, anything that
// prevented the request from being formed as *SetupError.
func (c *Client) Execute(ctx context.Context, call types.Call) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req := c.rc.R().SetContext(ctx)
	if len(call.Query) > 0 {
		req.SetQueryParamsFromValues(call.Query)
	}
	if call.ContentType != "" {
		req.SetHeader("Content-Type", call.ContentType)
	}
	if call.Binary {
		req.SetHeader("Accept", BinaryAccept)
	}
	if call.Body != nil {
		req.SetBody(call.Body)
	}

	start := time.Now()
	resp, err := req.Execute(call.Method, call.Path)
	observe(call.Method, resp, err, time.Since(start))
	if err != nil {
		return nil, c.wrapTransportError(call, err)
	}

	out := &Response{StatusCode: resp.StatusCode(), Data: resp.Body(), Header: resp.Header()}
	if !resp.IsSuccess() {
		return nil, &ResponseError{
			Method:     call.Method,
			URL:        resp.Request.URL,
			StatusCode: out.StatusCode,
			Body:       out.Data,
			Header:     out.Header,
		}
	}
	return out, nil
}

func (c *Client) wrapTransportError(call types.Call, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return &RequestError{Method: call.Method, URL: uerr.URL, Err: err}
	}
	return &SetupError{Method: call.Method, Path: call.Path, Err: err}
}

// Get issues a GET to path.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, buildCall(http.MethodGet, path, nil, opts))
}

// Post issues a POST to path with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, buildCall(http.MethodPost, path, body, opts))
}

// Put issues a PUT to path.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, buildCall(http.MethodPut, path, body, opts))
}

// Patch issues a PATCH to path.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, buildCall(http.MethodPatch, path, body, opts))
}

// Delete issues a DELETE to path.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, buildCall(http.MethodDelete, path, nil, opts))
}

// CallOption adjusts a single verb call.
type CallOption func(*types.Call)

// WithQuery sets the query string.
func WithQuery(q url.Values) CallOption {
	return func(c *types.Call) { c.Query = q }
}

// WithContentType overrides the JSON Content-Type; the body must then be a []byte.
func WithContentType(ct string) CallOption {
	return func(c *types.Call) { c.ContentType = ct }
}

// AsBinary asks for an opaque blob: the request carries BinaryAccept instead
// of the JSON Accept header and Response.Data is returned as received.
func AsBinary() CallOption {
	return func(c *types.Call) { c.Binary = true }
}

func buildCall(method, path string, body any, opts []CallOption) types.Call {
	call := types.Call{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&call)
	}
	return call
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("base URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("base URL must be absolute http(s), got %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func copyConfig(cfg Config) Config {
	out := cfg
	if cfg.DefaultHeaders != nil {
		out.DefaultHeaders = make(map[string]string, len(cfg.DefaultHeaders))
		for k, v := range cfg.DefaultHeaders {
			out.DefaultHeaders[k] = v
		}
	}
	return out
}
