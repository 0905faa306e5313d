// Package transport executes single HTTP requests against the remote
// API: it expands an Endpoint's path template, encodes the query,
// applies authentication, serializes the body, and decodes the JSON
// response. Each execution is independent; there are no retries, no
// caching, and no rate limiting. Every failure surfaces directly to
// the caller.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/talentops/lever-go/pkg/errors"
	"github.com/talentops/lever-go/pkg/logging"
)

// Config holds the settings for a transport client.
type Config struct {
	// BaseURL is the fixed API root, without trailing slash.
	BaseURL string

	// APIKey is the credential passed to the Authenticator on every
	// request. The transport holds it for the caller; there is no
	// ambient credential state.
	APIKey string

	// UserAgent is sent on every request when non-empty.
	UserAgent string

	// HTTPClient is the underlying transport. Defaults to a client
	// with no timeout; callers supply deadlines via context.
	HTTPClient *http.Client

	// Auth defaults to BasicAuth.
	Auth Authenticator

	// Logger defaults to the package default logger.
	Logger *zerolog.Logger
}

// Client executes endpoint calls over HTTP.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	auth      Authenticator
	logger    *zerolog.Logger
}

// New creates a new transport client from the given configuration.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	auth := cfg.Auth
	if auth == nil {
		auth = &BasicAuth{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		http:      httpClient,
		auth:      auth,
		logger:    logger,
	}
}

// URL assembles the final request URL for an endpoint and call payload.
func (c *Client) URL(endpoint Endpoint, call Call) string {
	u := c.baseURL + endpoint.Expand(call.Params)
	if qs := call.Query.Encode(); qs != "" {
		u += "?" + qs
	}
	return u
}

// Do executes one endpoint call and decodes the JSON response into
// target. A nil target discards the response body after the status
// check. It issues exactly one outbound request; repeated identical
// calls each re-execute fully.
func (c *Client) Do(ctx context.Context, endpoint Endpoint, call Call, target any) error {
	u := c.URL(endpoint, call)

	// GET requests never carry a body regardless of call.Body.
	var body io.Reader
	if endpoint.Method != http.MethodGet && call.Body != nil {
		data, err := json.Marshal(call.Body)
		if err != nil {
			return errors.WrapResource("encode", "request body", endpoint.Method+" "+u, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, u, body)
	if err != nil {
		return errors.WrapResource("create", "request", endpoint.Method+" "+u, err)
	}

	c.auth.Apply(req, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if endpoint.Method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	// Caller options run last so overrides win on collision.
	for _, opt := range call.Options {
		opt(req)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &errors.TransportError{Method: req.Method, URL: u, Err: err}
	}
	defer func() {
		// Drain any remaining body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return errors.NewRequestFailedError(req.Method, u, resp.StatusCode, resp.Status)
	}

	if target == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &errors.MalformedResponseError{URL: u, Err: err}
	}
	return nil
}
