package lever

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentops/lever-go/pkg/errors"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

// config holds the client construction settings.
type config struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		baseURL:   DefaultBaseURL,
		userAgent: "lever-go",
	}
}

// WithBaseURL overrides the API root. Useful for sandbox environments
// and tests. The URL must not end with a trailing slash.
func WithBaseURL(baseURL string) Option {
	return func(c *config) error {
		if baseURL == "" {
			return &errors.ValidationError{Field: "baseURL", Message: "must not be empty"}
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient supplies the underlying *http.Client. The default
// client imposes no timeout; deadlines come from the caller's context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) error {
		if httpClient == nil {
			return &errors.ValidationError{Field: "httpClient", Message: "must not be nil"}
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout sets a request timeout on the underlying HTTP client.
// Ignored if WithHTTPClient is also supplied with a later option.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return &errors.ValidationError{Field: "timeout", Message: "must be positive"}
		}
		c.httpClient = &http.Client{Timeout: timeout}
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *config) error {
		c.userAgent = userAgent
		return nil
	}
}

// WithLogger supplies the logger used for debug-level request logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
