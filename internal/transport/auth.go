package transport

import (
	"net/http"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, apiKey string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// BasicAuth implements HTTP Basic authentication with the API key as
// username and an empty password, per RFC 7617. This is the scheme the
// Lever API uses.
type BasicAuth struct{}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request, apiKey string) {
	req.SetBasicAuth(apiKey, "")
}
