package transport

import (
	"net/url"
	"strings"
)

// Endpoint describes one remote operation: an HTTP method and a path
// template. Path segments prefixed with ":" are placeholders filled in
// from Call.Params. Endpoints are declared once at package init and
// never mutated.
type Endpoint struct {
	Method string
	Path   string
}

// Params maps placeholder names to path parameter values.
type Params map[string]string

// Expand substitutes every param into the path template, replacing the
// first occurrence of ":<name>" with the percent-encoded value.
//
// Matching is permissive on both sides: a placeholder with no matching
// param stays literal in the path, and a param with no matching
// placeholder is a no-op. This mirrors the remote API binding this
// client replaces; see the round-trip tests for the expected shapes.
func (e Endpoint) Expand(params Params) string {
	path := e.Path
	for name, value := range params {
		path = strings.Replace(path, ":"+name, url.PathEscape(value), 1)
	}
	return path
}
