package transport

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	assert.Empty(t, req.Header)
}

// TestBasicAuth tests that the API key becomes the Basic auth username
// with an empty password.
func TestBasicAuth(t *testing.T) {
	auth := &BasicAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	header := req.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Basic "), "expected Basic scheme, got %q", header)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)
	assert.Equal(t, "test-api-key:", string(decoded))
}
