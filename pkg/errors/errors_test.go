package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFailedError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		status     string
		sentinel   error
	}{
		{"not found", 404, "404 Not Found", ErrNotFound},
		{"unauthorized", 401, "401 Unauthorized", ErrUnauthorized},
		{"forbidden", 403, "403 Forbidden", ErrUnauthorized},
		{"rate limited", 429, "429 Too Many Requests", ErrRateLimited},
		{"server error", 500, "500 Internal Server Error", ErrServiceUnavailable},
		{"bad gateway", 502, "502 Bad Gateway", ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestFailedError("GET", "https://api.lever.co/v1/opportunities", tt.statusCode, tt.status)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), "GET")
			assert.Contains(t, err.Error(), tt.status)
		})
	}
}

func TestRequestFailedErrorNoSentinel(t *testing.T) {
	// 400 maps to no sentinel; it should still not match unrelated ones
	err := NewRequestFailedError("POST", "https://api.lever.co/v1/postings", 400, "400 Bad Request")
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrRateLimited)

	var rfe *RequestFailedError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, 400, rfe.StatusCode)
	assert.Equal(t, "POST", rfe.Method)
}

func TestMalformedResponseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &MalformedResponseError{URL: "https://api.lever.co/v1/tags", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed response")
	assert.Contains(t, err.Error(), "https://api.lever.co/v1/tags")
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{Method: "GET", URL: "https://api.lever.co/v1/stages", Err: cause}

	// The underlying transport failure propagates unchanged
	assert.ErrorIs(t, err, cause)

	var te *TransportError
	require.ErrorAs(t, fmt.Errorf("listing stages: %w", err), &te)
	assert.Equal(t, "GET", te.Method)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "limit", Value: -1, Message: "must be positive"}
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "limit")
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, WrapIO("read", "response body", nil))

	cause := errors.New("unexpected EOF")
	err := WrapIO("read", "response body", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to read response body")
}

func TestWrapResource(t *testing.T) {
	assert.NoError(t, WrapResource("create", "request", "GET /tags", nil))

	cause := errors.New("invalid URL")
	err := WrapResource("create", "request", "GET /tags", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
