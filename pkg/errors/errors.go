// Package errors provides custom error types for the lever-go client.
// These errors enable programmatic error checking with errors.Is/As and
// carry enough request context (method, URL, status) to diagnose a failed
// call without a network trace.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the lever-go client
var (
	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrNotFound indicates that a requested remote resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates that the API key was rejected or lacks access
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable indicates that the remote API is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// RequestFailedError represents a remote response with a non-2xx HTTP status.
// The response body is not inspected; the status line is the diagnosis.
type RequestFailedError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Status)
}

// Is implements errors.Is support, mapping well-known status codes
// to the package sentinels.
func (e *RequestFailedError) Is(target error) bool {
	switch {
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServiceUnavailable
	}
	return false
}

// NewRequestFailedError creates a new RequestFailedError
func NewRequestFailedError(method, url string, statusCode int, status string) *RequestFailedError {
	return &RequestFailedError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Status:     status,
	}
}

// MalformedResponseError represents a response body that could not be
// decoded as JSON when JSON was expected.
type MalformedResponseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransportError represents an opaque lower-layer failure: DNS, connection
// refused, TLS, or a caller-configured timeout. The underlying error is
// propagated unchanged via Unwrap.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError represents a client-side validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError represents an input/output operation failure
type IOError struct {
	Operation string
	Target    string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Target, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an I/O error with operation context
func WrapIO(operation, target string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Target: target, Err: err}
}

// WrapResource wraps an error with resource operation context
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s %s %s: %w", operation, resource, id, err)
}
