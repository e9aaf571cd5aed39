package ytmusic

import (
	"errors"
	"fmt"
)

// Static errors returned by the client.
var (
	// ErrInvalidParameter is returned when a query is constructed with
	// arguments the endpoint cannot accept, such as an empty browse ID.
	ErrInvalidParameter = errors.New("invalid query parameter")
	// ErrAuthExpired is returned when the stored OAuth token is expired
	// and could not be refreshed.
	ErrAuthExpired = errors.New("authorization expired")
	// ErrAuthRejected is returned when the server refuses the supplied
	// credentials outright.
	ErrAuthRejected = errors.New("authorization rejected")
	// ErrRateLimited is returned when the server throttles the client.
	ErrRateLimited = errors.New("rate limited by server")
	// ErrServerError is returned on upstream 5xx responses.
	ErrServerError = errors.New("server error")
	// ErrTransport is returned when the request failed before an HTTP
	// response was received.
	ErrTransport = errors.New("transport failure")
	// ErrNoMoreContinuations is returned when a next page is requested
	// from a page that carries no continuation token.
	ErrNoMoreContinuations = errors.New("no more continuations")
	// ErrNotImplemented is returned by declared endpoints whose response
	// decoding is not built yet.
	ErrNotImplemented = errors.New("endpoint not implemented")
	// ErrAuthNotConfigured is returned when the client is constructed
	// without usable credentials.
	ErrAuthNotConfigured = errors.New("authentication not configured")
)

// DecodeError describes a failure to decode the provider's renderer JSON.
// Path points at the node where expectation and reality diverged, so a user
// can report exactly which part of the response changed shape.
type DecodeError struct {
	// Path is the JSON pointer of the failing node, from the response root.
	Path string
	// Expected describes what the decoder required at Path.
	Expected string
	// Found describes what the response actually held at Path.
	Found string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failure at %q: expected %s, found %s", e.Path, e.Expected, e.Found)
}

// StatusError wraps one of the static error categories with the HTTP status
// code that produced it.
type StatusError struct {
	// Code is the HTTP status code of the failed response.
	Code int
	// Category is the matching static error, such as ErrRateLimited.
	Category error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%v (status %d)", e.Category, e.Code)
}

// Unwrap exposes the static category for errors.Is checks.
func (e *StatusError) Unwrap() error {
	return e.Category
}
