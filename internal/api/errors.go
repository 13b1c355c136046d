package api

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned before any network activity when an
// authenticated call finds no bearer token in the session.
var ErrMissingToken = errors.New("no auth token for session")

// RequestError is a non-2xx backend response. Message carries the backend's
// own message when the error body parsed, else a generic fallback.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend request failed (%d): %s", e.StatusCode, e.Message)
}

// DecodeError wraps a response body (or token) that could not be parsed.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.What, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
