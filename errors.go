package aethokit

import (
	"errors"
	"fmt"
)

// ErrMissingGasKey is returned by New when the configured gas key is
// empty or contains only whitespace.
var ErrMissingGasKey = errors.New("gas key is required to initialize the client")

// TransportError reports a network-level failure that occurred before
// any HTTP status was received from the service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a response whose status code was outside the 2xx
// range. Body holds the raw response body verbatim; no parsing is
// attempted on it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %d - %s", e.StatusCode, e.Body)
}

// DecodeError reports a 2xx response whose body could not be decoded
// into the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
