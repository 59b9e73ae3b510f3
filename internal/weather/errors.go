package weather

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a lookup is attempted with an empty location.
var ErrInvalidInput = errors.New("location name is empty")

// NotFoundError is returned for any non-2xx provider status.
// The provider's error body is not inspected.
type NotFoundError struct {
	Location   string
	StatusCode int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location %q not found (status %d)", e.Location, e.StatusCode)
}

// NetworkError wraps a transport-level failure. Host is kept instead of the
// full URL so the credential in the query string never leaks into messages.
type NetworkError struct {
	Host string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure contacting %s: %v", e.Host, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError is returned when the provider did not answer in time.
type TimeoutError struct {
	Host string
	Err  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.Host, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when the response body is not JSON or
// lacks a required field. Field is empty for syntax errors.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed weather response: missing field %s", e.Field)
	}
	return fmt.Sprintf("malformed weather response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
