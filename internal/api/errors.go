package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend rejects the bearer token, or no token is available.
var ErrUnauthorized = errors.New("unauthorized: please log in again")

// ErrEmptyID is returned when an operation needs a resource ID and got none.
var ErrEmptyID = errors.New("id cannot be empty")

// TransportError is a failure to obtain or decode a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BusinessError is a failure reported by the backend itself.
type BusinessError struct {
	StatusCode int
	Message    string
}

func (e *BusinessError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "backend error: " + e.Message
}

// IsRetryable reports whether err is worth offering a retry for.
// Authentication failures are not: they need a new login.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrUnauthorized) {
		return false
	}
	var te *TransportError
	var be *BusinessError
	return errors.As(err, &te) || errors.As(err, &be)
}
