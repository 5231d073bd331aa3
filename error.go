package openai

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrMalformedResponse
	ErrNotFound
	ErrInternalServerError
)

const (
	apiErrorPrefix     = "Error: "
	networkErrorPrefix = "Network error: "
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// APIError is returned when the remote service rejects a request with a
// non-success status and a parseable error body.
type APIError struct {
	Message string // Human message, prefixed with "Error: "
	Code    int    // HTTP status code
	Type    string // Error type reported by the service, if any
}

// NetworkError is returned when no response was received at all.
type NetworkError struct {
	Message string // Human message, prefixed with "Network error: "
	Code    int
	Cause   error
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ERR

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrMalformedResponse:
		return "malformed response"
	case ErrNotFound:
		return "not found"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VARIANTS

func newAPIError(message string, code int, typ string) *APIError {
	return &APIError{Message: apiErrorPrefix + message, Code: code, Type: typ}
}

func newNetworkError(cause error) *NetworkError {
	return &NetworkError{Message: networkErrorPrefix + cause.Error(), Cause: cause}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: [%d]: %s", e.Code, e.Message)
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("NetworkError: [%d]: %s", e.Code, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// IsAPIError returns the APIError in the chain of err, if any
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError returns the NetworkError in the chain of err, if any
func IsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// Message returns the human-readable message for an error, without the
// type and code decoration, suitable for showing to an end user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Message
	}
	if netErr, ok := IsNetworkError(err); ok {
		return netErr.Message
	}
	return err.Error()
}
