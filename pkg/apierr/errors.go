// Package apierr defines the error taxonomy returned by every API operation:
// validation failures, rejected credentials, non-2xx responses and a
// catch-all wrapper that keeps the original message.
package apierr

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or invalid configuration or arguments.
// It is raised before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError reports a 401/403 response from the API.
type AuthenticationError struct {
	Message    string
	StatusCode int
	// Details is the decoded error body when it was JSON, otherwise the raw text.
	Details any
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NetworkError reports any non-2xx response that is not an authentication failure.
type NetworkError struct {
	Message    string
	StatusCode int
	Details    any
}

func (e *NetworkError) Error() string {
	return e.Message
}

// PinataError wraps any other failure (transport errors, decode errors)
// while keeping the original message.
type PinataError struct {
	Message string
	Err     error
}

func (e *PinataError) Error() string {
	return e.Message
}

func (e *PinataError) Unwrap() error {
	return e.Err
}

// Validation builds a ValidationError.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrMissingJWT is returned by operations that require a bearer token when
// the configuration carries none.
var ErrMissingJWT = &ValidationError{Message: "Pinata configuration or JWT is missing"}

// FromStatus maps a non-2xx status code to AuthenticationError or NetworkError.
func FromStatus(status int, details any) error {
	if status == 401 || status == 403 {
		return &AuthenticationError{
			Message:    "Authentication failed",
			StatusCode: status,
			Details:    details,
		}
	}
	return &NetworkError{
		Message:    fmt.Sprintf("HTTP error! status: %d", status),
		StatusCode: status,
		Details:    details,
	}
}

// Wrap converts err into a PinataError annotated with the operation name,
// unless err already belongs to the taxonomy, in which case it is returned
// unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsTyped(err) {
		return err
	}
	return &PinataError{
		Message: fmt.Sprintf("Error processing %s: %s", op, err.Error()),
		Err:     err,
	}
}

// IsTyped reports whether err (or anything it wraps) is one of the taxonomy types.
func IsTyped(err error) bool {
	var (
		v *ValidationError
		a *AuthenticationError
		n *NetworkError
		p *PinataError
	)
	return errors.As(err, &v) || errors.As(err, &a) || errors.As(err, &n) || errors.As(err, &p)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var a *AuthenticationError
	if errors.As(err, &a) {
		return a.StatusCode
	}
	var n *NetworkError
	if errors.As(err, &n) {
		return n.StatusCode
	}
	return 0
}
