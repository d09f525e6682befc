// Package errors provides typed errors for the application
package errors

import "fmt"

// baseError is the base implementation for all error types
type baseError struct {
	msg string
}

func (e *baseError) Error() string {
	return e.msg
}

// ValidationError represents a validation error (400)
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// NotFoundError represents a not found error (404)
type NotFoundError struct {
	baseError
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{baseError{msg: msg}}
}

// UnauthorizedError represents an unauthorized error (401)
type UnauthorizedError struct {
	baseError
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(msg string) *UnauthorizedError {
	return &UnauthorizedError{baseError{msg: msg}}
}

// InternalError represents an internal server error (500)
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError
func NewInternalError(msg string) *InternalError {
	return &InternalError{baseError{msg: msg}}
}

// RemoteCallError represents a failed outbound call to the Telegram API.
// Status is the HTTP status code, Body the (possibly truncated) response body.
type RemoteCallError struct {
	Status int
	Body   string
}

// NewRemoteCallError creates a new RemoteCallError
func NewRemoteCallError(status int, body string) *RemoteCallError {
	return &RemoteCallError{Status: status, Body: body}
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote call failed: status %d: %s", e.Status, e.Body)
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsNotFoundError checks if error is a NotFoundError
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsUnauthorizedError checks if error is an UnauthorizedError
func IsUnauthorizedError(err error) bool {
	_, ok := err.(*UnauthorizedError)
	return ok
}

// IsInternalError checks if error is an InternalError
func IsInternalError(err error) bool {
	_, ok := err.(*InternalError)
	return ok
}

// IsRemoteCallError checks if error is a RemoteCallError
func IsRemoteCallError(err error) bool {
	_, ok := err.(*RemoteCallError)
	return ok
}
