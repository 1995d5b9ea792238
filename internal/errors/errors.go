// Package errors provides domain-specific error types for the hashbox application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a request or argument outside the accepted domain.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeManifest indicates an error reading, writing or parsing a checksum manifest.
	ErrCodeManifest ErrorCode = "MANIFEST_ERROR"

	// ErrCodeStore indicates an error related to the local digest index store.
	ErrCodeStore ErrorCode = "STORE_ERROR"

	// ErrCodeWatch indicates an error in the filesystem watch subsystem.
	ErrCodeWatch ErrorCode = "WATCH_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates a new invalid input error.
func NewInvalidInputError(message string, cause error) *Error {
	return Wrap(ErrCodeInvalidInput, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewManifestError creates a new manifest operation error.
func NewManifestError(message string, cause error) *Error {
	return Wrap(ErrCodeManifest, message, cause)
}

// NewStoreError creates a new index store error.
func NewStoreError(message string, cause error) *Error {
	return Wrap(ErrCodeStore, message, cause)
}

// NewWatchError creates a new filesystem watch error.
func NewWatchError(message string, cause error) *Error {
	return Wrap(ErrCodeWatch, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
