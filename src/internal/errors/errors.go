// Package errors provides domain-specific error types for warninglists.
//
// Errors carry a code so callers can tell structural contract violations
// (duplicate list names, unknown lists) apart from configuration and source
// problems without matching on message text.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeList indicates a malformed list definition.
	ErrCodeList ErrorCode = "LIST_ERROR"

	// ErrCodeDuplicateList indicates two definitions share a name.
	ErrCodeDuplicateList ErrorCode = "DUPLICATE_LIST"

	// ErrCodeUnknownList indicates a list name absent from the collection.
	ErrCodeUnknownList ErrorCode = "UNKNOWN_LIST"

	// ErrCodeSource indicates an error reading or fetching list definitions.
	ErrCodeSource ErrorCode = "SOURCE_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var (
	// ErrDuplicateList matches any duplicate list name error via errors.Is.
	ErrDuplicateList = New(ErrCodeDuplicateList, "duplicate list name")

	// ErrUnknownList matches any unknown list error via errors.Is.
	ErrUnknownList = New(ErrCodeUnknownList, "unknown list")
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

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewListError creates a new list definition error.
func NewListError(message string, cause error) *Error {
	return Wrap(ErrCodeList, message, cause)
}

// NewDuplicateListError reports a list name seen more than once in a single load.
func NewDuplicateListError(name string) *Error {
	return New(ErrCodeDuplicateList, fmt.Sprintf("duplicate list name: %q", name))
}

// NewUnknownListError reports a list name that is not part of the collection.
func NewUnknownListError(name string) *Error {
	return New(ErrCodeUnknownList, fmt.Sprintf("unknown list: %q", name))
}

// NewSourceError creates a new definition source error.
func NewSourceError(message string, cause error) *Error {
	return Wrap(ErrCodeSource, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// HasCode reports whether err, or any error it wraps, carries the given code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
