// Package errors provides typed errors for hookcfg
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration or I/O error
	ErrConfig ErrorType = iota
	// ErrParse indicates a document that does not conform to the YAML grammar
	// or to the expected document shape
	ErrParse
	// ErrValidation indicates a required field is missing or a value is not accepted
	ErrValidation
)

// Error is the base error type for all hookcfg errors
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var typed *Error
	if err == nil {
		return false
	}
	if errors.As(err, &typed) {
		return typed.Type == errType
	}
	return false
}

// ShouldBlock returns true if the error must abort the pre-commit run
// before any hook executes.
func ShouldBlock(err error) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}

	switch typed.Type {
	case ErrParse, ErrValidation, ErrConfig:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrParse:
		return "PARSE"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *Error {
	return New(ErrConfig, message, cause)
}

// ParseError creates a structural parse error
func ParseError(message string, cause error) *Error {
	return New(ErrParse, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *Error {
	return New(ErrValidation, message, cause)
}
