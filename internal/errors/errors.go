// Package errors provides typed errors for the OnionShare-NG utility core.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrDivideByZero) to check for specific errors.
var (
	// Arithmetic errors
	ErrDivideByZero = errors.New("division by zero")

	// Resource exhaustion errors
	ErrNoPortAvailable = errors.New("no available port in range")

	// Environment errors
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrPathLayout      = errors.New("no path layout for platform and mode")

	// Wordlist errors
	ErrEmptyWordlist = errors.New("wordlist is empty")

	// File errors
	ErrFileNotFound = errors.New("file not found")

	// Crypto errors
	ErrRandFailure   = errors.New("crypto/rand failure")
	ErrHashMismatch  = errors.New("password does not match hash")
	ErrMalformedHash = errors.New("malformed password hash")
)

// TypeError represents a value of the wrong type passed to an operation
// that accepts dynamic input. Values are rejected, never coerced.
type TypeError struct {
	Op   string // Operation name: "format_seconds"
	Got  string // Type that was actually passed
	Want string // Description of acceptable types
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Op, e.Want, e.Got)
}

// NewTypeError creates a new TypeError.
func NewTypeError(op, got, want string) *TypeError {
	return &TypeError{Op: op, Got: got, Want: want}
}

// FileError represents an error during file operations.
type FileError struct {
	Op   string // Operation: "open", "read", "stat", "walk"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any of our sentinel errors.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
