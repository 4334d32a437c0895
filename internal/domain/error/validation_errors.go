// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "fmt"

// ValidationError names the field that failed validation at the API
// boundary. Records are validated before they ever reach the report
// engine, so the engine itself never has to defend against malformed
// input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
