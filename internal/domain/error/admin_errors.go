// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Admin approval domain errors.
var (
	// ErrAdminRequired is returned when a non-admin calls an admin-only operation.
	ErrAdminRequired = errors.New("administrator role required")

	// ErrPendingUserNotFound is returned when the user to approve does not exist.
	ErrPendingUserNotFound = errors.New("pending user not found")
)

// AdminErrorCode defines error codes for admin approval errors.
// Format: ADM-XXYYYY where XX is category and YYYY is specific error.
type AdminErrorCode string

const (
	// Authorization errors (01XXXX)
	ErrCodeAdminRequired AdminErrorCode = "ADM-010001"

	// Approval errors (02XXXX)
	ErrCodePendingUserNotFound AdminErrorCode = "ADM-020001"
)

// AdminError represents an admin approval error with code and message.
type AdminError struct {
	Code    AdminErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdminError) Unwrap() error {
	return e.Err
}

// NewAdminError creates a new AdminError with the given code and message.
func NewAdminError(code AdminErrorCode, message string, err error) *AdminError {
	return &AdminError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
