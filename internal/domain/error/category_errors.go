// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category name already exists in the caller's scope.
	ErrCategoryNameExists = errors.New("category already exists for this user")

	// ErrNotAuthorizedToModifyCategory is returned when the caller may not mutate a category.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")

	// ErrEmptyCategoryName is returned when the category name is empty.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong CategoryErrorCode = "CAT-010002"

	// Lookup/conflict errors (02XXXX)
	ErrCodeCategoryNotFound   CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
