package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Authentication required. Please provide valid API credentials."}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid API key or secret"}
	ErrTokenExpired       = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewValidationError creates a validation error. The ERP framework this API
// replaces reported validation failures with 417 and clients depend on it.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusExpectationFailed,
		Message: message,
	}
}

// NewFieldValidationError creates a validation error carrying per-field detail
func NewFieldValidationError(message string, fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusExpectationFailed,
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewDoesNotExistError creates an error for a dangling reference
// (company, item, customer or invoice)
func NewDoesNotExistError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewPermissionError creates a permission error with a custom message
func NewPermissionError(message string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: message,
	}
}

// NewDuplicateEntryError creates an error for a unique-key clash
func NewDuplicateEntryError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewUnexpectedError wraps anything outside the taxonomy
func NewUnexpectedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusExpectationFailed
}

// IsDoesNotExist reports whether err is a dangling-reference error
func IsDoesNotExist(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// IsDuplicateEntry reports whether err is a unique-key clash
func IsDuplicateEntry(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusConflict
}

// GetAppError converts an error to AppError if possible. Unknown errors are
// never leaked to callers as raw internals.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Unexpected error: " + err.Error(),
	}
}
