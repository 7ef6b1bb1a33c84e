// Package errors provides unified error handling for mcp-setup.
//
// It standardizes error representation across the three surfaces (wizard,
// headless CLI, TUI) with coded, categorized errors. Wizard cancellation is
// modeled as an error code so the driver can distinguish the exit-0
// cancellation path from real failures.
package errors

import (
	"fmt"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Storage errors
	ErrCodeStorageFailure  ErrorCode = "STORAGE_FAILURE"
	ErrCodeTemplateMissing ErrorCode = "TEMPLATE_MISSING"

	// Flow errors
	ErrCodeCancelled     ErrorCode = "CANCELLED"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo    ErrorSeverity = "info"
	SeverityWarning ErrorSeverity = "warning"
	SeverityError   ErrorSeverity = "error"
)

// AppError represents a standardized application error
type AppError struct {
	Code     ErrorCode     `json:"code"`
	Message  string        `json:"message"`
	Details  string        `json:"details,omitempty"`
	Severity ErrorSeverity `json:"severity"`
	Cause    error         `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Severity: severityFor(code),
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Severity: severityFor(code),
		Cause:    err,
	}
}

func severityFor(code ErrorCode) ErrorSeverity {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeAlreadyExists:
		return SeverityWarning
	case ErrCodeNotFound, ErrCodeTemplateMissing, ErrCodeCancelled:
		return SeverityInfo
	default:
		return SeverityError
	}
}

// IsCancelled reports whether err represents user cancellation, which exits
// with status 0 rather than 1.
func IsCancelled(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == ErrCodeCancelled
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, ErrCodeInternalError, "Internal error occurred")
}

// Common error constructors for frequently used errors

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func AlreadyExistsError(resource string) *AppError {
	return NewAppError(ErrCodeAlreadyExists, fmt.Sprintf("%s already exists", resource))
}

func StorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageFailure, fmt.Sprintf("Storage operation failed: %s", operation))
}

func TemplateMissingError(path string) *AppError {
	return NewAppError(ErrCodeTemplateMissing, fmt.Sprintf("Template file not found: %s", path))
}

func CancelledError(message string) *AppError {
	return NewAppError(ErrCodeCancelled, message)
}
