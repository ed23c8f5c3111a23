// Package errors provides application-level error types and utilities.
// Every failure that crosses the use case boundary is an *AppError whose Type
// tells the caller why the request was refused.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation_error"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeConflict        ErrorType = "conflict"
	ErrorTypeUnauthorized    ErrorType = "unauthorized"
	ErrorTypeForbidden       ErrorType = "forbidden"
	ErrorTypeInternal        ErrorType = "internal_error"
	ErrorTypeBadRequest      ErrorType = "bad_request"
	ErrorTypeInvalidState    ErrorType = "invalid_state"
	ErrorTypeDuplicateAction ErrorType = "duplicate_action"
	ErrorTypeWindowExpired   ErrorType = "window_expired"
	ErrorTypeStaleState      ErrorType = "stale_state"
	ErrorTypeTooManyRequests ErrorType = "too_many_requests"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error. It is returned whenever the
// actor's role does not allow the requested transition.
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewInvalidStateError reports that a transition guard failed against the
// current status. The client should refetch the issue.
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, http.StatusConflict, message, details)
}

// NewDuplicateActionError reports a repeated support, contest or vote.
func NewDuplicateActionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDuplicateAction, http.StatusConflict, message, details)
}

// NewWindowExpiredError reports a contest or revalidation attempt after the
// window closed. It is terminal and must not be retried.
func NewWindowExpiredError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeWindowExpired, http.StatusGone, message, details)
}

// NewStaleStateError reports an optimistic-concurrency conflict.
func NewStaleStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeStaleState, http.StatusConflict, message, details)
}

// NewTooManyRequestsError creates a rate limit error
func NewTooManyRequestsError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTooManyRequests, http.StatusTooManyRequests, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsStaleStateError checks if the error is an optimistic-concurrency conflict
func IsStaleStateError(err error) bool {
	return IsType(err, ErrorTypeStaleState)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	// MySQL duplicate entry error
	if strings.Contains(errStr, "duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation and SQLite "UNIQUE constraint failed"
	if strings.Contains(errStr, "unique constraint") {
		return true
	}
	return false
}

// IsTransientError reports storage failures worth retrying: deadlocks, lock
// wait timeouts, serialization failures and dropped connections.
func IsTransientError(err error) bool {
	if err == nil || IsAppError(err) {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, marker := range []string{
		"deadlock",
		"lock wait timeout",
		"database is locked",
		"could not serialize",
		"bad connection",
		"connection reset",
		"driver: bad connection",
	} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
