// Package errors defines the application error taxonomy: credential, token,
// session-state and authorization failures carry a stable machine-checkable
// code and the exact reason string clients branch on.
package errors

import (
	"net/http"

	"linkvault/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing reason string, stable per rejection state
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches two base errors by business error code, so wrapped or
// detail-enriched copies still compare equal to the sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the stable reason string
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Credential errors: the client must re-authenticate.
var (
	ErrWrongCredentials = NewBaseError(
		http.StatusBadRequest,
		"WRONG_CREDENTIALS",
		"Wrong credentials",
		"",
	)

	ErrAccountDeleted = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_DELETED",
		"Account deleted. Contact sysadmin",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_VERIFIED",
		"Account not verified",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusBadRequest,
		"INCORRECT_PASSWORD",
		"Incorrect password",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"New password and repeat do not match",
		"",
	)
)

// Token errors: the client must discard the presented token.
var (
	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenSuperseded = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SUPERSEDED",
		"Token is invalid",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"Invalid refresh token",
		"",
	)
)

// Session-state errors: the client must log in again (or refresh).
var (
	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Session not found by ID",
		"",
	)

	ErrSessionMissing = NewBaseError(
		http.StatusNotFound,
		"SESSION_MISSING",
		"Session not found by ID",
		"",
	)

	ErrSessionInactive = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INACTIVE",
		"Session is inactive. Refresh it",
		"",
	)

	ErrSessionClosed = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_CLOSED",
		"Session was closed. Log in again",
		"",
	)

	ErrSessionNotActive = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_ACTIVE",
		"Session not active",
		"",
	)

	ErrSessionDoesNotExist = NewBaseError(
		http.StatusBadRequest,
		"SESSION_DOES_NOT_EXIST",
		"Session does not exist",
		"",
	)

	ErrSessionRevive = NewBaseError(
		http.StatusBadRequest,
		"SESSION_REVIVE_FAILED",
		"The session has expired and cannot be revived",
		"",
	)
)

// Authorization errors: the identity is valid but insufficient.
var (
	ErrInvalidScope = NewBaseError(
		http.StatusForbidden,
		"INVALID_SCOPE",
		"Invalid user scope",
		"",
	)

	ErrInsufficientPrivileges = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_PRIVILEGES",
		"Insufficient privileges",
		"",
	)
)

// Confirmation-code errors.
var (
	ErrCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"CODE_NOT_FOUND",
		"Confirmation code not found",
		"",
	)

	ErrCodeExpired = NewBaseError(
		http.StatusBadRequest,
		"CODE_EXPIRED",
		"Confirmation code expired",
		"",
	)

	ErrCodeUsed = NewBaseError(
		http.StatusBadRequest,
		"CODE_USED",
		"Confirmation code already used",
		"",
	)
)

// User and account management errors.
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email already registered",
		"",
	)

	ErrUserAlreadyDeleted = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_DELETED",
		"User is already deleted",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
