// Package response provides the unified JSON envelope returned by every handler.
package response

import (
	"net/http"

	domainerrors "linkvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success sends a successful response
func Success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, &Response{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c echo.Context, httpCode int, message, errorCode, details string) error {
	return c.JSON(httpCode, &Response{
		Success: false,
		Code:    httpCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest sends a 400 error response
func BadRequest(c echo.Context, message, details string) error {
	return Error(c, http.StatusBadRequest, message, "BAD_REQUEST", details)
}

// BindingError sends a 400 error response for request binding failures
func BindingError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "Invalid request format", "BINDING_ERROR", err.Error())
}

// Unauthorized sends a 401 error response
func Unauthorized(c echo.Context, message, details string) error {
	return Error(c, http.StatusUnauthorized, message, "UNAUTHORIZED", details)
}

// Forbidden sends a 403 error response
func Forbidden(c echo.Context, message, details string) error {
	return Error(c, http.StatusForbidden, message, "FORBIDDEN", details)
}

// NotFound sends a 404 error response
func NotFound(c echo.Context, message, details string) error {
	return Error(c, http.StatusNotFound, message, "NOT_FOUND", details)
}

// Conflict sends a 409 error response
func Conflict(c echo.Context, message, details string) error {
	return Error(c, http.StatusConflict, message, "CONFLICT", details)
}

// InternalServerError sends a 500 error response
func InternalServerError(c echo.Context, details string) error {
	return Error(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", details)
}

// HandleAppError maps an application error onto the envelope. Unknown errors
// collapse to 500 without leaking internals.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())
	}

	return InternalServerError(c, "")
}
