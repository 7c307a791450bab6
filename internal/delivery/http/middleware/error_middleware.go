package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	deliverycontext "linkvault/internal/delivery/context"
	domainerrors "linkvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error returned by handlers and middleware as
// the unified JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is registered as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		m.respond(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		m.respond(c, httpErr.Code, message, http.StatusText(httpErr.Code), "")

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))
	m.respond(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", "")
}

func (m *ErrorMiddleware) respond(c echo.Context, httpCode int, message, errorCode, details string) {
	response := &domainerrors.Response{
		Success: false,
		Code:    httpCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	}

	if err := c.JSON(httpCode, response); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
