// Package handler contains the HTTP endpoint handlers.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	authmiddleware "linkvault/internal/delivery/http/middleware"
	domainerrors "linkvault/internal/domain/errors"
)

// getUserID extracts the admitted user id placed on the context by the auth gate.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(authmiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrWrongCredentials
	}

	return userID, nil
}

// getSessionID extracts the admitted session id placed on the context by the auth gate.
func getSessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, ok := c.Get(authmiddleware.ContextKeySessionID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrWrongCredentials
	}

	return sessionID, nil
}
