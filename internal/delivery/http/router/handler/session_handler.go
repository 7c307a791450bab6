package handler

import (
	"log/slog"
	"net/http"
	"time"

	"linkvault/internal/delivery/http/response"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandler serves session introspection and termination endpoints.
type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	logger         *slog.Logger
}

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUsecase usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: params.SessionUsecase,
		logger:         params.Logger,
	}
}

type sessionResponse struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	IsActive  bool      `json:"isActive"`
	IsClosed  bool      `json:"isClosed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List returns all of the caller's sessions, newest first.
// GET /sessions
func (h *SessionHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions, err := h.sessionUsecase.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, &sessionResponse{
			ID:        session.ID.String(),
			IP:        session.IP,
			IsActive:  session.IsActive,
			IsClosed:  session.IsClosed,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, "Sessions retrieved", out)
}

// Terminate permanently closes one of the caller's sessions.
// DELETE /sessions/:id
func (h *SessionHandler) Terminate(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid session id", err.Error())
	}

	if err := h.sessionUsecase.Terminate(c.Request().Context(), userID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Session terminated", nil)
}
