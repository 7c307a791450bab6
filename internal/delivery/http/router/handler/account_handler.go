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

// AccountHandler serves account profile and deletion endpoints.
type AccountHandler struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
	Logger      *slog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		userUsecase: params.UserUsecase,
		logger:      params.Logger,
	}
}

type accountResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Get returns the caller's account profile.
// GET /account
func (h *AccountHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUsecase.GetByID(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Account retrieved", &accountResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	})
}

// Delete soft-deletes the caller's account and closes its sessions.
// DELETE /account
func (h *AccountHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUsecase.SafeDelete(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Account deleted", nil)
}

// Purge hard-deletes a previously soft-deleted account. Admin only.
// DELETE /admin/users/:id
func (h *AccountHandler) Purge(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user id", err.Error())
	}

	if err := h.userUsecase.RemoveDeleted(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Account purged", nil)
}
