package handler

import (
	"log/slog"
	"net/http"

	"linkvault/config"
	"linkvault/internal/delivery/http/response"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler serves the credential lifecycle endpoints: login, refresh,
// logout and password change.
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	defaultScope string
	logger       *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Config      *config.Config
	AuthUsecase usecase.AuthUsecase
	Logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUsecase:  params.AuthUsecase,
		defaultScope: params.Config.JWT.ScopeUser,
		logger:       params.Logger,
	}
}

type loginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	SessionID string `json:"sessionId" validate:"omitempty,uuid"`
	Scope     string `json:"scope" validate:"omitempty"`
}

type tokenPairResponse struct {
	AuthToken    string `json:"authToken"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId"`
}

// Login validates credentials and mints a token pair.
// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	input := usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.RealIP(),
		Scope:    req.Scope,
	}
	if input.Scope == "" {
		input.Scope = h.defaultScope
	}
	if req.SessionID != "" {
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			return response.BadRequest(c, "Invalid session id", err.Error())
		}
		input.SessionID = &sessionID
	}

	pair, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Logged in", &tokenPairResponse{
		AuthToken:    pair.AuthToken,
		RefreshToken: pair.RefreshToken,
		SessionID:    pair.SessionID.String(),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh rotates a token pair.
// POST /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	pair, err := h.authUsecase.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Token refreshed", &tokenPairResponse{
		AuthToken:    pair.AuthToken,
		RefreshToken: pair.RefreshToken,
		SessionID:    pair.SessionID.String(),
	})
}

// Logout marks the caller's session inactive.
// POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUsecase.Logout(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Logged out", nil)
}

type changePasswordRequest struct {
	OldPassword    string `json:"oldPassword" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
}

// ChangePassword verifies the old password, stores the new hash and closes
// all of the caller's sessions.
// POST /auth/password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	input := usecase.ChangePasswordInput{
		UserID:         userID,
		OldPassword:    req.OldPassword,
		NewPassword:    req.NewPassword,
		RepeatPassword: req.RepeatPassword,
	}
	if err := h.authUsecase.ChangePassword(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Password changed", nil)
}
