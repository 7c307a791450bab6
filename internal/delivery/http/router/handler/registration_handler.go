package handler

import (
	"log/slog"
	"net/http"

	"linkvault/internal/delivery/http/response"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandler serves account sign-up, email confirmation and password
// recovery endpoints.
type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	logger              *slog.Logger
}

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUsecase usecase.RegistrationUsecase
	Logger              *slog.Logger
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: params.RegistrationUsecase,
		logger:              params.Logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates an unverified account and emails a confirmation code.
// POST /auth/register
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	input := usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.registrationUsecase.Register(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Account created, confirmation code sent", nil)
}

type confirmRequest struct {
	Code string `json:"code" validate:"required"`
}

// Confirm consumes a confirmation code and marks the account verified.
// POST /auth/confirm
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	if err := h.registrationUsecase.ConfirmEmail(c.Request().Context(), req.Code); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Email confirmed", nil)
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Resend re-sends the active confirmation code.
// POST /auth/resend
func (h *RegistrationHandler) Resend(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	if err := h.registrationUsecase.ResendCode(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Confirmation code sent", nil)
}

// Recover emails a password recovery code.
// POST /auth/recover
func (h *RegistrationHandler) Recover(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	if err := h.registrationUsecase.RecoverPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Recovery code sent", nil)
}

type resetPasswordRequest struct {
	Code           string `json:"code" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
}

// Reset consumes a recovery code and stores the new password hash.
// POST /auth/reset
func (h *RegistrationHandler) Reset(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid request parameters", err.Error())
	}

	input := usecase.ResetPasswordInput{
		Code:           req.Code,
		NewPassword:    req.NewPassword,
		RepeatPassword: req.RepeatPassword,
	}
	if err := h.registrationUsecase.ResetPassword(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Password reset", nil)
}
