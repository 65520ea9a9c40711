package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
	"github.com/naqla-app/naqla/services/accounts"
)

// AuthHandler handles HTTP requests for authentication flows
type AuthHandler struct {
	accountUC accounts.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC accounts.AccountUC) *AuthHandler {
	return &AuthHandler{accountUC: accountUC}
}

// Register starts the OTP signup flow
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.RegisterOTP(c.Request().Context(), &req); err != nil {
		logger.Warn("Signup start failed",
			logger.String("email", req.Email),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Verification code sent", nil)
}

// Verify completes signup with the emailed code
func (h *AuthHandler) Verify(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.VerifyRegistration(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Signup verification failed",
			logger.String("email", req.Email),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration complete", resp)
}

// Login authenticates with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// AdminLogin authenticates and requires the admin role
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.AdminLogin(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ForgotPassword issues a password reset token
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Reset instructions sent", nil)
}

// ResetPassword completes the credential reset flow
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
