package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/services/accounts/handler/http"
)

// Handler coordinates the accounts service HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
}

// NewHandler creates and initializes all accounts handlers
func NewHandler(authHandler *http.AuthHandler, profileHandler *http.ProfileHandler) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
	}
}

// RegisterRoutes registers the accounts routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/register/verify", h.authHandler.Verify)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/admin/login", h.authHandler.AdminLogin)
	authGroup.POST("/password/forgot", h.authHandler.ForgotPassword)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)

	// Protected routes
	protected := e.Group("/profiles", jwtMiddleware)
	protected.GET("/:id", h.profileHandler.GetProfile)
}
