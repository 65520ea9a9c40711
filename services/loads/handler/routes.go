package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/services/loads/handler/http"
)

// Handler coordinates the loads service HTTP handlers
type Handler struct {
	loadHandler *http.LoadHandler
}

// NewHandler creates and initializes the loads handlers
func NewHandler(loadHandler *http.LoadHandler) *Handler {
	return &Handler{
		loadHandler: loadHandler,
	}
}

// RegisterRoutes registers the loads routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	group := e.Group("/loads", jwtMiddleware)
	group.POST("", h.loadHandler.PostLoad)
	group.GET("", h.loadHandler.GetLoads)
	group.GET("/nearby", h.loadHandler.GetNearbyLoads)
	group.GET("/history", h.loadHandler.GetDriverHistory)
	group.GET("/:id", h.loadHandler.GetLoadByID)
	group.POST("/:id/accept", h.loadHandler.AcceptLoad)
	group.POST("/:id/complete", h.loadHandler.CompleteLoad)
	group.POST("/:id/cancel", h.loadHandler.CancelLoad)
}
