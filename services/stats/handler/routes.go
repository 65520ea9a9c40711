package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/services/stats/handler/http"
)

// Handler coordinates the stats service HTTP handlers
type Handler struct {
	statsHandler *http.StatsHandler
}

// NewHandler creates and initializes the stats handlers
func NewHandler(statsHandler *http.StatsHandler) *Handler {
	return &Handler{
		statsHandler: statsHandler,
	}
}

// RegisterRoutes registers the stats routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	group := e.Group("/stats", jwtMiddleware)
	group.GET("/admin", h.statsHandler.GetAdminStats)
	group.GET("/driver", h.statsHandler.GetDriverStats)
}
