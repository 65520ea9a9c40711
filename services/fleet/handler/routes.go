package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/services/fleet/handler/http"
)

// Handler coordinates the fleet service HTTP handlers
type Handler struct {
	fleetHandler *http.FleetHandler
}

// NewHandler creates and initializes the fleet handlers
func NewHandler(fleetHandler *http.FleetHandler) *Handler {
	return &Handler{
		fleetHandler: fleetHandler,
	}
}

// RegisterRoutes registers the fleet routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	drivers := e.Group("/drivers", jwtMiddleware)
	drivers.POST("/vehicle", h.fleetHandler.RegisterVehicle)
	drivers.GET("/vehicle", h.fleetHandler.GetDriverDetails)
	drivers.GET("/available", h.fleetHandler.ListAvailableDrivers)
	drivers.POST("/trucks", h.fleetHandler.AddTruck)
	drivers.GET("/trucks", h.fleetHandler.ListTrucks)
	drivers.POST("/subdrivers", h.fleetHandler.AddSubDriver)
	drivers.GET("/subdrivers", h.fleetHandler.ListSubDrivers)
}
