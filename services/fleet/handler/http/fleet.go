package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/middleware"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
	"github.com/naqla-app/naqla/services/fleet"
)

// FleetHandler handles driver fleet HTTP requests
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// RegisterVehicle handles vehicle registration for the authenticated driver
func (h *FleetHandler) RegisterVehicle(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var input models.DriverDetailsInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	details, err := h.fleetUC.RegisterVehicle(c.Request().Context(), actorID, &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle registered", details)
}

// GetDriverDetails returns the vehicle record for the authenticated driver.
// Drivers still pending vehicle setup get a successful response with null data.
func (h *FleetHandler) GetDriverDetails(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	details, err := h.fleetUC.GetDriverDetails(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver details retrieved", details)
}

// ListAvailableDrivers returns all driver profiles with their fleet records
func (h *FleetHandler) ListAvailableDrivers(c echo.Context) error {
	drivers, err := h.fleetUC.ListAvailableDrivers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available drivers retrieved", drivers)
}

// AddTruck registers an additional truck to the authenticated carrier
func (h *FleetHandler) AddTruck(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var input models.TruckInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	truck, err := h.fleetUC.AddTruck(c.Request().Context(), actorID, &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Truck added", truck)
}

// ListTrucks returns the trucks registered to the authenticated carrier
func (h *FleetHandler) ListTrucks(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	trucks, err := h.fleetUC.ListTrucks(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved", trucks)
}

// AddSubDriver attaches a company driver to the authenticated carrier
func (h *FleetHandler) AddSubDriver(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var input models.SubDriverInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	subDriver, err := h.fleetUC.AddSubDriver(c.Request().Context(), actorID, &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Sub-driver added", subDriver)
}

// ListSubDrivers returns the company drivers attached to the authenticated carrier
func (h *FleetHandler) ListSubDrivers(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	subDrivers, err := h.fleetUC.ListSubDrivers(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sub-drivers retrieved", subDrivers)
}
