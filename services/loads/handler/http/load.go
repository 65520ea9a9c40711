package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/middleware"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
	"github.com/naqla-app/naqla/services/loads"
)

// LoadHandler handles load lifecycle HTTP requests
type LoadHandler struct {
	loadUC loads.LoadUC
}

// NewLoadHandler creates a new load handler
func NewLoadHandler(loadUC loads.LoadUC) *LoadHandler {
	return &LoadHandler{
		loadUC: loadUC,
	}
}

// PostLoad handles posting a new load by the authenticated shipper
func (h *LoadHandler) PostLoad(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var draft models.LoadDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	load, err := h.loadUC.PostLoad(c.Request().Context(), actorID, &draft)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Load posted", load)
}

// GetLoads lists all loads on the open board
func (h *LoadHandler) GetLoads(c echo.Context) error {
	result, err := h.loadUC.GetLoads(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved", result)
}

// GetLoadByID retrieves a single load
func (h *LoadHandler) GetLoadByID(c echo.Context) error {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid load ID")
	}

	load, err := h.loadUC.GetLoadByID(c.Request().Context(), loadID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load retrieved", load)
}

// GetNearbyLoads lists available loads originating near the given coordinates
func (h *LoadHandler) GetNearbyLoads(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	result, err := h.loadUC.GetNearbyLoads(c.Request().Context(), lat, lng)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby loads retrieved", result)
}

// AcceptLoad assigns the load to the authenticated driver
func (h *LoadHandler) AcceptLoad(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid load ID")
	}

	load, err := h.loadUC.AcceptLoad(c.Request().Context(), loadID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load accepted", load)
}

// CompleteLoad marks the load delivered by the authenticated driver
func (h *LoadHandler) CompleteLoad(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid load ID")
	}

	load, err := h.loadUC.CompleteLoad(c.Request().Context(), loadID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load completed", load)
}

// CancelLoad releases the load back to the open board
func (h *LoadHandler) CancelLoad(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid load ID")
	}

	if err := h.loadUC.CancelLoad(c.Request().Context(), loadID, actorID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load cancelled", nil)
}

// GetDriverHistory lists the authenticated driver's load history
func (h *LoadHandler) GetDriverHistory(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	result, err := h.loadUC.GetDriverHistory(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver history retrieved", result)
}
