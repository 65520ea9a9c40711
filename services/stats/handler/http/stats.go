package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/middleware"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
	"github.com/naqla-app/naqla/services/stats"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
	}
}

// GetAdminStats returns the platform-wide dashboard counts. Admin only.
func (h *StatsHandler) GetAdminStats(c echo.Context) error {
	if middleware.ActorRole(c) != models.RoleAdmin {
		return utils.ForbiddenResponse(c, "admin privileges required")
	}

	result, err := h.statsUC.GetAdminStats(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin stats retrieved", result)
}

// GetDriverStats returns the authenticated driver's dashboard counts
func (h *StatsHandler) GetDriverStats(c echo.Context) error {
	actorID, err := middleware.ActorID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	result, err := h.statsUC.GetDriverStats(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver stats retrieved", result)
}
