package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/utils"
	"github.com/naqla-app/naqla/services/accounts"
)

// ProfileHandler handles HTTP requests for profile lookups
type ProfileHandler struct {
	accountUC accounts.AccountUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(accountUC accounts.AccountUC) *ProfileHandler {
	return &ProfileHandler{accountUC: accountUC}
}

// GetProfile retrieves a profile by id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid profile ID")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}
