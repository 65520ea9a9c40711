package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/stats/mocks"
)

func newStatsTestContext(target string, actorID uuid.UUID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actorID.String())
	c.Set("role", role)
	return c, rec
}

func TestGetAdminStats_AsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStatsUC(ctrl)
	handler := NewStatsHandler(mockUC)

	c, rec := newStatsTestContext("/stats/admin", uuid.New(), models.RoleAdmin)

	mockUC.EXPECT().
		GetAdminStats(gomock.Any()).
		Return(&models.AdminStats{TotalUsers: 42, TotalDrivers: 25, TotalShippers: 16}, nil)

	err := handler.GetAdminStats(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["total_users"])
}

func TestGetAdminStats_NonAdminForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStatsUC(ctrl)
	handler := NewStatsHandler(mockUC)

	c, rec := newStatsTestContext("/stats/admin", uuid.New(), models.RoleDriver)

	err := handler.GetAdminStats(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestGetDriverStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStatsUC(ctrl)
	handler := NewStatsHandler(mockUC)

	driverID := uuid.New()
	c, rec := newStatsTestContext("/stats/driver", driverID, models.RoleDriver)

	mockUC.EXPECT().
		GetDriverStats(gomock.Any(), driverID).
		Return(&models.DriverStats{ActiveLoads: 1, CompletedTrips: 12, Earnings: 18000}, nil)

	err := handler.GetDriverStats(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
