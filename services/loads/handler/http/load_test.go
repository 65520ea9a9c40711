package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/loads/mocks"
)

func newLoadTestContext(method, target, body string, actorID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *nethttp.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// what the JWT middleware would have set
	c.Set("user_id", actorID.String())
	return c, rec
}

func TestPostLoad_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	ownerID := uuid.New()
	body := `{"origin":"Riyadh","destination":"Jeddah","weight":1200,"price":3500}`
	c, rec := newLoadTestContext(nethttp.MethodPost, "/loads", body, ownerID)

	mockUC.EXPECT().
		PostLoad(gomock.Any(), ownerID, gomock.Any()).
		Return(&models.Load{ID: uuid.New(), OwnerID: ownerID, Status: models.LoadStatusAvailable}, nil)

	err := handler.PostLoad(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Load posted", response["message"])
}

func TestPostLoad_ValidationRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	ownerID := uuid.New()
	c, rec := newLoadTestContext(nethttp.MethodPost, "/loads", `{"destination":"Jeddah"}`, ownerID)

	mockUC.EXPECT().
		PostLoad(gomock.Any(), ownerID, gomock.Any()).
		Return(nil, errs.Validationf("origin is required"))

	err := handler.PostLoad(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestAcceptLoad_HandlerConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	driverID := uuid.New()
	loadID := uuid.New()
	c, rec := newLoadTestContext(nethttp.MethodPost, "/loads/"+loadID.String()+"/accept", "", driverID)
	c.SetParamNames("id")
	c.SetParamValues(loadID.String())

	mockUC.EXPECT().
		AcceptLoad(gomock.Any(), loadID, driverID).
		Return(nil, errs.Conflictf("load is no longer available"))

	err := handler.AcceptLoad(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestAcceptLoad_InvalidLoadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	c, rec := newLoadTestContext(nethttp.MethodPost, "/loads/not-a-uuid/accept", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.AcceptLoad(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestCancelLoad_HandlerForbiddenActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	actorID := uuid.New()
	loadID := uuid.New()
	c, rec := newLoadTestContext(nethttp.MethodPost, "/loads/"+loadID.String()+"/cancel", "", actorID)
	c.SetParamNames("id")
	c.SetParamValues(loadID.String())

	mockUC.EXPECT().
		CancelLoad(gomock.Any(), loadID, actorID).
		Return(errs.Authf("only the load owner or assigned driver may cancel"))

	err := handler.CancelLoad(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestGetNearbyLoads_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	c, rec := newLoadTestContext(nethttp.MethodGet, "/loads/nearby", "", uuid.New())

	err := handler.GetNearbyLoads(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestGetLoads_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	c, rec := newLoadTestContext(nethttp.MethodGet, "/loads", "", uuid.New())

	mockUC.EXPECT().
		GetLoads(gomock.Any()).
		Return([]*models.LoadWithOwner{}, nil)

	err := handler.GetLoads(c)

	assert.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
