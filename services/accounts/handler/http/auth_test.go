package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/accounts/mocks"
)

func newAuthTestContext(body string, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	body := `{"email":"driver@example.com","phone":"0551234567","full_name":"Driver One","password":"password123","role":"driver"}`
	c, rec := newAuthTestContext(body, "/auth/register")

	mockUC.EXPECT().
		RegisterOTP(gomock.Any(), gomock.Any()).
		Return(nil)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Verification code sent", response["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	body := `{"email":"driver@example.com","phone":"0551234567","full_name":"Driver One","password":"password123","role":"driver"}`
	c, rec := newAuthTestContext(body, "/auth/register")

	mockUC.EXPECT().
		RegisterOTP(gomock.Any(), gomock.Any()).
		Return(errs.Duplicatef("profile already exists for driver@example.com"))

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	body := `{"email":"driver@example.com","code":"123456"}`
	c, rec := newAuthTestContext(body, "/auth/register/verify")

	profile := &models.Profile{ID: uuid.New(), Email: "driver@example.com", Role: models.RoleDriver}
	mockUC.EXPECT().
		VerifyRegistration(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "a.b.c", ExpiresAt: 1234567890, Profile: profile}, nil)

	err := handler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "a.b.c", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	body := `{"email":"driver@example.com","password":"wrong"}`
	c, rec := newAuthTestContext(body, "/auth/login")

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errs.Authf("invalid credentials"))

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, float64(http.StatusUnauthorized), response["code"])
}

func TestLogin_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(`{invalid json`, "/auth/login")

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPassword_AlwaysAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	body := `{"email":"nobody@example.com"}`
	c, rec := newAuthTestContext(body, "/auth/password/forgot")

	mockUC.EXPECT().
		ForgotPassword(gomock.Any(), "nobody@example.com").
		Return(nil)

	err := handler.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
