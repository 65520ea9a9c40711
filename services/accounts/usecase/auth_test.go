package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/accounts/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "naqla-test",
		},
		Auth: models.AuthConfig{
			OTPTTLMinutes:        10,
			ResetTokenTTLMinutes: 30,
		},
	}
}

func newAccountUC(t *testing.T) (*AccountUC, *mocks.MockAccountRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())
	return uc, mockRepo, ctrl
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegisterOTP_Success(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "driver@example.com").
		Return(nil, errs.NotFoundf("profile not found"))

	mockRepo.EXPECT().
		StorePendingSignup(gomock.Any(), gomock.Any(), 10*time.Minute).
		DoAndReturn(func(ctx context.Context, signup *models.PendingSignup, ttl time.Duration) error {
			assert.Equal(t, "driver@example.com", signup.Email)
			assert.Equal(t, "Driver One", signup.FullName)
			assert.Equal(t, models.RoleDriver, signup.Role)
			assert.Equal(t, "+966", signup.CountryCode)
			assert.Len(t, signup.Code, 6)
			assert.NotEmpty(t, signup.PasswordHash)
			assert.NotEqual(t, "password123", signup.PasswordHash)
			return nil
		})

	err := uc.RegisterOTP(context.Background(), &models.RegisterRequest{
		Email:    "Driver@Example.com",
		Phone:    "0551234567",
		FullName: "Driver One",
		Password: "password123",
		Role:     models.RoleDriver,
	})

	assert.NoError(t, err)
}

func TestRegisterOTP_InvalidEmail(t *testing.T) {
	uc, _, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	err := uc.RegisterOTP(context.Background(), &models.RegisterRequest{
		Email:    "not-an-email",
		Phone:    "0551234567",
		FullName: "Driver One",
		Password: "password123",
		Role:     models.RoleDriver,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestRegisterOTP_ShortPassword(t *testing.T) {
	uc, _, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	err := uc.RegisterOTP(context.Background(), &models.RegisterRequest{
		Email:    "driver@example.com",
		Phone:    "0551234567",
		FullName: "Driver One",
		Password: "short",
		Role:     models.RoleDriver,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestRegisterOTP_InvalidRole(t *testing.T) {
	uc, _, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	err := uc.RegisterOTP(context.Background(), &models.RegisterRequest{
		Email:    "admin@example.com",
		Phone:    "0551234567",
		FullName: "Admin",
		Password: "password123",
		Role:     models.RoleAdmin,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestRegisterOTP_DuplicateProfile(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	existing := &models.Profile{ID: uuid.New(), Email: "driver@example.com"}
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "driver@example.com").
		Return(existing, nil)

	err := uc.RegisterOTP(context.Background(), &models.RegisterRequest{
		Email:    "driver@example.com",
		Phone:    "0551234567",
		FullName: "Driver One",
		Password: "password123",
		Role:     models.RoleDriver,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDuplicate))
}

func TestVerifyRegistration_Success(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	signup := &models.PendingSignup{
		Email:        "driver@example.com",
		PasswordHash: hashPassword(t, "password123"),
		FullName:     "Driver One",
		Phone:        "0551234567",
		CountryCode:  "+966",
		Role:         models.RoleDriver,
		Code:         "123456",
	}

	mockRepo.EXPECT().
		GetPendingSignup(gomock.Any(), "driver@example.com").
		Return(signup, nil)

	mockRepo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profile *models.Profile) error {
			assert.NotEqual(t, uuid.Nil, profile.ID)
			assert.Equal(t, "driver@example.com", profile.Email)
			assert.Equal(t, models.RoleDriver, profile.Role)
			return nil
		})

	mockRepo.EXPECT().
		DeletePendingSignup(gomock.Any(), "driver@example.com").
		Return(nil)

	resp, err := uc.VerifyRegistration(context.Background(), &models.VerifyRequest{
		Email: "driver@example.com",
		Code:  "123456",
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "driver@example.com", resp.Profile.Email)
}

func TestVerifyRegistration_WrongCode(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	signup := &models.PendingSignup{
		Email: "driver@example.com",
		Code:  "123456",
	}
	mockRepo.EXPECT().
		GetPendingSignup(gomock.Any(), "driver@example.com").
		Return(signup, nil)

	resp, err := uc.VerifyRegistration(context.Background(), &models.VerifyRequest{
		Email: "driver@example.com",
		Code:  "654321",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.Nil(t, resp)
}

func TestVerifyRegistration_Expired(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetPendingSignup(gomock.Any(), "driver@example.com").
		Return(nil, errs.NotFoundf("pending signup not found"))

	resp, err := uc.VerifyRegistration(context.Background(), &models.VerifyRequest{
		Email: "driver@example.com",
		Code:  "123456",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.Nil(t, resp)
}

func TestLogin_Success(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	profile := &models.Profile{
		ID:           uuid.New(),
		Email:        "shipper@example.com",
		Role:         models.RoleShipper,
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "shipper@example.com").
		Return(profile, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "shipper@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().UTC().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	profile := &models.Profile{
		ID:           uuid.New(),
		Email:        "shipper@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "shipper@example.com").
		Return(profile, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "shipper@example.com",
		Password: "wrong-password",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.Nil(t, resp)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, errs.NotFoundf("profile not found"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.Nil(t, resp)
}

func TestAdminLogin_NonAdmin(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	profile := &models.Profile{
		ID:           uuid.New(),
		Email:        "driver@example.com",
		Role:         models.RoleDriver,
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "driver@example.com").
		Return(profile, nil)

	resp, err := uc.AdminLogin(context.Background(), &models.LoginRequest{
		Email:    "driver@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.Nil(t, resp)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, errs.NotFoundf("profile not found"))

	err := uc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
}

func TestForgotPassword_Success(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	profile := &models.Profile{ID: uuid.New(), Email: "shipper@example.com"}
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "shipper@example.com").
		Return(profile, nil)

	mockRepo.EXPECT().
		StoreResetToken(gomock.Any(), "shipper@example.com", gomock.Any(), 30*time.Minute).
		DoAndReturn(func(ctx context.Context, email, token string, ttl time.Duration) error {
			assert.Len(t, token, 64)
			return nil
		})

	err := uc.ForgotPassword(context.Background(), "shipper@example.com")

	assert.NoError(t, err)
}

func TestResetPassword_Success(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	profileID := uuid.New()
	mockRepo.EXPECT().
		GetResetToken(gomock.Any(), "shipper@example.com").
		Return("valid-token", nil)
	mockRepo.EXPECT().
		GetProfileByEmail(gomock.Any(), "shipper@example.com").
		Return(&models.Profile{ID: profileID, Email: "shipper@example.com"}, nil)
	mockRepo.EXPECT().
		UpdatePassword(gomock.Any(), profileID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-1")))
			return nil
		})
	mockRepo.EXPECT().
		DeleteResetToken(gomock.Any(), "shipper@example.com").
		Return(nil)

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "shipper@example.com",
		Token:       "valid-token",
		NewPassword: "new-password-1",
	})

	assert.NoError(t, err)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	uc, mockRepo, ctrl := newAccountUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetResetToken(gomock.Any(), "shipper@example.com").
		Return("stored-token", nil)

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "shipper@example.com",
		Token:       "wrong-token",
		NewPassword: "new-password-1",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
}
