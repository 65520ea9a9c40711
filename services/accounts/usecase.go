package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/naqla-app/naqla/services/accounts AccountUC

// AccountUC represents the accounts usecase interface
type AccountUC interface {
	// OTP signup flow
	RegisterOTP(ctx context.Context, req *models.RegisterRequest) error
	VerifyRegistration(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error)

	// Password login
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Credential reset
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error

	// Profile directory
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}
