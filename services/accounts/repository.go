package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/naqla-app/naqla/services/accounts AccountRepo

// AccountRepo defines the profile directory storage interface
type AccountRepo interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Pending signups and reset tokens are short-lived records with a TTL
	StorePendingSignup(ctx context.Context, signup *models.PendingSignup, ttl time.Duration) error
	GetPendingSignup(ctx context.Context, email string) (*models.PendingSignup, error)
	DeletePendingSignup(ctx context.Context, email string) error
	StoreResetToken(ctx context.Context, email, token string, ttl time.Duration) error
	GetResetToken(ctx context.Context, email string) (string, error)
	DeleteResetToken(ctx context.Context, email string) error
}
