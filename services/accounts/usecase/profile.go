package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// GetProfile retrieves a profile by id
func (u *AccountUC) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return u.accountRepo.GetProfileByID(ctx, id)
}
