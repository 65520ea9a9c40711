package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// GetAdminStats returns the platform-wide dashboard counts
func (u *StatsUC) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	return u.statsRepo.GetAdminStats(ctx)
}

// GetDriverStats returns a single driver's dashboard counts
func (u *StatsUC) GetDriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error) {
	return u.statsRepo.GetDriverStats(ctx, driverID)
}
