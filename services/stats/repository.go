package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/naqla-app/naqla/services/stats StatsRepo

// StatsRepo defines the statistics aggregation storage interface
type StatsRepo interface {
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
	GetDriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error)
}
