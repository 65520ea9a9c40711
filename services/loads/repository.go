package loads

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/naqla-app/naqla/services/loads LoadRepo

// LoadRepo defines the load lifecycle storage interface
type LoadRepo interface {
	CreateLoad(ctx context.Context, load *models.Load) error
	// GetLoads lists loads on the open board (status=available), newest first,
	// joined with the owning shipper's contact details.
	GetLoads(ctx context.Context) ([]*models.LoadWithOwner, error)
	GetLoadByID(ctx context.Context, id uuid.UUID) (*models.LoadWithOwner, error)
	// GetNearbyLoads lists available loads whose origin geohash falls in any of
	// the given cells.
	GetNearbyLoads(ctx context.Context, cells []string) ([]*models.LoadWithOwner, error)

	// AcceptLoad atomically assigns the driver if and only if the load is still
	// available. Zero rows affected means the load is gone or already taken.
	AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) error
	// CompleteLoad marks the load completed if it is in progress and assigned
	// to this driver.
	CompleteLoad(ctx context.Context, loadID, driverID uuid.UUID) error
	// ReleaseLoad puts the load back on the open board and clears the driver
	ReleaseLoad(ctx context.Context, loadID uuid.UUID) error

	GetDriverHistory(ctx context.Context, driverID uuid.UUID) ([]*models.LoadWithOwner, error)

	// Read-only profile lookup used to validate ownership and role
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}
