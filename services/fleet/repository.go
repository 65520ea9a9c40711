package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/naqla-app/naqla/services/fleet FleetRepo

// FleetRepo defines the driver fleet registry storage interface
type FleetRepo interface {
	UpsertDriverDetails(ctx context.Context, details *models.DriverDetails) error
	// GetDriverDetails returns (nil, nil) when the driver has not registered
	// a vehicle yet; that is a normal empty result, not an error.
	GetDriverDetails(ctx context.Context, ownerID uuid.UUID) (*models.DriverDetails, error)
	ListAvailableDrivers(ctx context.Context) ([]*models.AvailableDriver, error)

	AddTruck(ctx context.Context, truck *models.Truck) error
	ListTrucks(ctx context.Context, ownerID uuid.UUID) ([]*models.Truck, error)
	AddSubDriver(ctx context.Context, subDriver *models.SubDriver) error
	ListSubDrivers(ctx context.Context, carrierID uuid.UUID) ([]*models.SubDriver, error)

	// Read-only profile lookup used to validate ownership and role
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}
