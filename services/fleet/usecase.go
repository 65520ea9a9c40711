package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/naqla-app/naqla/services/fleet FleetUC

// FleetUC represents the fleet usecase interface
type FleetUC interface {
	RegisterVehicle(ctx context.Context, ownerID uuid.UUID, input *models.DriverDetailsInput) (*models.DriverDetails, error)
	// GetDriverDetails returns (nil, nil) for drivers still pending vehicle setup
	GetDriverDetails(ctx context.Context, ownerID uuid.UUID) (*models.DriverDetails, error)
	ListAvailableDrivers(ctx context.Context) ([]*models.AvailableDriver, error)

	AddTruck(ctx context.Context, ownerID uuid.UUID, input *models.TruckInput) (*models.Truck, error)
	ListTrucks(ctx context.Context, ownerID uuid.UUID) ([]*models.Truck, error)
	AddSubDriver(ctx context.Context, carrierID uuid.UUID, input *models.SubDriverInput) (*models.SubDriver, error)
	ListSubDrivers(ctx context.Context, carrierID uuid.UUID) ([]*models.SubDriver, error)
}
