package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// RegisterVehicle creates or replaces the vehicle record for a driver.
// Repeated registration is an idempotent replace keyed on the driver id.
func (u *FleetUC) RegisterVehicle(ctx context.Context, ownerID uuid.UUID, input *models.DriverDetailsInput) (*models.DriverDetails, error) {
	if input.PlateNumber == "" {
		return nil, errs.Validationf("plate number is required")
	}
	if input.TruckType == "" {
		return nil, errs.Validationf("truck type is required")
	}

	profile, err := u.fleetRepo.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !profile.IsDriver() {
		return nil, errs.Validationf("profile %s is not a driver", ownerID)
	}

	details := &models.DriverDetails{
		OwnerID:     ownerID,
		TruckType:   input.TruckType,
		BodyType:    input.BodyType,
		Dimensions:  input.Dimensions,
		PlateNumber: input.PlateNumber,
	}

	if err := u.fleetRepo.UpsertDriverDetails(ctx, details); err != nil {
		return nil, err
	}

	logger.Info("Registered driver vehicle",
		logger.String("owner_id", ownerID.String()),
		logger.String("truck_type", details.TruckType),
		logger.String("plate_number", details.PlateNumber))

	return details, nil
}

// GetDriverDetails retrieves the vehicle record for a driver. Drivers still
// pending vehicle setup yield (nil, nil).
func (u *FleetUC) GetDriverDetails(ctx context.Context, ownerID uuid.UUID) (*models.DriverDetails, error) {
	return u.fleetRepo.GetDriverDetails(ctx, ownerID)
}

// ListAvailableDrivers lists all driver profiles with their fleet records
func (u *FleetUC) ListAvailableDrivers(ctx context.Context) ([]*models.AvailableDriver, error) {
	return u.fleetRepo.ListAvailableDrivers(ctx)
}

// AddTruck registers an additional truck to a carrier account
func (u *FleetUC) AddTruck(ctx context.Context, ownerID uuid.UUID, input *models.TruckInput) (*models.Truck, error) {
	if input.PlateNumber == "" {
		return nil, errs.Validationf("plate number is required")
	}

	if _, err := u.fleetRepo.GetProfile(ctx, ownerID); err != nil {
		return nil, err
	}

	truck := &models.Truck{
		OwnerID:     ownerID,
		PlateNumber: input.PlateNumber,
		Brand:       input.Brand,
		ModelYear:   input.ModelYear,
		TruckType:   input.TruckType,
	}

	if err := u.fleetRepo.AddTruck(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

// ListTrucks retrieves all trucks registered to a carrier account
func (u *FleetUC) ListTrucks(ctx context.Context, ownerID uuid.UUID) ([]*models.Truck, error) {
	return u.fleetRepo.ListTrucks(ctx, ownerID)
}

// AddSubDriver attaches a company driver to a carrier account
func (u *FleetUC) AddSubDriver(ctx context.Context, carrierID uuid.UUID, input *models.SubDriverInput) (*models.SubDriver, error) {
	if input.DriverName == "" {
		return nil, errs.Validationf("driver name is required")
	}
	if input.DriverPhone == "" {
		return nil, errs.Validationf("driver phone is required")
	}

	if _, err := u.fleetRepo.GetProfile(ctx, carrierID); err != nil {
		return nil, err
	}

	subDriver := &models.SubDriver{
		CarrierID:   carrierID,
		DriverName:  input.DriverName,
		DriverPhone: input.DriverPhone,
		IDNumber:    input.IDNumber,
	}

	if err := u.fleetRepo.AddSubDriver(ctx, subDriver); err != nil {
		return nil, err
	}

	return subDriver, nil
}

// ListSubDrivers retrieves all company drivers attached to a carrier account
func (u *FleetUC) ListSubDrivers(ctx context.Context, carrierID uuid.UUID) ([]*models.SubDriver, error) {
	return u.fleetRepo.ListSubDrivers(ctx, carrierID)
}
