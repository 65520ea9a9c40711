package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// AddTruck registers an additional truck to a carrier account
func (r *FleetRepo) AddTruck(ctx context.Context, truck *models.Truck) error {
	truck.ID = uuid.New()
	truck.CreatedAt = models.Now()

	query := `
		INSERT INTO trucks (id, owner_id, plate_number, brand, model_year, truck_type, created_at)
		VALUES (:id, :owner_id, :plate_number, :brand, :model_year, :truck_type, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, truck); err != nil {
		return errs.Persistence(err)
	}

	return nil
}

// ListTrucks retrieves all trucks registered to a carrier account
func (r *FleetRepo) ListTrucks(ctx context.Context, ownerID uuid.UUID) ([]*models.Truck, error) {
	query := `
		SELECT id, owner_id, plate_number, brand, model_year, truck_type, created_at
		FROM trucks
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	trucks := []*models.Truck{}
	if err := r.db.SelectContext(ctx, &trucks, query, ownerID); err != nil {
		return nil, errs.Persistence(err)
	}

	return trucks, nil
}

// AddSubDriver attaches a company driver to a carrier account
func (r *FleetRepo) AddSubDriver(ctx context.Context, subDriver *models.SubDriver) error {
	subDriver.ID = uuid.New()
	subDriver.CreatedAt = models.Now()

	query := `
		INSERT INTO sub_drivers (id, carrier_id, driver_name, driver_phone, id_number, created_at)
		VALUES (:id, :carrier_id, :driver_name, :driver_phone, :id_number, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, subDriver); err != nil {
		return errs.Persistence(err)
	}

	return nil
}

// ListSubDrivers retrieves all company drivers attached to a carrier account
func (r *FleetRepo) ListSubDrivers(ctx context.Context, carrierID uuid.UUID) ([]*models.SubDriver, error) {
	query := `
		SELECT id, carrier_id, driver_name, driver_phone, id_number, created_at
		FROM sub_drivers
		WHERE carrier_id = $1
		ORDER BY created_at DESC
	`

	subDrivers := []*models.SubDriver{}
	if err := r.db.SelectContext(ctx, &subDrivers, query, carrierID); err != nil {
		return nil, errs.Persistence(err)
	}

	return subDrivers, nil
}
