package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// UpsertDriverDetails creates or replaces the vehicle record for a driver.
// The upsert is keyed on owner_id so at most one record exists per driver,
// and every upsert marks the driver available again.
func (r *FleetRepo) UpsertDriverDetails(ctx context.Context, details *models.DriverDetails) error {
	details.IsAvailable = true
	details.UpdatedAt = models.Now()

	query := `
		INSERT INTO driver_details (owner_id, truck_type, body_type, dimensions, plate_number, is_available, updated_at)
		VALUES (:owner_id, :truck_type, :body_type, :dimensions, :plate_number, :is_available, :updated_at)
		ON CONFLICT (owner_id) DO UPDATE SET
			truck_type = EXCLUDED.truck_type,
			body_type = EXCLUDED.body_type,
			dimensions = EXCLUDED.dimensions,
			plate_number = EXCLUDED.plate_number,
			is_available = EXCLUDED.is_available,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, details); err != nil {
		return errs.Persistence(err)
	}

	return nil
}

// GetDriverDetails retrieves the vehicle record for a driver. A driver who has
// not completed vehicle registration yields (nil, nil).
func (r *FleetRepo) GetDriverDetails(ctx context.Context, ownerID uuid.UUID) (*models.DriverDetails, error) {
	query := `
		SELECT owner_id, truck_type, body_type, dimensions, plate_number, is_available, updated_at
		FROM driver_details
		WHERE owner_id = $1
	`

	var details models.DriverDetails
	err := r.db.GetContext(ctx, &details, query, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Persistence(err)
	}

	return &details, nil
}

// ListAvailableDrivers joins all driver profiles against their fleet records.
// Drivers without a fleet record appear with null vehicle fields rather than
// being excluded.
func (r *FleetRepo) ListAvailableDrivers(ctx context.Context) ([]*models.AvailableDriver, error) {
	query := `
		SELECT p.id, p.full_name, p.phone, d.truck_type, d.body_type, d.is_available
		FROM profiles p
		LEFT JOIN driver_details d ON d.owner_id = p.id
		WHERE p.role = $1
	`

	drivers := []*models.AvailableDriver{}
	if err := r.db.SelectContext(ctx, &drivers, query, models.RoleDriver); err != nil {
		return nil, errs.Persistence(err)
	}

	return drivers, nil
}

// GetProfile is a read-only lookup used to validate ownership and role
func (r *FleetRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, full_name, phone, country_code, email, role, password_hash, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFoundf("profile not found")
		}
		return nil, errs.Persistence(err)
	}

	return &profile, nil
}
