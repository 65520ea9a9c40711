package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

const loadWithOwnerColumns = `
	l.id, l.owner_id, l.origin, l.destination,
	l.origin_lat, l.origin_lng, l.dest_lat, l.dest_lng,
	l.weight, l.price, l.truck_type_required, l.body_type, l.description,
	l.distance_km, l.duration,
	l.receiver_name, l.receiver_phone, l.receiver_address,
	l.products, l.status, l.driver_id, l.created_at, l.updated_at,
	p.full_name AS owner_full_name, p.phone AS owner_phone`

// CreateLoad inserts a new load on the open board
func (r *LoadRepo) CreateLoad(ctx context.Context, load *models.Load) error {
	query := `
		INSERT INTO loads (
			id, owner_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng, origin_geohash,
			weight, price, truck_type_required, body_type, description,
			distance_km, duration,
			receiver_name, receiver_phone, receiver_address,
			products, status, driver_id, created_at, updated_at
		) VALUES (
			:id, :owner_id, :origin, :destination,
			:origin_lat, :origin_lng, :dest_lat, :dest_lng, :origin_geohash,
			:weight, :price, :truck_type_required, :body_type, :description,
			:distance_km, :duration,
			:receiver_name, :receiver_phone, :receiver_address,
			:products, :status, :driver_id, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, load); err != nil {
		return errs.Persistence(err)
	}

	return nil
}

// GetLoads lists loads on the open board, newest first
func (r *LoadRepo) GetLoads(ctx context.Context) ([]*models.LoadWithOwner, error) {
	query := `
		SELECT ` + loadWithOwnerColumns + `
		FROM loads l
		JOIN profiles p ON p.id = l.owner_id
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`

	loads := []*models.LoadWithOwner{}
	if err := r.db.SelectContext(ctx, &loads, query, models.LoadStatusAvailable); err != nil {
		return nil, errs.Persistence(err)
	}

	return loads, nil
}

// GetLoadByID retrieves a single load with its owner details
func (r *LoadRepo) GetLoadByID(ctx context.Context, id uuid.UUID) (*models.LoadWithOwner, error) {
	query := `
		SELECT ` + loadWithOwnerColumns + `
		FROM loads l
		JOIN profiles p ON p.id = l.owner_id
		WHERE l.id = $1
	`

	var load models.LoadWithOwner
	err := r.db.GetContext(ctx, &load, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFoundf("load not found")
		}
		return nil, errs.Persistence(err)
	}

	return &load, nil
}

// GetNearbyLoads lists available loads whose origin geohash falls in any of
// the given cells
func (r *LoadRepo) GetNearbyLoads(ctx context.Context, cells []string) ([]*models.LoadWithOwner, error) {
	query := `
		SELECT ` + loadWithOwnerColumns + `
		FROM loads l
		JOIN profiles p ON p.id = l.owner_id
		WHERE l.status = ? AND l.origin_geohash IN (?)
		ORDER BY l.created_at DESC
	`

	query, args, err := sqlx.In(query, models.LoadStatusAvailable, cells)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	query = r.db.Rebind(query)

	loads := []*models.LoadWithOwner{}
	if err := r.db.SelectContext(ctx, &loads, query, args...); err != nil {
		return nil, errs.Persistence(err)
	}

	return loads, nil
}

// AcceptLoad atomically assigns a driver to an available load. The status
// guard in the WHERE clause makes concurrent accepts race-safe: exactly one
// driver wins, the rest see zero rows affected.
func (r *LoadRepo) AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) error {
	query := `
		UPDATE loads
		SET status = $1, driver_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		models.LoadStatusInProgress, driverID, models.Now(), loadID, models.LoadStatusAvailable)
	if err != nil {
		return errs.Persistence(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errs.Persistence(err)
	}
	if rows == 0 {
		return r.transitionFailure(ctx, loadID, "load is no longer available")
	}

	return nil
}

// CompleteLoad marks an in-progress load completed. Only the assigned driver
// can complete it.
func (r *LoadRepo) CompleteLoad(ctx context.Context, loadID, driverID uuid.UUID) error {
	query := `
		UPDATE loads
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND driver_id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		models.LoadStatusCompleted, models.Now(), loadID, models.LoadStatusInProgress, driverID)
	if err != nil {
		return errs.Persistence(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errs.Persistence(err)
	}
	if rows == 0 {
		return r.transitionFailure(ctx, loadID, "load is not in progress for this driver")
	}

	return nil
}

// ReleaseLoad puts a load back on the open board and clears the driver
func (r *LoadRepo) ReleaseLoad(ctx context.Context, loadID uuid.UUID) error {
	query := `
		UPDATE loads
		SET status = $1, driver_id = NULL, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		models.LoadStatusAvailable, models.Now(), loadID)
	if err != nil {
		return errs.Persistence(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errs.Persistence(err)
	}
	if rows == 0 {
		return errs.NotFoundf("load not found")
	}

	return nil
}

// GetDriverHistory lists all loads ever assigned to a driver, newest first
func (r *LoadRepo) GetDriverHistory(ctx context.Context, driverID uuid.UUID) ([]*models.LoadWithOwner, error) {
	query := `
		SELECT ` + loadWithOwnerColumns + `
		FROM loads l
		JOIN profiles p ON p.id = l.owner_id
		WHERE l.driver_id = $1
		ORDER BY l.created_at DESC
	`

	loads := []*models.LoadWithOwner{}
	if err := r.db.SelectContext(ctx, &loads, query, driverID); err != nil {
		return nil, errs.Persistence(err)
	}

	return loads, nil
}

// GetProfile is a read-only lookup used to validate ownership and role
func (r *LoadRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
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

// transitionFailure disambiguates a zero-row conditional update: the load is
// either missing entirely or in a state that forbids the transition.
func (r *LoadRepo) transitionFailure(ctx context.Context, loadID uuid.UUID, conflictMsg string) error {
	var status models.LoadStatus
	err := r.db.GetContext(ctx, &status, `SELECT status FROM loads WHERE id = $1`, loadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NotFoundf("load not found")
		}
		return errs.Persistence(err)
	}
	return errs.Conflictf("%s (status: %s)", conflictMsg, status)
}
