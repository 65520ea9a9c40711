package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// GetAdminStats aggregates the platform-wide dashboard counts. Each figure is
// a count-only query; no row data crosses the wire.
func (r *StatsRepo) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats

	counts := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&stats.TotalUsers, `SELECT COUNT(*) FROM profiles`, nil},
		{&stats.TotalDrivers, `SELECT COUNT(*) FROM profiles WHERE role = $1`, []interface{}{models.RoleDriver}},
		{&stats.TotalShippers, `SELECT COUNT(*) FROM profiles WHERE role = $1`, []interface{}{models.RoleShipper}},
		{&stats.ActiveLoads, `SELECT COUNT(*) FROM loads WHERE status IN ($1, $2)`,
			[]interface{}{models.LoadStatusAvailable, models.LoadStatusInProgress}},
		{&stats.CompletedTrips, `SELECT COUNT(*) FROM loads WHERE status = $1`,
			[]interface{}{models.LoadStatusCompleted}},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query, c.args...); err != nil {
			return nil, errs.Persistence(err)
		}
	}

	return &stats, nil
}

// GetDriverStats aggregates a single driver's dashboard counts
func (r *StatsRepo) GetDriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error) {
	var stats models.DriverStats

	query := `SELECT COUNT(*) FROM loads WHERE driver_id = $1 AND status = $2`
	if err := r.db.GetContext(ctx, &stats.ActiveLoads, query, driverID, models.LoadStatusInProgress); err != nil {
		return nil, errs.Persistence(err)
	}
	if err := r.db.GetContext(ctx, &stats.CompletedTrips, query, driverID, models.LoadStatusCompleted); err != nil {
		return nil, errs.Persistence(err)
	}

	earningsQuery := `SELECT COALESCE(SUM(price), 0) FROM loads WHERE driver_id = $1 AND status = $2`
	if err := r.db.GetContext(ctx, &stats.Earnings, earningsQuery, driverID, models.LoadStatusCompleted); err != nil {
		return nil, errs.Persistence(err)
	}

	return &stats, nil
}
