package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

func setupStatsRepoTest(t *testing.T) (*StatsRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &StatsRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestGetAdminStats(t *testing.T) {
	repo, mock, cleanup := setupStatsRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM profiles$").
		WillReturnRows(countRows(42))
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM profiles WHERE role").
		WithArgs(models.RoleDriver).
		WillReturnRows(countRows(25))
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM profiles WHERE role").
		WithArgs(models.RoleShipper).
		WillReturnRows(countRows(16))
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM loads WHERE status IN").
		WithArgs(models.LoadStatusAvailable, models.LoadStatusInProgress).
		WillReturnRows(countRows(7))
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM loads WHERE status").
		WithArgs(models.LoadStatusCompleted).
		WillReturnRows(countRows(120))

	stats, err := repo.GetAdminStats(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 25, stats.TotalDrivers)
	assert.Equal(t, 16, stats.TotalShippers)
	assert.Equal(t, 7, stats.ActiveLoads)
	assert.Equal(t, 120, stats.CompletedTrips)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminStats_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupStatsRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM profiles$").
		WillReturnError(errors.New("database error"))

	stats, err := repo.GetAdminStats(context.Background())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrPersistence))
	assert.Nil(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverStats(t *testing.T) {
	repo, mock, cleanup := setupStatsRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM loads WHERE driver_id").
		WithArgs(driverID, models.LoadStatusInProgress).
		WillReturnRows(countRows(2))
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM loads WHERE driver_id").
		WithArgs(driverID, models.LoadStatusCompleted).
		WillReturnRows(countRows(31))
	mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(price\\), 0\\) FROM loads").
		WithArgs(driverID, models.LoadStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(48250.5))

	stats, err := repo.GetDriverStats(context.Background(), driverID)

	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.ActiveLoads)
	assert.Equal(t, 31, stats.CompletedTrips)
	assert.Equal(t, 48250.5, stats.Earnings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
