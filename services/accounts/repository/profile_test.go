package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AccountRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateProfile(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO profiles").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO profiles").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrDuplicate))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO profiles").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrPersistence))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			profile := &models.Profile{
				ID:           uuid.New(),
				FullName:     "Driver One",
				Phone:        "0551234567",
				CountryCode:  "+966",
				Email:        "driver@example.com",
				Role:         models.RoleDriver,
				PasswordHash: "hash",
			}
			err := repo.CreateProfile(context.Background(), profile)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetProfileByID(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, profile *models.Profile, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				rows := sqlmock.NewRows([]string{
					"id", "full_name", "phone", "country_code", "email", "role", "password_hash", "created_at",
				}).AddRow(id, "Driver One", "0551234567", "+966", "driver@example.com", "driver", "hash", time.Now().UTC())
				mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE id").
					WithArgs(id).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, profile *models.Profile, err error) {
				assert.NoError(t, err)
				require.NotNil(t, profile)
				assert.Equal(t, "Driver One", profile.FullName)
				assert.Equal(t, models.RoleDriver, profile.Role)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE id").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, profile *models.Profile, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrNotFound))
				assert.Nil(t, profile)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			profile, err := repo.GetProfileByID(context.Background(), id)

			tc.assertFunc(t, profile, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE profiles SET password_hash").
					WithArgs("new-hash", id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Profile Missing",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE profiles SET password_hash").
					WithArgs("new-hash", id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			err := repo.UpdatePassword(context.Background(), id, "new-hash")

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
