package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

const uniqueViolation = "23505"

// CreateProfile persists a new profile row. The id comes from the identity
// provider and is the owner key for every other entity.
func (r *AccountRepo) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO profiles (id, full_name, phone, country_code, email, role, password_hash, created_at)
		VALUES (:id, :full_name, :phone, :country_code, :email, :role, :password_hash, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.Duplicatef("profile already exists for %s", profile.Email)
		}
		return errs.Persistence(err)
	}

	return nil
}

// GetProfileByID retrieves a profile by id
func (r *AccountRepo) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.getProfileByField(ctx, "id", id)
}

// GetProfileByEmail retrieves a profile by email
func (r *AccountRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return r.getProfileByField(ctx, "email", email)
}

func (r *AccountRepo) getProfileByField(ctx context.Context, field string, value interface{}) (*models.Profile, error) {
	query := `
		SELECT id, full_name, phone, country_code, email, role, password_hash, created_at
		FROM profiles
		WHERE ` + field + ` = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFoundf("profile not found")
		}
		return nil, errs.Persistence(err)
	}

	return &profile, nil
}

// UpdatePassword replaces the stored credential hash for a profile
func (r *AccountRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE profiles SET password_hash = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return errs.Persistence(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errs.Persistence(err)
	}
	if affected == 0 {
		return errs.NotFoundf("profile not found")
	}

	return nil
}
