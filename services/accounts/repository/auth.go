package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/naqla-app/naqla/internal/pkg/constants"
	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// StorePendingSignup parks a registration payload until its OTP is verified.
// The TTL bounds how long the emailed code stays valid.
func (r *AccountRepo) StorePendingSignup(ctx context.Context, signup *models.PendingSignup, ttl time.Duration) error {
	encoded, err := signup.Encode()
	if err != nil {
		return errs.Persistence(err)
	}

	key := fmt.Sprintf(constants.KeySignupOTP, signup.Email)
	if err := r.redisClient.Set(ctx, key, encoded, ttl); err != nil {
		return errs.Persistence(err)
	}

	return nil
}

// GetPendingSignup retrieves a parked registration. An expired or missing
// entry returns NotFound.
func (r *AccountRepo) GetPendingSignup(ctx context.Context, email string) (*models.PendingSignup, error) {
	key := fmt.Sprintf(constants.KeySignupOTP, email)

	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NotFoundf("no pending signup for %s", email)
		}
		return nil, errs.Persistence(err)
	}

	signup, err := models.DecodePendingSignup(raw)
	if err != nil {
		return nil, errs.Persistence(err)
	}

	return signup, nil
}

// DeletePendingSignup discards a parked registration after use
func (r *AccountRepo) DeletePendingSignup(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeySignupOTP, email)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return errs.Persistence(err)
	}
	return nil
}

// StoreResetToken stores a password-reset token with a TTL
func (r *AccountRepo) StoreResetToken(ctx context.Context, email, token string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyResetToken, email)
	if err := r.redisClient.Set(ctx, key, token, ttl); err != nil {
		return errs.Persistence(err)
	}
	return nil
}

// GetResetToken retrieves the active reset token for an email, if any
func (r *AccountRepo) GetResetToken(ctx context.Context, email string) (string, error) {
	key := fmt.Sprintf(constants.KeyResetToken, email)

	token, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errs.NotFoundf("no active reset token for %s", email)
		}
		return "", errs.Persistence(err)
	}

	return token, nil
}

// DeleteResetToken discards a reset token after use
func (r *AccountRepo) DeleteResetToken(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyResetToken, email)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return errs.Persistence(err)
	}
	return nil
}
