package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	jwtpkg "github.com/naqla-app/naqla/internal/pkg/jwt"
	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
)

// RegisterOTP starts the signup flow: validates the draft profile, parks it
// with a verification code, and "sends" the code. Delivery integration is the
// notifier's concern; here the code is logged.
func (u *AccountUC) RegisterOTP(ctx context.Context, req *models.RegisterRequest) error {
	ok, email := utils.ValidateEmail(req.Email)
	if !ok {
		return errs.Validationf("invalid email address")
	}
	ok, phone := utils.ValidatePhone(req.Phone)
	if !ok {
		return errs.Validationf("invalid phone number")
	}
	if req.FullName == "" {
		return errs.Validationf("full name is required")
	}
	if len(req.Password) < 8 {
		return errs.Validationf("password must be at least 8 characters")
	}
	if req.Role != models.RoleDriver && req.Role != models.RoleShipper {
		return errs.Validationf("role must be driver or shipper")
	}

	if _, err := u.accountRepo.GetProfileByEmail(ctx, email); err == nil {
		return errs.Duplicatef("profile already exists for %s", email)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errs.Persistence(err)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return errs.Persistence(err)
	}

	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = "+966"
	}

	signup := &models.PendingSignup{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        phone,
		CountryCode:  countryCode,
		Role:         req.Role,
		Code:         code,
	}

	ttl := time.Duration(u.cfg.Auth.OTPTTLMinutes) * time.Minute
	if err := u.accountRepo.StorePendingSignup(ctx, signup, ttl); err != nil {
		return err
	}

	logger.Info("Generated signup OTP",
		logger.String("email", email),
		logger.String("otp_code", code))

	return nil
}

// VerifyRegistration completes signup: checks the code, creates the profile
// and issues a token for the new identity.
func (u *AccountUC) VerifyRegistration(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error) {
	ok, email := utils.ValidateEmail(req.Email)
	if !ok {
		return nil, errs.Validationf("invalid email address")
	}

	signup, err := u.accountRepo.GetPendingSignup(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Authf("verification code not found or expired")
		}
		return nil, err
	}
	if signup.Code != req.Code {
		return nil, errs.Authf("invalid verification code")
	}

	profile := &models.Profile{
		ID:           uuid.New(),
		FullName:     signup.FullName,
		Phone:        signup.Phone,
		CountryCode:  signup.CountryCode,
		Email:        signup.Email,
		Role:         signup.Role,
		PasswordHash: signup.PasswordHash,
	}

	if err := u.accountRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := u.accountRepo.DeletePendingSignup(ctx, email); err != nil {
		logger.Warn("Failed to discard pending signup",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	return u.buildAuthResponse(profile)
}

// Login authenticates a profile by email and password
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	ok, email := utils.ValidateEmail(req.Email)
	if !ok {
		return nil, errs.Validationf("invalid email address")
	}

	profile, err := u.accountRepo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Authf("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.Authf("invalid credentials")
	}

	return u.buildAuthResponse(profile)
}

// AdminLogin authenticates a profile and requires the admin role
func (u *AccountUC) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	resp, err := u.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Profile.Role != models.RoleAdmin {
		return nil, errs.Authf("admin privileges required")
	}
	return resp, nil
}

// ForgotPassword issues a reset token for the account. Unknown emails are
// treated as a silent success so the endpoint does not leak registered
// addresses.
func (u *AccountUC) ForgotPassword(ctx context.Context, email string) error {
	ok, normalized := utils.ValidateEmail(email)
	if !ok {
		return errs.Validationf("invalid email address")
	}

	if _, err := u.accountRepo.GetProfileByEmail(ctx, normalized); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return errs.Persistence(err)
	}

	ttl := time.Duration(u.cfg.Auth.ResetTokenTTLMinutes) * time.Minute
	if err := u.accountRepo.StoreResetToken(ctx, normalized, token, ttl); err != nil {
		return err
	}

	logger.Info("Generated password reset token",
		logger.String("email", normalized),
		logger.String("token", token))

	return nil
}

// ResetPassword replaces the credential after verifying the reset token
func (u *AccountUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	ok, email := utils.ValidateEmail(req.Email)
	if !ok {
		return errs.Validationf("invalid email address")
	}
	if len(req.NewPassword) < 8 {
		return errs.Validationf("password must be at least 8 characters")
	}

	token, err := u.accountRepo.GetResetToken(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.Authf("reset token not found or expired")
		}
		return err
	}
	if token != req.Token {
		return errs.Authf("invalid reset token")
	}

	profile, err := u.accountRepo.GetProfileByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errs.Persistence(err)
	}

	if err := u.accountRepo.UpdatePassword(ctx, profile.ID, string(hash)); err != nil {
		return err
	}

	if err := u.accountRepo.DeleteResetToken(ctx, email); err != nil {
		logger.Warn("Failed to discard reset token",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	return nil
}

func (u *AccountUC) buildAuthResponse(profile *models.Profile) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(profile.ID, profile.Email, profile.Role, u.cfg)
	if err != nil {
		return nil, errs.Persistence(err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   profile,
	}, nil
}
