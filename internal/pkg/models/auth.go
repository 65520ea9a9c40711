package models

import "encoding/json"

// RegisterRequest starts the OTP signup flow
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
	Role        string `json:"role"`
}

// VerifyRequest completes signup with the emailed code
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest is a password login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts the credential-reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the credential-reset flow
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// PendingSignup is the registration payload parked until OTP verification
type PendingSignup struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	CountryCode  string `json:"country_code"`
	Role         string `json:"role"`
	Code         string `json:"code"`
}

// Encode serializes the pending signup for the token store
func (p *PendingSignup) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodePendingSignup deserializes a pending signup from the token store
func DecodePendingSignup(raw string) (*PendingSignup, error) {
	var p PendingSignup
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	Profile   *Profile `json:"profile"`
}
