package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role is fixed at registration; there is no role-change operation.
const (
	RoleDriver  = "driver"
	RoleShipper = "shipper"
	RoleAdmin   = "admin"
)

// Profile represents an identity record for a system user
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        string    `json:"phone" db:"phone"`
	CountryCode  string    `json:"country_code" db:"country_code"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsDriver reports whether the profile belongs to a driver
func (p *Profile) IsDriver() bool {
	return p.Role == RoleDriver
}

// IsShipper reports whether the profile belongs to a shipper
func (p *Profile) IsShipper() bool {
	return p.Role == RoleShipper
}
