package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverDetails represents a driver's declared vehicle capability record.
// At most one row exists per driver profile, keyed by owner_id.
type DriverDetails struct {
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	TruckType   string    `json:"truck_type" db:"truck_type"`
	BodyType    string    `json:"body_type" db:"body_type"`
	Dimensions  string    `json:"dimensions" db:"dimensions"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DriverDetailsInput is the payload for vehicle registration
type DriverDetailsInput struct {
	TruckType   string `json:"truck_type"`
	BodyType    string `json:"body_type"`
	Dimensions  string `json:"dimensions"`
	PlateNumber string `json:"plate_number"`
}

// AvailableDriver is the projection returned by the available-drivers listing:
// a driver profile joined with its (possibly absent) fleet record. Drivers who
// have not completed vehicle registration appear with empty vehicle fields.
type AvailableDriver struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Phone       string    `json:"phone" db:"phone"`
	TruckType   *string   `json:"truck_type" db:"truck_type"`
	BodyType    *string   `json:"body_type" db:"body_type"`
	IsAvailable *bool     `json:"is_available" db:"is_available"`
}

// Truck represents an additional truck registered to a carrier account
type Truck struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	Brand       string    `json:"brand" db:"brand"`
	ModelYear   int       `json:"model_year" db:"model_year"`
	TruckType   string    `json:"truck_type" db:"truck_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TruckInput is the payload for adding a truck
type TruckInput struct {
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	ModelYear   int    `json:"model_year"`
	TruckType   string `json:"truck_type"`
}

// SubDriver represents a company driver attached to a carrier account
type SubDriver struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CarrierID   uuid.UUID `json:"carrier_id" db:"carrier_id"`
	DriverName  string    `json:"driver_name" db:"driver_name"`
	DriverPhone string    `json:"driver_phone" db:"driver_phone"`
	IDNumber    string    `json:"id_number" db:"id_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SubDriverInput is the payload for adding a sub-driver
type SubDriverInput struct {
	DriverName  string `json:"driver_name"`
	DriverPhone string `json:"driver_phone"`
	IDNumber    string `json:"id_number"`
}
