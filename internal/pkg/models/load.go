package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LoadStatus represents the lifecycle status of a load
type LoadStatus string

const (
	LoadStatusAvailable  LoadStatus = "available"
	LoadStatusPending    LoadStatus = "pending"
	LoadStatusInProgress LoadStatus = "in_progress"
	LoadStatusCompleted  LoadStatus = "completed"
	LoadStatusCancelled  LoadStatus = "cancelled"
)

// Product is one line item carried in a load
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
}

// ProductList is a JSONB-backed ordered list of products
type ProductList []Product

// Value implements driver.Valuer for JSONB storage
func (p ProductList) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB retrieval
func (p *ProductList) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type for ProductList: %T", src)
	}
}

// Load represents a shipment request posted by a shipper.
// driver_id is non-null exactly when status is in_progress or completed.
type Load struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	OwnerID           uuid.UUID   `json:"owner_id" db:"owner_id"`
	Origin            string      `json:"origin" db:"origin"`
	Destination       string      `json:"destination" db:"destination"`
	OriginLat         *float64    `json:"origin_lat" db:"origin_lat"`
	OriginLng         *float64    `json:"origin_lng" db:"origin_lng"`
	DestLat           *float64    `json:"dest_lat" db:"dest_lat"`
	DestLng           *float64    `json:"dest_lng" db:"dest_lng"`
	OriginGeohash     *string     `json:"-" db:"origin_geohash"`
	Weight            float64     `json:"weight" db:"weight"`
	Price             float64     `json:"price" db:"price"`
	TruckTypeRequired string      `json:"truck_type_required" db:"truck_type_required"`
	BodyType          string      `json:"body_type" db:"body_type"`
	Description       string      `json:"description" db:"description"`
	DistanceKm        *float64    `json:"distance_km" db:"distance_km"`
	Duration          *string     `json:"duration" db:"duration"`
	ReceiverName      string      `json:"receiver_name" db:"receiver_name"`
	ReceiverPhone     string      `json:"receiver_phone" db:"receiver_phone"`
	ReceiverAddress   string      `json:"receiver_address" db:"receiver_address"`
	Products          ProductList `json:"products,omitempty" db:"products"`
	Status            LoadStatus  `json:"status" db:"status"`
	DriverID          *uuid.UUID  `json:"driver_id" db:"driver_id"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" db:"updated_at"`
}

// Receiver holds delivery recipient details on a load draft
type Receiver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LoadDraft is the payload for posting a new load
type LoadDraft struct {
	Origin            string      `json:"origin"`
	Destination       string      `json:"destination"`
	OriginLat         *float64    `json:"origin_lat"`
	OriginLng         *float64    `json:"origin_lng"`
	DestLat           *float64    `json:"dest_lat"`
	DestLng           *float64    `json:"dest_lng"`
	Weight            float64     `json:"weight"`
	Price             float64     `json:"price"`
	TruckTypeRequired string      `json:"truck_type_required"`
	BodyType          string      `json:"body_type"`
	Description       string      `json:"description"`
	Receiver          Receiver    `json:"receiver"`
	Products          ProductList `json:"products"`
}

// LoadOwner carries the owning shipper's contact details on listing queries
type LoadOwner struct {
	OwnerFullName string `json:"owner_full_name" db:"owner_full_name"`
	OwnerPhone    string `json:"owner_phone" db:"owner_phone"`
}

// LoadWithOwner is the typed projection of a load joined with its owner
type LoadWithOwner struct {
	Load
	LoadOwner
}

// RouteEstimate is the routing service's answer for an origin/destination pair
type RouteEstimate struct {
	DistanceKm float64 `json:"distance_km"`
	Duration   string  `json:"duration"`
}

// LoadEvent is the message published on load lifecycle transitions
type LoadEvent struct {
	LoadID   uuid.UUID  `json:"load_id"`
	OwnerID  uuid.UUID  `json:"owner_id"`
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
	Status   LoadStatus `json:"status"`
	At       time.Time  `json:"at"`
}
