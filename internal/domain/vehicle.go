package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type VehicleCategory string

const (
	VehicleCategorySedan   VehicleCategory = "SEDAN"
	VehicleCategorySUV     VehicleCategory = "SUV"
	VehicleCategoryPickup  VehicleCategory = "PICKUP"
	VehicleCategoryVan     VehicleCategory = "VAN"
	VehicleCategoryHatchback VehicleCategory = "HATCHBACK"
)

type Vehicle struct {
	ID         uuid.UUID       `json:"id"`
	PlateNo    string          `json:"plate_no"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Category   VehicleCategory `json:"category"`
	DailyPrice decimal.Decimal `json:"daily_price"`
	ImageURL   string          `json:"image_url"`
	Status     VehicleStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BookedRange is one confirmed or completed reservation window on a
// vehicle's calendar.
type BookedRange struct {
	PickupDate time.Time         `json:"pickup_date"`
	ReturnDate time.Time         `json:"return_date"`
	Status     ReservationStatus `json:"status"`
}
