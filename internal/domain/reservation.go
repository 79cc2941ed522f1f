package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

type Reservation struct {
	ID             uuid.UUID         `json:"id"`
	CustomerID     uuid.UUID         `json:"customer_id"`
	VehicleID      uuid.UUID         `json:"vehicle_id"`
	ApprovedByID   *uuid.UUID        `json:"approved_by_id,omitempty"`
	PickupDate     time.Time         `json:"pickup_date"`
	ReturnDate     time.Time         `json:"return_date"`
	PickupLocation string            `json:"pickup_location"`
	Status         ReservationStatus `json:"status"`
	TotalPrice     decimal.Decimal   `json:"total_calculated_price"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	// Populated on detail reads.
	Vehicle *Vehicle       `json:"vehicle,omitempty"`
	Payment *PaymentRecord `json:"payment_record,omitempty"`
}

// CanTransitionTo reports whether the reservation state machine permits
// moving from the current status to next. COMPLETED and CANCELLED are
// terminal; nothing re-enters PENDING.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case ReservationStatusPending:
		return next == ReservationStatusConfirmed || next == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return next == ReservationStatusCompleted || next == ReservationStatusCancelled
	default:
		return false
	}
}
