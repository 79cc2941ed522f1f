package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

// blockingStatuses are the reservation states that occupy a vehicle's
// calendar. PENDING and CANCELLED reservations never block; a PENDING
// one is re-validated when it gets confirmed.
var blockingStatuses = []domain.ReservationStatus{
	domain.ReservationStatusConfirmed,
	domain.ReservationStatusCompleted,
}

// AvailabilityChecker decides whether a candidate date range is free on
// a vehicle. Read-only; run it against a transaction-bound repository
// when the answer guards a write.
type AvailabilityChecker struct {
	reservations repository.ReservationRepository
}

func NewAvailabilityChecker(reservations repository.ReservationRepository) *AvailabilityChecker {
	return &AvailabilityChecker{reservations: reservations}
}

// IsAvailable reports whether [pickup, returnDate) overlaps no
// CONFIRMED or COMPLETED reservation on the vehicle. excludeID skips
// one reservation, so a PENDING booking does not collide with itself
// at confirm time.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, vehicleID uuid.UUID, pickup, returnDate time.Time, excludeID *uuid.UUID) (bool, error) {
	if !pickup.Before(returnDate) {
		return false, domain.ErrInvalidRange
	}

	existing, err := c.reservations.ListByVehicle(ctx, vehicleID, blockingStatuses)
	if err != nil {
		return false, err
	}

	for _, r := range existing {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if pricing.RangesOverlap(pickup, returnDate, r.PickupDate, r.ReturnDate) {
			return false, nil
		}
	}
	return true, nil
}
