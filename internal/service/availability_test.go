package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
)

func TestAvailabilityChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()
	vehicleID := uuid.New()

	confirmed := domain.Reservation{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		PickupDate: day(5),
		ReturnDate: day(10),
		Status:     domain.ReservationStatusConfirmed,
	}

	t.Run("Free range", func(t *testing.T) {
		repo := new(MockReservationRepo)
		repo.On("ListByVehicle", ctx, vehicleID, blockingStatuses).
			Return([]domain.Reservation{confirmed}, nil)

		checker := NewAvailabilityChecker(repo)
		free, err := checker.IsAvailable(ctx, vehicleID, day(0), day(5), nil)
		assert.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("Overlapping range", func(t *testing.T) {
		repo := new(MockReservationRepo)
		repo.On("ListByVehicle", ctx, vehicleID, blockingStatuses).
			Return([]domain.Reservation{confirmed}, nil)

		checker := NewAvailabilityChecker(repo)
		free, err := checker.IsAvailable(ctx, vehicleID, day(8), day(12), nil)
		assert.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("Excluded reservation does not block itself", func(t *testing.T) {
		repo := new(MockReservationRepo)
		repo.On("ListByVehicle", ctx, vehicleID, blockingStatuses).
			Return([]domain.Reservation{confirmed}, nil)

		checker := NewAvailabilityChecker(repo)
		free, err := checker.IsAvailable(ctx, vehicleID, day(5), day(10), &confirmed.ID)
		assert.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("Invalid range", func(t *testing.T) {
		repo := new(MockReservationRepo)

		checker := NewAvailabilityChecker(repo)
		free, err := checker.IsAvailable(ctx, vehicleID, day(5), day(5), nil)
		assert.False(t, free)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		repo.AssertNotCalled(t, "ListByVehicle", ctx, vehicleID, blockingStatuses)
	})
}
