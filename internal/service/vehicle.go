package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{store: store}
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) error {
	if v.DailyPrice.IsNegative() {
		return fmt.Errorf("daily price cannot be negative: %w", domain.ErrInvalidState)
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.store.Vehicles().Create(ctx, v)
}

func (s *vehicleService) Get(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return s.store.Vehicles().GetByID(ctx, id)
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) error {
	if v.DailyPrice.IsNegative() {
		return fmt.Errorf("daily price cannot be negative: %w", domain.ErrInvalidState)
	}
	return s.store.Vehicles().Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Vehicles().Delete(ctx, id)
}

func (s *vehicleService) List(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	return s.store.Vehicles().List(ctx, filter)
}

func (s *vehicleService) BookedRanges(ctx context.Context, vehicleID uuid.UUID) ([]domain.BookedRange, error) {
	if _, err := s.store.Vehicles().GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	reservations, err := s.store.Reservations().ListByVehicle(ctx, vehicleID, blockingStatuses)
	if err != nil {
		return nil, err
	}
	ranges := make([]domain.BookedRange, 0, len(reservations))
	for _, r := range reservations {
		ranges = append(ranges, domain.BookedRange{
			PickupDate: r.PickupDate,
			ReturnDate: r.ReturnDate,
			Status:     r.Status,
		})
	}
	return ranges, nil
}
