package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type reservationService struct {
	store repository.Store
}

func NewReservationService(store repository.Store) ReservationService {
	return &reservationService{store: store}
}

func (s *reservationService) Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	if !input.PickupDate.Before(input.ReturnDate) {
		return nil, domain.ErrInvalidRange
	}
	if input.PickupLocation == "" {
		return nil, fmt.Errorf("pickup location is required: %w", domain.ErrInvalidState)
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}

	checker := NewAvailabilityChecker(s.store.Reservations())
	free, err := checker.IsAvailable(ctx, input.VehicleID, input.PickupDate, input.ReturnDate, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrVehicleUnavailable
	}

	total := pricing.BaseCost(input.PickupDate, input.ReturnDate, vehicle.DailyPrice)

	reservation := &domain.Reservation{
		CustomerID:     input.CustomerID,
		VehicleID:      input.VehicleID,
		PickupDate:     input.PickupDate,
		ReturnDate:     input.ReturnDate,
		PickupLocation: input.PickupLocation,
		Status:         domain.ReservationStatusPending,
		TotalPrice:     total,
	}
	payment := &domain.PaymentRecord{
		PayMethod: input.PayMethod,
		Deposit:   pricing.DepositAmount(total),
		Balance:   pricing.BalanceAmount(total),
		Status:    domain.PaymentStatusPending,
	}

	// The reservation and its payment record are born together or not
	// at all.
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Reservations().Create(ctx, reservation); err != nil {
			return err
		}
		payment.ReservationID = reservation.ID
		return tx.Payments().Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		"reservation_id", reservation.ID,
		"vehicle_id", reservation.VehicleID,
		"total_price", reservation.TotalPrice)

	reservation.Payment = payment
	return reservation, nil
}

func (s *reservationService) Confirm(ctx context.Context, reservationID, approverID uuid.UUID) (*domain.Reservation, error) {
	var confirmed *domain.Reservation

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		reservation, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation.Status != domain.ReservationStatusPending {
			return fmt.Errorf("only PENDING reservations can be confirmed (current %s): %w",
				reservation.Status, domain.ErrInvalidTransition)
		}

		// Another booking may have been confirmed since this one was
		// created; re-validate against the committed state, skipping
		// the reservation being confirmed.
		checker := NewAvailabilityChecker(tx.Reservations())
		free, err := checker.IsAvailable(ctx, reservation.VehicleID, reservation.PickupDate, reservation.ReturnDate, &reservation.ID)
		if err != nil {
			return err
		}
		if !free {
			return domain.ErrVehicleUnavailable
		}

		if err := tx.Reservations().UpdateStatus(ctx, reservationID, domain.ReservationStatusConfirmed, &approverID); err != nil {
			return err
		}
		if err := tx.Vehicles().UpdateStatus(ctx, reservation.VehicleID, domain.VehicleStatusRented); err != nil {
			return err
		}

		reservation.Status = domain.ReservationStatusConfirmed
		reservation.ApprovedByID = &approverID
		confirmed = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation confirmed", "reservation_id", reservationID, "approved_by", approverID)
	return confirmed, nil
}

func (s *reservationService) Cancel(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	var cancelled *domain.Reservation

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		reservation, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if !reservation.CanTransitionTo(domain.ReservationStatusCancelled) {
			return fmt.Errorf("only PENDING or CONFIRMED reservations can be cancelled (current %s): %w",
				reservation.Status, domain.ErrInvalidTransition)
		}
		wasConfirmed := reservation.Status == domain.ReservationStatusConfirmed

		if err := tx.Reservations().UpdateStatus(ctx, reservationID, domain.ReservationStatusCancelled, nil); err != nil {
			return err
		}

		payment, err := tx.Payments().GetByReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if payment.Deposit.IsPositive() {
			if err := tx.Payments().MarkRefunded(ctx, payment.ID, payment.Deposit); err != nil {
				return err
			}
		}

		if wasConfirmed {
			if err := releaseVehicle(ctx, tx, reservation.VehicleID); err != nil {
				return err
			}
		}

		reservation.Status = domain.ReservationStatusCancelled
		cancelled = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled", "reservation_id", reservationID)
	return cancelled, nil
}

func (s *reservationService) Complete(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	var completed *domain.Reservation

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		reservation, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation.Status != domain.ReservationStatusConfirmed {
			return fmt.Errorf("only CONFIRMED reservations can be completed (current %s): %w",
				reservation.Status, domain.ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, reservationID, domain.ReservationStatusCompleted, nil); err != nil {
			return err
		}
		if err := releaseVehicle(ctx, tx, reservation.VehicleID); err != nil {
			return err
		}

		reservation.Status = domain.ReservationStatusCompleted
		completed = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation completed", "reservation_id", reservationID)
	return completed, nil
}

func (s *reservationService) Get(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	reservation, err := s.store.Reservations().GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if vehicle, err := s.store.Vehicles().GetByID(ctx, reservation.VehicleID); err == nil {
		reservation.Vehicle = vehicle
	}
	if payment, err := s.store.Payments().GetByReservation(ctx, reservationID); err == nil {
		reservation.Payment = payment
	}
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	return s.store.Reservations().List(ctx, filter)
}

// releaseVehicle frees a vehicle after a confirmed booking ends. Only a
// RENTED vehicle goes back to AVAILABLE; MAINTENANCE is set by staff
// out-of-band and must survive the release.
func releaseVehicle(ctx context.Context, tx repository.Store, vehicleID uuid.UUID) error {
	vehicle, err := tx.Vehicles().GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.Status != domain.VehicleStatusRented {
		return nil
	}
	return tx.Vehicles().UpdateStatus(ctx, vehicleID, domain.VehicleStatusAvailable)
}
