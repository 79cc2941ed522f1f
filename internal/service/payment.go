package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type paymentService struct {
	store repository.Store
}

func NewPaymentService(store repository.Store) PaymentService {
	return &paymentService{store: store}
}

func (s *paymentService) RecordDeposit(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentRecord, error) {
	if err := s.store.Payments().MarkPaid(ctx, paymentID, time.Now()); err != nil {
		return nil, err
	}
	logger.Info("Deposit recorded", "payment_id", paymentID)
	return s.store.Payments().GetByID(ctx, paymentID)
}

func (s *paymentService) RecordBalance(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentRecord, error) {
	if _, err := s.store.Payments().GetByID(ctx, paymentID); err != nil {
		return nil, err
	}
	if err := s.store.Payments().MarkPaid(ctx, paymentID, time.Now()); err != nil {
		return nil, err
	}
	logger.Info("Balance recorded", "payment_id", paymentID)
	return s.store.Payments().GetByID(ctx, paymentID)
}

// SettleReturn closes out a confirmed rental: computes the late fee for
// the actual return date, absorbs penalties from the deposit, refunds
// the remainder, and publishes the payment, reservation and vehicle
// updates in one transaction.
func (s *paymentService) SettleReturn(ctx context.Context, paymentID uuid.UUID, actualReturnDate time.Time, damageFee decimal.Decimal) (*SettlementResult, error) {
	if damageFee.IsNegative() {
		return nil, fmt.Errorf("damage fee cannot be negative: %w", domain.ErrInvalidState)
	}

	var result *SettlementResult

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		payment, err := tx.Payments().GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		reservation, err := tx.Reservations().GetByID(ctx, payment.ReservationID)
		if err != nil {
			return err
		}
		if reservation.Status != domain.ReservationStatusConfirmed {
			return fmt.Errorf("reservation must be CONFIRMED to process return (current %s): %w",
				reservation.Status, domain.ErrInvalidState)
		}
		vehicle, err := tx.Vehicles().GetByID(ctx, reservation.VehicleID)
		if err != nil {
			return err
		}

		lateFee := pricing.LateFee(reservation.ReturnDate, actualReturnDate, vehicle.DailyPrice)
		penalties := lateFee.Add(damageFee)

		// Penalties come out of the deposit; the deposit caps what this
		// engine collects. Anything beyond it is not billed here.
		refund := decimal.Zero
		if penalties.IsZero() {
			refund = payment.Deposit
		} else if penalties.LessThan(payment.Deposit) {
			refund = payment.Deposit.Sub(penalties)
		}

		status := domain.PaymentStatusPaid
		if refund.IsPositive() {
			status = domain.PaymentStatusRefunded
		}

		if err := tx.Payments().ApplySettlement(ctx, paymentID, lateFee, damageFee, refund, status); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, reservation.ID, domain.ReservationStatusCompleted, nil); err != nil {
			return err
		}
		if err := releaseVehicle(ctx, tx, vehicle.ID); err != nil {
			return err
		}

		payment.LateFeePenalty = lateFee
		payment.DamageFee = damageFee
		payment.RefundAmount = refund
		payment.Status = status
		reservation.Status = domain.ReservationStatusCompleted
		if vehicle.Status == domain.VehicleStatusRented {
			vehicle.Status = domain.VehicleStatusAvailable
		}
		result = &SettlementResult{Payment: payment, Reservation: reservation, Vehicle: vehicle}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Return settled",
		"payment_id", paymentID,
		"late_fee", result.Payment.LateFeePenalty,
		"damage_fee", result.Payment.DamageFee,
		"refund", result.Payment.RefundAmount)
	return result, nil
}

func (s *paymentService) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*domain.PaymentRecord, error) {
	return s.store.Payments().GetByReservation(ctx, reservationID)
}
