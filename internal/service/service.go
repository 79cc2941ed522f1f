package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// CreateReservationInput carries a booking request. The caller is
// trusted to have authenticated the customer; the engine only records
// the IDs it is given.
type CreateReservationInput struct {
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	PickupDate     time.Time
	ReturnDate     time.Time
	PickupLocation string
	PayMethod      domain.PayMethod
}

// SettlementResult is the triple of entities a return settlement
// publishes atomically.
type SettlementResult struct {
	Payment     *domain.PaymentRecord `json:"payment_record"`
	Reservation *domain.Reservation   `json:"reservation"`
	Vehicle     *domain.Vehicle       `json:"vehicle"`
}

type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, reservationID, approverID uuid.UUID) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	Complete(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	Get(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error)
}

type PaymentService interface {
	RecordDeposit(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentRecord, error)
	RecordBalance(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentRecord, error)
	SettleReturn(ctx context.Context, paymentID uuid.UUID, actualReturnDate time.Time, damageFee decimal.Decimal) (*SettlementResult, error)
	GetByReservation(ctx context.Context, reservationID uuid.UUID) (*domain.PaymentRecord, error)
}

type VehicleService interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error)
	// BookedRanges is the public availability calendar: the date ranges
	// of CONFIRMED and COMPLETED reservations on the vehicle.
	BookedRanges(ctx context.Context, vehicleID uuid.UUID) ([]domain.BookedRange, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, toEmail, toName, vehicleDesc string, scheduledReturn time.Time) error
}
