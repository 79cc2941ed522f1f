package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
}

// VehicleFilter narrows List results; zero values mean "no constraint".
type VehicleFilter struct {
	Category domain.VehicleCategory
	Status   domain.VehicleStatus
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
	// ListByVehicle returns every reservation for the vehicle whose
	// status is in statuses, ordered by pickup date.
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID, statuses []domain.ReservationStatus) ([]domain.Reservation, error)
	// ListPendingBefore returns PENDING reservations whose pickup date
	// is before the cutoff (stale requests the cron runner expires).
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
	// ListConfirmedOverdue returns CONFIRMED reservations whose
	// scheduled return date is before the cutoff.
	ListConfirmedOverdue(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus, approvedByID *uuid.UUID) error
}

// ReservationFilter narrows List results; nil/empty means "no constraint".
type ReservationFilter struct {
	CustomerID *uuid.UUID
	VehicleID  *uuid.UUID
	Status     domain.ReservationStatus
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.PaymentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	GetByReservation(ctx context.Context, reservationID uuid.UUID) (*domain.PaymentRecord, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	MarkRefunded(ctx context.Context, id uuid.UUID, refund decimal.Decimal) error
	// ApplySettlement writes the return-settlement amounts and final
	// status in one statement. Amounts are write-once per return event.
	ApplySettlement(ctx context.Context, id uuid.UUID, lateFee, damageFee, refund decimal.Decimal, status domain.PaymentStatus) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// Store is the persistence gateway consumed by the engine. WithinTx is
// the atomic-commit primitive: fn runs against a transaction-backed
// Store and either every write commits or none do.
type Store interface {
	Vehicles() VehicleRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Customers() CustomerRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}
