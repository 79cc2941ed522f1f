package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx, so
// every repository works both standalone and inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the postgres repositories and implements
// repository.Store. A Store built by NewStore runs each call on the
// pool; WithinTx hands fn a Store bound to a single transaction.
type Store struct {
	db           *sql.DB
	vehicles     repository.VehicleRepository
	reservations repository.ReservationRepository
	payments     repository.PaymentRepository
	customers    repository.CustomerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		vehicles:     NewVehicleRepository(db),
		reservations: NewReservationRepository(db),
		payments:     NewPaymentRepository(db),
		customers:    NewCustomerRepository(db),
	}
}

func newTxStore(tx *sql.Tx) *Store {
	return &Store{
		vehicles:     NewVehicleRepository(tx),
		reservations: NewReservationRepository(tx),
		payments:     NewPaymentRepository(tx),
		customers:    NewCustomerRepository(tx),
	}
}

func (s *Store) Vehicles() repository.VehicleRepository         { return s.vehicles }
func (s *Store) Reservations() repository.ReservationRepository { return s.reservations }
func (s *Store) Payments() repository.PaymentRepository         { return s.payments }
func (s *Store) Customers() repository.CustomerRepository       { return s.customers }

// WithinTx runs fn against a transaction-backed Store. The commit is
// all-or-nothing: any error from fn rolls everything back. Nested calls
// are rejected rather than silently flattened.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return domain.StorageErr(fmt.Errorf("nested transaction"))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StorageErr(err)
	}

	if err := fn(newTxStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.StorageErr(fmt.Errorf("rollback after %v: %w", err, rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.StorageErr(err)
	}
	return nil
}
