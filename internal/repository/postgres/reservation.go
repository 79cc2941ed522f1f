package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_id, vehicle_id, approved_by_id, pickup_date, return_date, pickup_location, status, total_calculated_price, created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	now := time.Now()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	query := `INSERT INTO reservations (id, customer_id, vehicle_id, approved_by_id, pickup_date, return_date, pickup_location, status, total_calculated_price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		rv.ID, rv.CustomerID, rv.VehicleID, rv.ApprovedByID, rv.PickupDate, rv.ReturnDate,
		rv.PickupLocation, rv.Status, rv.TotalPrice, rv.CreatedAt, rv.UpdatedAt)
	if err != nil {
		return domain.StorageErr(err)
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("reservation", id)
	}
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	return rv, nil
}

func (r *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", idx)
		args = append(args, *filter.CustomerID)
		idx++
	}
	if filter.VehicleID != nil {
		query += fmt.Sprintf(" AND vehicle_id = $%d", idx)
		args = append(args, *filter.VehicleID)
		idx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	query += " ORDER BY created_at DESC"

	return r.queryReservations(ctx, query, args...)
}

func (r *reservationRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID, statuses []domain.ReservationStatus) ([]domain.Reservation, error) {
	codes := make([]string, len(statuses))
	for i, s := range statuses {
		codes[i] = string(s)
	}
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE vehicle_id = $1 AND status = ANY($2) ORDER BY pickup_date ASC`
	return r.queryReservations(ctx, query, vehicleID, pq.Array(codes))
}

func (r *reservationRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE status = $1 AND pickup_date < $2 ORDER BY pickup_date ASC`
	return r.queryReservations(ctx, query, domain.ReservationStatusPending, cutoff)
}

func (r *reservationRepository) ListConfirmedOverdue(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE status = $1 AND return_date < $2 ORDER BY return_date ASC`
	return r.queryReservations(ctx, query, domain.ReservationStatusConfirmed, cutoff)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus, approvedByID *uuid.UUID) error {
	var (
		res sql.Result
		err error
	)
	if approvedByID != nil {
		res, err = r.db.ExecContext(ctx,
			`UPDATE reservations SET status=$1, approved_by_id=$2, updated_at=$3 WHERE id=$4`,
			status, *approvedByID, time.Now(), id)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE reservations SET status=$1, updated_at=$2 WHERE id=$3`,
			status, time.Now(), id)
	}
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "reservation", id)
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, domain.StorageErr(err)
		}
		reservations = append(reservations, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageErr(err)
	}
	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	err := row.Scan(
		&rv.ID, &rv.CustomerID, &rv.VehicleID, &rv.ApprovedByID, &rv.PickupDate, &rv.ReturnDate,
		&rv.PickupLocation, &rv.Status, &rv.TotalPrice, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}
