package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
)

func reservationRows(ids ...uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "vehicle_id", "approved_by_id", "pickup_date", "return_date",
		"pickup_location", "status", "total_calculated_price", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, uuid.New(), uuid.New(), nil, now, now.AddDate(0, 0, 3), "Airport", "PENDING", "3000", now, now)
	}
	return rows
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rv := &domain.Reservation{
			CustomerID:     uuid.New(),
			VehicleID:      uuid.New(),
			PickupDate:     time.Now(),
			ReturnDate:     time.Now().AddDate(0, 0, 3),
			PickupLocation: "Airport",
			Status:         domain.ReservationStatusPending,
		}

		mock.ExpectExec("INSERT INTO reservations").
			WithArgs(sqlmock.AnyArg(), rv.CustomerID, rv.VehicleID, nil, rv.PickupDate, rv.ReturnDate,
				rv.PickupLocation, rv.Status, rv.TotalPrice, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, rv)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rv.ID)
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(id).
			WillReturnRows(reservationRows(id))

		rv, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, rv.ID)
		assert.Equal(t, domain.ReservationStatusPending, rv.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(id).
			WillReturnRows(reservationRows())

		rv, err := repo.GetByID(ctx, id)
		assert.Nil(t, rv)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_ListByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()
	vehicleID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(vehicleID, sqlmock.AnyArg()).
		WillReturnRows(reservationRows(uuid.New(), uuid.New()))

	reservations, err := repo.ListByVehicle(ctx, vehicleID, []domain.ReservationStatus{
		domain.ReservationStatusConfirmed,
		domain.ReservationStatusCompleted,
	})
	assert.NoError(t, err)
	assert.Len(t, reservations, 2)
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()
	id := uuid.New()
	approverID := uuid.New()

	t.Run("With approver", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status(.+)approved_by_id").
			WithArgs(domain.ReservationStatusConfirmed, approverID, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, id, domain.ReservationStatusConfirmed, &approverID)
		assert.NoError(t, err)
	})

	t.Run("Without approver", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(domain.ReservationStatusCancelled, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled, nil)
		assert.NoError(t, err)
	})

	t.Run("Unknown reservation", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(domain.ReservationStatusCancelled, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_ListPendingBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()
	cutoff := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(domain.ReservationStatusPending, cutoff).
		WillReturnRows(reservationRows(uuid.New()))

	reservations, err := repo.ListPendingBefore(ctx, cutoff)
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
}
