package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		v := &domain.Vehicle{
			PlateNo:    "AB-1234",
			Brand:      "Toyota",
			Model:      "Corolla",
			Category:   domain.VehicleCategorySedan,
			DailyPrice: decimal.NewFromInt(1000),
			Status:     domain.VehicleStatusAvailable,
		}

		mock.ExpectExec("INSERT INTO vehicles").
			WithArgs(sqlmock.AnyArg(), v.PlateNo, v.Brand, v.Model, v.Category, v.DailyPrice, v.ImageURL, v.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, v.ID)
	})
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "plate_no", "brand", "model", "category", "daily_price", "image_url", "status", "created_at", "updated_at"}).
			AddRow(id, "AB-1234", "Toyota", "Corolla", "SEDAN", "1000", "", "AVAILABLE", now, now)

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		v, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "AB-1234", v.PlateNo)
		assert.True(t, v.DailyPrice.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		v, err := repo.GetByID(ctx, id)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVehicleRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, id, domain.VehicleStatusRented)
		assert.NoError(t, err)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, id, domain.VehicleStatusRented)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVehicleRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Filtered by category and status", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "plate_no", "brand", "model", "category", "daily_price", "image_url", "status", "created_at", "updated_at"}).
			AddRow(uuid.New(), "AB-1234", "Toyota", "Corolla", "SEDAN", "1000", "", "AVAILABLE", now, now).
			AddRow(uuid.New(), "CD-5678", "Honda", "Civic", "SEDAN", "1100", "", "AVAILABLE", now, now)

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE 1=1 AND category").
			WithArgs(domain.VehicleCategorySedan, domain.VehicleStatusAvailable).
			WillReturnRows(rows)

		vehicles, err := repo.List(ctx, repository.VehicleFilter{
			Category: domain.VehicleCategorySedan,
			Status:   domain.VehicleStatusAvailable,
		})
		assert.NoError(t, err)
		assert.Len(t, vehicles, 2)
	})

	t.Run("Empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE 1=1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "plate_no", "brand", "model", "category", "daily_price", "image_url", "status", "created_at", "updated_at"}))

		vehicles, err := repo.List(ctx, repository.VehicleFilter{})
		assert.NoError(t, err)
		assert.Empty(t, vehicles)
	})
}
