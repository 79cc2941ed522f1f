package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, plate_no, brand, model, category, daily_price, image_url, status, created_at, updated_at`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	query := `INSERT INTO vehicles (id, plate_no, brand, model, category, daily_price, image_url, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, v.ID, v.PlateNo, v.Brand, v.Model, v.Category, v.DailyPrice, v.ImageURL, v.Status, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return domain.StorageErr(err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.PlateNo, &v.Brand, &v.Model, &v.Category, &v.DailyPrice, &v.ImageURL, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle", id)
	}
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET plate_no=$1, brand=$2, model=$3, category=$4, daily_price=$5, image_url=$6, status=$7, updated_at=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, v.PlateNo, v.Brand, v.Model, v.Category, v.DailyPrice, v.ImageURL, v.Status, time.Now(), v.ID)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "vehicle", v.ID)
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "vehicle", id)
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "vehicle", id)
}

func (r *vehicleRepository) List(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, filter.Category)
		idx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND daily_price >= $%d", idx)
		args = append(args, *filter.MinPrice)
		idx++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND daily_price <= $%d", idx)
		args = append(args, *filter.MaxPrice)
		idx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (brand ILIKE $%d OR model ILIKE $%d OR plate_no ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.PlateNo, &v.Brand, &v.Model, &v.Category, &v.DailyPrice, &v.ImageURL, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, domain.StorageErr(err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageErr(err)
	}
	return vehicles, nil
}

// requireRow converts a zero-row update into a NotFound error.
func requireRow(res sql.Result, entity string, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StorageErr(err)
	}
	if n == 0 {
		return domain.NotFoundf(entity, id)
	}
	return nil
}
