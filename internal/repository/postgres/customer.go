package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, first_name, last_name, email, phone FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("customer", id)
	}
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	return c, nil
}
