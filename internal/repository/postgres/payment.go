package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, reservation_id, pay_method, deposit, balance, late_fee_penalty, damage_fee, refund_amount, status, paid_at, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, p *domain.PaymentRecord) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	query := `INSERT INTO payment_records (id, reservation_id, pay_method, deposit, balance, late_fee_penalty, damage_fee, refund_amount, status, paid_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ReservationID, p.PayMethod, p.Deposit, p.Balance,
		p.LateFeePenalty, p.DamageFee, p.RefundAmount, p.Status, p.PaidAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domain.StorageErr(err)
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *paymentRepository) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE reservation_id = $1`
	return r.getOne(ctx, query, reservationID)
}

func (r *paymentRepository) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.PaymentRecord, error) {
	p := &domain.PaymentRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ReservationID, &p.PayMethod, &p.Deposit, &p.Balance,
		&p.LateFeePenalty, &p.DamageFee, &p.RefundAmount, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("payment record", id)
	}
	if err != nil {
		return nil, domain.StorageErr(err)
	}
	return p, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	query := `UPDATE payment_records SET status=$1, paid_at=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, domain.PaymentStatusPaid, paidAt, time.Now(), id)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "payment record", id)
}

func (r *paymentRepository) MarkRefunded(ctx context.Context, id uuid.UUID, refund decimal.Decimal) error {
	query := `UPDATE payment_records SET status=$1, refund_amount=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, domain.PaymentStatusRefunded, refund, time.Now(), id)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "payment record", id)
}

func (r *paymentRepository) ApplySettlement(ctx context.Context, id uuid.UUID, lateFee, damageFee, refund decimal.Decimal, status domain.PaymentStatus) error {
	query := `UPDATE payment_records SET late_fee_penalty=$1, damage_fee=$2, refund_amount=$3, status=$4, updated_at=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, lateFee, damageFee, refund, status, time.Now(), id)
	if err != nil {
		return domain.StorageErr(err)
	}
	return requireRow(res, "payment record", id)
}
