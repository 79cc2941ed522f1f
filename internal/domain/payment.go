package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type PayMethod string

const (
	PayMethodCard       PayMethod = "CARD"
	PayMethodQRTransfer PayMethod = "QR_TRANSFER"
)

// PaymentRecord is the single payment ledger entry owned by a
// reservation. Deposit and balance are fixed at creation; late fee,
// damage fee and refund are written once, at return settlement.
type PaymentRecord struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	PayMethod     PayMethod       `json:"pay_method"`
	Deposit       decimal.Decimal `json:"deposit"`
	Balance       decimal.Decimal `json:"balance"`
	LateFeePenalty decimal.Decimal `json:"late_fee_penalty"`
	DamageFee     decimal.Decimal `json:"damage_fee"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	Status        PaymentStatus   `json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
