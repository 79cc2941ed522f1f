package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) GetByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := uuid.Parse(mux.Vars(r)["reservationId"])
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	payment, err := h.payments.GetByReservation(r.Context(), reservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) PayDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	payment, err := h.payments.RecordDeposit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) PayBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	payment, err := h.payments.RecordBalance(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

type settleReturnRequest struct {
	ActualReturnDate string           `json:"actual_return_date"`
	DamageFee        *decimal.Decimal `json:"damage_fee,omitempty"`
}

func (h *PaymentHandler) SettleReturn(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	var req settleReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	actualReturn, err := time.Parse(time.RFC3339, req.ActualReturnDate)
	if err != nil {
		badRequest(w, "invalid actual_return_date, expected RFC3339")
		return
	}
	damageFee := decimal.Zero
	if req.DamageFee != nil {
		damageFee = *req.DamageFee
	}

	result, err := h.payments.SettleReturn(r.Context(), id, actualReturn, damageFee)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
