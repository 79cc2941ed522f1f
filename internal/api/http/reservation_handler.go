package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ReservationFilter{
		Status: domain.ReservationStatus(q.Get("status")),
	}
	if v := q.Get("customerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			badRequest(w, "invalid customerId")
			return
		}
		filter.CustomerID = &id
	}
	if v := q.Get("vehicleId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			badRequest(w, "invalid vehicleId")
			return
		}
		filter.VehicleID = &id
	}

	reservations, err := h.reservations.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	reservation, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

type createReservationRequest struct {
	CustomerID     string `json:"customer_id"`
	VehicleID      string `json:"vehicle_id"`
	PickupDate     string `json:"pickup_date"`
	ReturnDate     string `json:"return_date"`
	PickupLocation string `json:"pickup_location"`
	PayMethod      string `json:"pay_method"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		badRequest(w, "invalid customer_id")
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		badRequest(w, "invalid vehicle_id")
		return
	}
	pickup, err := time.Parse(time.RFC3339, req.PickupDate)
	if err != nil {
		badRequest(w, "invalid pickup_date, expected RFC3339")
		return
	}
	ret, err := time.Parse(time.RFC3339, req.ReturnDate)
	if err != nil {
		badRequest(w, "invalid return_date, expected RFC3339")
		return
	}
	method := domain.PayMethod(req.PayMethod)
	if method != domain.PayMethodCard && method != domain.PayMethodQRTransfer {
		badRequest(w, "pay_method must be CARD or QR_TRANSFER")
		return
	}

	reservation, err := h.reservations.Create(r.Context(), service.CreateReservationInput{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		PickupDate:     pickup,
		ReturnDate:     ret,
		PickupLocation: req.PickupLocation,
		PayMethod:      method,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

type confirmReservationRequest struct {
	ApprovedByID string `json:"approved_by_id"`
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	var req confirmReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	approverID, err := uuid.Parse(req.ApprovedByID)
	if err != nil {
		badRequest(w, "invalid approved_by_id")
		return
	}

	reservation, err := h.reservations.Confirm(r.Context(), id, approverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	reservation, err := h.reservations.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	reservation, err := h.reservations.Complete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}
