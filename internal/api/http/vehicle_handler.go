package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.VehicleFilter{
		Category: domain.VehicleCategory(q.Get("category")),
		Status:   domain.VehicleStatus(q.Get("status")),
		Search:   q.Get("search"),
	}
	if v := q.Get("minPrice"); v != "" {
		p, err := decimal.NewFromString(v)
		if err != nil {
			badRequest(w, "invalid minPrice")
			return
		}
		filter.MinPrice = &p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := decimal.NewFromString(v)
		if err != nil {
			badRequest(w, "invalid maxPrice")
			return
		}
		filter.MaxPrice = &p
	}

	vehicles, err := h.vehicles.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

type vehicleRequest struct {
	PlateNo    string          `json:"plate_no"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Category   string          `json:"category"`
	DailyPrice decimal.Decimal `json:"daily_price"`
	ImageURL   string          `json:"image_url"`
	Status     string          `json:"status"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	vehicle := &domain.Vehicle{
		PlateNo:    req.PlateNo,
		Brand:      req.Brand,
		Model:      req.Model,
		Category:   domain.VehicleCategory(req.Category),
		DailyPrice: req.DailyPrice,
		ImageURL:   req.ImageURL,
		Status:     domain.VehicleStatus(req.Status),
	}
	if err := h.vehicles.Create(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	vehicle := &domain.Vehicle{
		ID:         id,
		PlateNo:    req.PlateNo,
		Brand:      req.Brand,
		Model:      req.Model,
		Category:   domain.VehicleCategory(req.Category),
		DailyPrice: req.DailyPrice,
		ImageURL:   req.ImageURL,
		Status:     domain.VehicleStatus(req.Status),
	}
	if err := h.vehicles.Update(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id.String()})
}

func (h *VehicleHandler) BookedRanges(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid vehicle id")
		return
	}
	ranges, err := h.vehicles.BookedRanges(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranges)
}
