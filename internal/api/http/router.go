package http

import (
	"github.com/gorilla/mux"

	"carrental-backend/internal/service"
)

// NewRouter wires the REST surface over the booking engine. Request
// authentication belongs to an upstream gateway and is not handled
// here.
func NewRouter(vehicles service.VehicleService, reservations service.ReservationService, payments service.PaymentService) *mux.Router {
	vh := NewVehicleHandler(vehicles)
	rh := NewReservationHandler(reservations)
	ph := NewPaymentHandler(payments)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/vehicles", vh.List).Methods("GET")
	api.HandleFunc("/vehicles", vh.Create).Methods("POST")
	api.HandleFunc("/vehicles/{id}", vh.Get).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vh.Update).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", vh.Delete).Methods("DELETE")
	api.HandleFunc("/vehicles/{id}/availability", vh.BookedRanges).Methods("GET")

	api.HandleFunc("/reservations", rh.List).Methods("GET")
	api.HandleFunc("/reservations", rh.Create).Methods("POST")
	api.HandleFunc("/reservations/{id}", rh.Get).Methods("GET")
	api.HandleFunc("/reservations/{id}/confirm", rh.Confirm).Methods("PATCH")
	api.HandleFunc("/reservations/{id}/cancel", rh.Cancel).Methods("PATCH")
	api.HandleFunc("/reservations/{id}/complete", rh.Complete).Methods("PATCH")

	api.HandleFunc("/payments/{reservationId}", ph.GetByReservation).Methods("GET")
	api.HandleFunc("/payments/{id}/pay-deposit", ph.PayDeposit).Methods("PATCH")
	api.HandleFunc("/payments/{id}/pay-balance", ph.PayBalance).Methods("PATCH")
	api.HandleFunc("/payments/{id}/settle-return", ph.SettleReturn).Methods("PATCH")

	return r
}
