package jobs

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/logger"
)

// ExpireStalePendingReservations cancels PENDING reservations whose
// pickup date passed without staff confirmation. Cancellation goes
// through the reservation service so the deposit refund rules apply.
func (jr *JobRunner) ExpireStalePendingReservations() {
	jr.runWithRecovery("ExpireStalePendingReservations", func() {
		ctx := context.Background()

		stale, err := jr.store.Reservations().ListPendingBefore(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list stale pending reservations", "error", err)
			return
		}
		if len(stale) == 0 {
			return
		}

		cancelled := 0
		for _, r := range stale {
			if _, err := jr.services.Reservation.Cancel(ctx, r.ID); err != nil {
				// Staff may have confirmed or cancelled it since the list
				// was read; skip and move on.
				logger.Warn("Failed to expire stale reservation", "reservation_id", r.ID, "error", err)
				continue
			}
			cancelled++
			logger.Debug("Expired stale reservation",
				"reservation_id", r.ID,
				"vehicle_id", r.VehicleID,
				"pickup_date", r.PickupDate.Format("2006-01-02"))
		}
		logger.Info("Expired stale pending reservations", "count", cancelled, "candidates", len(stale))
	})
}

// SendOverdueReminders emails customers whose CONFIRMED reservation is
// past its scheduled return date. Read-only with respect to reservation
// state; settlement happens at the counter via the payment engine.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.Reservations().ListConfirmedOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue reservations", "error", err)
			return
		}
		if len(overdue) == 0 {
			return
		}

		sent := 0
		for _, r := range overdue {
			customer, err := jr.store.Customers().GetByID(ctx, r.CustomerID)
			if err != nil {
				logger.Warn("Failed to load customer for overdue reminder", "reservation_id", r.ID, "error", err)
				continue
			}
			vehicle, err := jr.store.Vehicles().GetByID(ctx, r.VehicleID)
			if err != nil {
				logger.Warn("Failed to load vehicle for overdue reminder", "reservation_id", r.ID, "error", err)
				continue
			}

			vehicleDesc := fmt.Sprintf("%s %s (%s)", vehicle.Brand, vehicle.Model, vehicle.PlateNo)
			name := fmt.Sprintf("%s %s", customer.FirstName, customer.LastName)
			if err := jr.services.Email.SendOverdueReminder(ctx, customer.Email, name, vehicleDesc, r.ReturnDate); err != nil {
				logger.Warn("Failed to send overdue reminder", "reservation_id", r.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent overdue reminders", "count", sent, "overdue", len(overdue))
	})
}
