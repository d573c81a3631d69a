package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

// SendOverdueReminders emails customers whose open rentals are past the
// planned end date. Read-only with respect to rental state: the final total
// is only fixed when the return is actually recorded.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := jr.now().UTC().Truncate(24 * time.Hour)

		open := true
		rentals, err := jr.rentalRepo.List(ctx, repository.RentalFilter{Open: &open})
		if err != nil {
			logger.Error("Failed to list open rentals", "error", err)
			return
		}

		count := 0
		for i := range rentals {
			rt := &rentals[i]
			if !rt.EndDate.Before(today) {
				continue
			}

			customer, err := jr.customerRepo.GetByID(ctx, rt.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for overdue rental",
					"rental_id", rt.ID, "customer_id", rt.CustomerID, "error", err)
				continue
			}

			if err := jr.emailSvc.SendOverdueReminder(ctx, customer.Email, customer.Name, rt); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rt.ID, "customer_id", customer.ID, "error", err)
				continue
			}

			logger.Debug("Sent overdue reminder",
				"rental_id", rt.ID, "customer_id", customer.ID,
				"due", rt.EndDate.Format(billing.DateFormat))
			count++
		}

		logger.Info("Overdue reminders sent", "count", count)
	})
}
