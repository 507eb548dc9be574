package jobs

import (
	"context"
	"log/slog"
	"time"
)

// UsageReport logs completed-rental counts per vehicle and how many rentals
// remain before each one is due a maintenance check.
func (jr *JobRunner) UsageReport() {
	jr.runWithRecovery("UsageReport", func(ctx context.Context) {
		if jr.maintenance == nil {
			return
		}

		summary, err := jr.maintenance.UsageSummary(ctx)
		if err != nil {
			jr.logger.Error("failed to read vehicle usage", slog.String("error", err.Error()))
			return
		}

		var total int64
		for _, u := range summary {
			total += u.CompletedRentals
			jr.logger.Info("vehicle usage",
				slog.String("vehicle_id", u.VehicleID),
				slog.Int64("completed_rentals", u.CompletedRentals),
				slog.Int64("until_maintenance", jr.maintenance.RemainingBeforeMaintenance(u.CompletedRentals)),
			)
		}

		jr.logger.Info("usage report",
			slog.Int("vehicles", len(summary)),
			slog.Int64("completed_rentals", total),
		)
	})
}

// ActiveRentalsReport logs every rental still open, with how long it has run.
func (jr *JobRunner) ActiveRentalsReport() {
	jr.runWithRecovery("ActiveRentalsReport", func(ctx context.Context) {
		active := jr.registry.ActiveRentals()
		now := jr.registry.Now()

		for _, r := range active {
			jr.logger.Info("rental in progress",
				slog.String("rental_id", r.ID),
				slog.String("user_id", r.UserID),
				slog.String("vehicle_id", r.VehicleID),
				slog.Duration("elapsed", now.Sub(r.StartTime).Truncate(time.Minute)),
			)
		}

		jr.logger.Info("active rentals report",
			slog.Int("active", len(active)),
			slog.Int("fleet", len(jr.registry.Vehicles())),
		)
	})
}
