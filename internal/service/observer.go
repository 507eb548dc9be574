package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"zipabout/internal/domain"
)

// RentalObserver is notified synchronously whenever a rental is completed.
type RentalObserver interface {
	OnRentalCompleted(ctx context.Context, rental domain.Rental) error
}

// ObserverFunc adapts a function to RentalObserver.
type ObserverFunc func(ctx context.Context, rental domain.Rental) error

// OnRentalCompleted calls f.
func (f ObserverFunc) OnRentalCompleted(ctx context.Context, rental domain.Rental) error {
	return f(ctx, rental)
}

// notifyRentalCompleted calls each observer in order. A failing or panicking
// observer is logged and skipped; the release itself still succeeds.
func (r *RentalRegistry) notifyRentalCompleted(ctx context.Context, observers []RentalObserver, rental domain.Rental) {
	for _, obs := range observers {
		if err := notifyOne(ctx, obs, rental); err != nil {
			r.logger.Warn("rental observer failed",
				slog.String("observer", fmt.Sprintf("%T", obs)),
				slog.String("rental_id", rental.ID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func notifyOne(ctx context.Context, obs RentalObserver, rental domain.Rental) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("observer panicked: %v", p)
		}
	}()
	return obs.OnRentalCompleted(ctx, rental)
}
