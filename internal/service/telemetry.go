package service

import (
	"context"

	"zipabout/internal/domain"
)

// rentalCompletedEvent is the APM custom event type for completed rentals.
const rentalCompletedEvent = "RentalCompleted"

// EventRecorder records custom APM events. *newrelic.Application satisfies it.
type EventRecorder interface {
	RecordCustomEvent(eventType string, params map[string]any)
}

// TelemetryObserver records a custom event for every completed rental.
type TelemetryObserver struct {
	recorder EventRecorder
}

// NewTelemetryObserver creates a TelemetryObserver.
func NewTelemetryObserver(recorder EventRecorder) *TelemetryObserver {
	return &TelemetryObserver{recorder: recorder}
}

// OnRentalCompleted implements RentalObserver.
func (o *TelemetryObserver) OnRentalCompleted(_ context.Context, rental domain.Rental) error {
	o.recorder.RecordCustomEvent(rentalCompletedEvent, map[string]any{
		"rentalId":        rental.ID,
		"vehicleId":       rental.VehicleID,
		"vehicleKind":     string(rental.Kind),
		"userId":          rental.UserID,
		"durationMinutes": rental.DurationMinutes(),
	})
	return nil
}
