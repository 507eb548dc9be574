package repository

import (
	"context"

	"zipabout/internal/domain"
)

// RentalArchive stores terminal rentals for audit.
type RentalArchive interface {
	// Create appends a rental record.
	Create(ctx context.Context, rental domain.Rental) error

	// ListByVehicle retrieves archived rentals of a vehicle, newest first.
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Rental, error)
}
