package redis

import "zipabout/internal/domain"

func rentalOf(vehicleID string) domain.Rental {
	return domain.Rental{
		ID:        "R-1",
		VehicleID: vehicleID,
		Kind:      domain.VehicleKindEBike,
		Vehicle:   domain.VehicleDetails{Model: "FX+ 2"},
		Status:    domain.RentalStatusCompleted,
	}
}
