package service

import (
	"context"

	"github.com/google/uuid"

	"zipabout/internal/domain"
)

// DefaultFleet returns the starter fleet registered into an empty registry.
func DefaultFleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		domain.NewVehicle(uuid.New().String(), domain.VehicleKindEBike,
			domain.VehicleDetails{Make: "Trek", Model: "FX+ 2", AssetCode: "EB-001"}),
		domain.NewVehicle(uuid.New().String(), domain.VehicleKindEScooter,
			domain.VehicleDetails{Make: "Xiaomi", Model: "Pro 2", AssetCode: "ES-001"}),
		domain.NewVehicle(uuid.New().String(), domain.VehicleKindBike,
			domain.VehicleDetails{Make: "Giant", Model: "Escape 3", AssetCode: "BK-001"}),
	}
}

// SeedVehiclesIfEmpty registers DefaultFleet when no vehicle is registered yet.
// It reports whether seeding happened.
func (r *RentalRegistry) SeedVehiclesIfEmpty(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.vehicles) > 0 {
		return false, nil
	}
	for _, v := range DefaultFleet() {
		if err := r.registerVehicleLocked(v); err != nil {
			return false, err
		}
	}
	return true, nil
}
