package service

import (
	"time"

	"github.com/cockroachdb/errors"

	"zipabout/internal/domain"
)

// Read methods return detached copies. Mutating a result never changes registry state.

// Now returns the registry clock's current time.
func (r *RentalRegistry) Now() time.Time {
	return r.clock.Now()
}

// Users returns all registered users in registration order.
func (r *RentalRegistry) Users() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u.Snapshot())
	}
	return result
}

// User returns the user with the given id.
func (r *RentalRegistry) User(id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.usersByID[id]
	if !ok {
		return domain.User{}, errors.Wrapf(ErrUserNotFound, "user %s", id)
	}
	return u.Snapshot(), nil
}

// Vehicles returns all registered vehicles in registration order.
func (r *RentalRegistry) Vehicles() []domain.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		result = append(result, *v)
	}
	return result
}

// Vehicle returns the vehicle with the given id.
func (r *RentalRegistry) Vehicle(id string) (domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehiclesByID[id]
	if !ok {
		return domain.Vehicle{}, errors.Wrapf(ErrVehicleNotFound, "vehicle %s", id)
	}
	return *v, nil
}

// Rental returns the rental with the given id.
func (r *RentalRegistry) Rental(id string) (domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rental, ok := r.rentalsByID[id]
	if !ok {
		return domain.Rental{}, errors.Wrapf(ErrRentalNotFound, "rental %s", id)
	}
	return rental.Snapshot(), nil
}

// AllRentals returns every rental in booking order.
func (r *RentalRegistry) AllRentals() []domain.Rental {
	return r.filterRentals(func(*domain.Rental) bool { return true })
}

// ActiveRentals returns all ACTIVE rentals.
func (r *RentalRegistry) ActiveRentals() []domain.Rental {
	return r.filterRentals(func(rental *domain.Rental) bool {
		return rental.IsActive()
	})
}

// ActiveRentalForVehicle returns the vehicle's active rental, if any.
func (r *RentalRegistry) ActiveRentalForVehicle(vehicleID string) (domain.Rental, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rental := range r.rentals {
		if rental.IsActive() && rental.VehicleID == vehicleID {
			return rental.Snapshot(), true
		}
	}
	return domain.Rental{}, false
}

// RentalsForUser returns every rental booked by the user.
func (r *RentalRegistry) RentalsForUser(userID string) []domain.Rental {
	return r.filterRentals(func(rental *domain.Rental) bool {
		return rental.UserID == userID
	})
}

// ActiveRentalsForUser returns the user's ACTIVE rentals.
func (r *RentalRegistry) ActiveRentalsForUser(userID string) []domain.Rental {
	return r.filterRentals(func(rental *domain.Rental) bool {
		return rental.IsActive() && rental.UserID == userID
	})
}

// PastRentalsForUser returns the user's completed and cancelled rentals.
func (r *RentalRegistry) PastRentalsForUser(userID string) []domain.Rental {
	return r.filterRentals(func(rental *domain.Rental) bool {
		return !rental.IsActive() && rental.UserID == userID
	})
}

// PastRentalsForVehicle returns the vehicle's completed and cancelled rentals.
func (r *RentalRegistry) PastRentalsForVehicle(vehicleID string) []domain.Rental {
	return r.filterRentals(func(rental *domain.Rental) bool {
		return !rental.IsActive() && rental.VehicleID == vehicleID
	})
}

// UserHasActiveRental reports whether the user currently holds an active rental.
func (r *RentalRegistry) UserHasActiveRental(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.activeByUser[userID]
	return ok
}

func (r *RentalRegistry) filterRentals(keep func(*domain.Rental) bool) []domain.Rental {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Rental, 0)
	for _, rental := range r.rentals {
		if keep(rental) {
			result = append(result, rental.Snapshot())
		}
	}
	return result
}
