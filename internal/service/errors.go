package service

import "github.com/cockroachdb/errors"

var (
	// ErrUserAlreadyRenting is returned when a user with an active rental tries to book again.
	ErrUserAlreadyRenting = errors.New("user already has an active rental")

	// ErrVehicleUnavailable is returned when booking a vehicle that is already booked.
	ErrVehicleUnavailable = errors.New("vehicle unavailable")

	// ErrNotRentalOwner is returned when releasing a vehicle rented by someone else.
	ErrNotRentalOwner = errors.New("cannot release vehicle booked by another user")

	// ErrNoActiveRental is returned when releasing a vehicle with no active rental.
	ErrNoActiveRental = errors.New("no active rental found for this vehicle")

	// ErrRemovalDenied is returned when removing an admin or a user with an active rental.
	ErrRemovalDenied = errors.New("user removal denied")

	// ErrUserNotFound is returned when a user id is not registered.
	ErrUserNotFound = errors.New("user not found")

	// ErrVehicleNotFound is returned when a vehicle id is not registered.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrRentalNotFound is returned when a rental id does not exist.
	ErrRentalNotFound = errors.New("rental not found")

	// ErrDuplicateUser is returned when registering a user id twice.
	ErrDuplicateUser = errors.New("user already registered")

	// ErrDuplicateUsername is returned when registering a username that is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateVehicle is returned when registering a vehicle id twice.
	ErrDuplicateVehicle = errors.New("vehicle already registered")

	// ErrInvalidUserID is returned when user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidVehicleID is returned when vehicle ID is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
