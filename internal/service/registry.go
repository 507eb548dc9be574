package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	"zipabout/internal/clock"
	"zipabout/internal/domain"
)

// loyaltyFreeCompletions is how many completed rentals a user needs before
// each further completion earns a loyalty point.
const loyaltyFreeCompletions = 3

// RentalRegistry is the single source of truth for users, vehicles and rentals.
// It is the only writer of booking state and enforces one active rental per
// vehicle and one active rental per user.
//
// All mutations are serialized behind mu. Observers run after mu is released,
// on the releasing goroutine, so they may call any registry method. Releases
// that race each other may notify in either order; observers must be safe for
// concurrent use.
type RentalRegistry struct {
	mu sync.Mutex

	clock  clock.Clock
	logger *slog.Logger

	users     []*domain.User
	vehicles  []*domain.Vehicle
	rentals   []*domain.Rental
	observers []RentalObserver

	usersByID       map[string]*domain.User
	usersByName     map[string]*domain.User
	vehiclesByID    map[string]*domain.Vehicle
	rentalsByID     map[string]*domain.Rental
	activeByUser    map[string]*domain.Rental
	activeByVehicle map[string]*domain.Rental
}

// NewRentalRegistry creates an empty registry.
func NewRentalRegistry(clk clock.Clock, logger *slog.Logger) *RentalRegistry {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RentalRegistry{
		clock:           clk,
		logger:          logger,
		usersByID:       make(map[string]*domain.User),
		usersByName:     make(map[string]*domain.User),
		vehiclesByID:    make(map[string]*domain.Vehicle),
		rentalsByID:     make(map[string]*domain.Rental),
		activeByUser:    make(map[string]*domain.Rental),
		activeByVehicle: make(map[string]*domain.Rental),
	}
}

// AddObserver registers an observer. Observers are notified in registration order.
func (r *RentalRegistry) AddObserver(observer RentalObserver) {
	if observer == nil {
		panic("service: nil RentalObserver")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, observer)
}

// RegisterUser adds a user. The registry takes ownership of the pointer.
func (r *RentalRegistry) RegisterUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		panic("service: RegisterUser called with nil user")
	}
	if user.ID == "" {
		return ErrInvalidUserID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.usersByID[user.ID]; exists {
		return errors.Wrapf(ErrDuplicateUser, "user %s", user.ID)
	}
	if _, exists := r.usersByName[user.Username]; exists && user.Username != "" {
		return errors.Wrapf(ErrDuplicateUsername, "username %q", user.Username)
	}
	user.CreatedAt = r.clock.Now()
	r.users = append(r.users, user)
	if user.Username != "" {
		r.usersByName[user.Username] = user
	}
	r.usersByID[user.ID] = user

	r.logger.Info("user registered", slog.String("user_id", user.ID), slog.String("name", user.Name))
	return nil
}

// RegisterVehicle adds a vehicle. The registry takes ownership of the pointer.
func (r *RentalRegistry) RegisterVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		panic("service: RegisterVehicle called with nil vehicle")
	}
	if vehicle.ID == "" {
		return ErrInvalidVehicleID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerVehicleLocked(vehicle)
}

func (r *RentalRegistry) registerVehicleLocked(vehicle *domain.Vehicle) error {
	if _, exists := r.vehiclesByID[vehicle.ID]; exists {
		return errors.Wrapf(ErrDuplicateVehicle, "vehicle %s", vehicle.ID)
	}
	r.vehicles = append(r.vehicles, vehicle)
	r.vehiclesByID[vehicle.ID] = vehicle

	r.logger.Info("vehicle registered",
		slog.String("vehicle_id", vehicle.ID),
		slog.String("type", vehicle.Type()),
		slog.String("model", vehicle.Model()),
	)
	return nil
}

// BookVehicle creates an active rental of vehicleID for userID.
func (r *RentalRegistry) BookVehicle(ctx context.Context, userID, vehicleID string) (domain.Rental, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rental{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, vehicle, err := r.lookup(userID, vehicleID)
	if err != nil {
		return domain.Rental{}, err
	}

	if _, renting := r.activeByUser[user.ID]; renting {
		r.logger.Info("booking rejected: user already renting", slog.String("user_id", user.ID))
		return domain.Rental{}, errors.Wrapf(ErrUserAlreadyRenting, "user %s", user.ID)
	}

	if !vehicle.IsAvailable() {
		r.logger.Info("booking rejected: vehicle unavailable",
			slog.String("vehicle_id", vehicle.ID),
			slog.String("booked_by", vehicle.CurrentUserID()),
		)
		return domain.Rental{}, errors.Wrapf(ErrVehicleUnavailable, "vehicle %s", vehicle.ID)
	}

	rentalID := fmt.Sprintf("R-%d", len(r.rentals)+1)
	rental := domain.NewRental(rentalID, user, vehicle, r.clock.Now())

	r.rentals = append(r.rentals, rental)
	r.rentalsByID[rental.ID] = rental
	r.activeByUser[user.ID] = rental
	r.activeByVehicle[vehicle.ID] = rental
	user.AddRental(rental.ID)

	r.logger.Info("vehicle booked",
		slog.String("rental_id", rental.ID),
		slog.String("user", user.Name),
		slog.String("model", vehicle.Model()),
	)
	return rental.Snapshot(), nil
}

// ReleaseVehicle completes userID's active rental of vehicleID and updates the
// user's loyalty standing, then notifies observers. Loyalty is committed with
// the completion under one lock, so observers already see the updated user.
func (r *RentalRegistry) ReleaseVehicle(ctx context.Context, userID, vehicleID string) (domain.Rental, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rental{}, err
	}

	r.mu.Lock()

	user, vehicle, err := r.lookup(userID, vehicleID)
	if err != nil {
		r.mu.Unlock()
		return domain.Rental{}, err
	}

	rental, err := r.findOwnedActiveRental(user, vehicle)
	if err != nil {
		r.mu.Unlock()
		return domain.Rental{}, err
	}

	rental.Complete(r.clock.Now())
	r.closeRental(rental)

	user.IncrementCompletedRentals()
	if user.CompletedRentals() > loyaltyFreeCompletions {
		user.AddLoyaltyPoints(1)
	}
	if user.CheckAndUpdateVIPStatus() {
		r.logger.Info("user has become a VIP", slog.String("user_id", user.ID), slog.String("name", user.Name))
	}

	r.logger.Info("vehicle released",
		slog.String("rental_id", rental.ID),
		slog.String("model", vehicle.Model()),
		slog.Int("completed_rentals", user.CompletedRentals()),
		slog.Int("loyalty_points", user.LoyaltyPoints()),
	)

	snapshot := rental.Snapshot()
	observers := append([]RentalObserver(nil), r.observers...)

	r.mu.Unlock()

	// The rental is already complete; a caller hanging up must not cut
	// observers short.
	r.notifyRentalCompleted(context.WithoutCancel(ctx), observers, snapshot)
	return snapshot, nil
}

// CancelRental cancels userID's active rental of vehicleID. Cancellation frees
// the vehicle but earns no loyalty and notifies no observers.
func (r *RentalRegistry) CancelRental(ctx context.Context, userID, vehicleID string) (domain.Rental, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rental{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, vehicle, err := r.lookup(userID, vehicleID)
	if err != nil {
		return domain.Rental{}, err
	}

	rental, err := r.findOwnedActiveRental(user, vehicle)
	if err != nil {
		return domain.Rental{}, err
	}

	rental.Cancel(r.clock.Now())
	r.closeRental(rental)

	r.logger.Info("rental cancelled", slog.String("rental_id", rental.ID), slog.String("user_id", user.ID))
	return rental.Snapshot(), nil
}

// RemoveUser removes a user from the registry. Admins and users holding an
// active rental cannot be removed. Past rentals keep the user's id and name.
func (r *RentalRegistry) RemoveUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.usersByID[userID]
	if !ok {
		return errors.Wrapf(ErrUserNotFound, "user %s", userID)
	}
	if user.IsAdmin() {
		return errors.Wrap(ErrRemovalDenied, "user is an administrator")
	}
	for _, rental := range r.rentals {
		if rental.IsActive() && rental.UserID == user.ID {
			return errors.Wrapf(ErrRemovalDenied, "user holds active rental %s", rental.ID)
		}
	}

	for i, u := range r.users {
		if u == user {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	delete(r.usersByID, user.ID)
	delete(r.usersByName, user.Username)

	r.logger.Info("user removed", slog.String("user_id", user.ID))
	return nil
}

// RedeemFreeRide spends loyalty points on a free ride for userID.
func (r *RentalRegistry) RedeemFreeRide(ctx context.Context, userID string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.usersByID[userID]
	if !ok {
		return domain.User{}, errors.Wrapf(ErrUserNotFound, "user %s", userID)
	}
	if err := user.RedeemFreeRide(); err != nil {
		return domain.User{}, err
	}

	r.logger.Info("free ride redeemed", slog.String("user_id", user.ID), slog.Int("remaining_points", user.LoyaltyPoints()))
	return user.Snapshot(), nil
}

// Authenticate returns the user whose username and password match.
func (r *RentalRegistry) Authenticate(username, password string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.usersByName[username]
	if !ok || !user.CheckPassword(password) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user.Snapshot(), nil
}

// lookup resolves ids to registered records. Callers must hold mu.
func (r *RentalRegistry) lookup(userID, vehicleID string) (*domain.User, *domain.Vehicle, error) {
	if userID == "" {
		return nil, nil, ErrInvalidUserID
	}
	if vehicleID == "" {
		return nil, nil, ErrInvalidVehicleID
	}
	user, ok := r.usersByID[userID]
	if !ok {
		return nil, nil, errors.Wrapf(ErrUserNotFound, "user %s", userID)
	}
	vehicle, ok := r.vehiclesByID[vehicleID]
	if !ok {
		return nil, nil, errors.Wrapf(ErrVehicleNotFound, "vehicle %s", vehicleID)
	}
	return user, vehicle, nil
}

// findOwnedActiveRental scans rentals for the vehicle's active rental and checks
// it belongs to user. Callers must hold mu.
func (r *RentalRegistry) findOwnedActiveRental(user *domain.User, vehicle *domain.Vehicle) (*domain.Rental, error) {
	for _, rental := range r.rentals {
		if !rental.IsActive() || rental.VehicleID != vehicle.ID {
			continue
		}
		if rental.UserID != user.ID {
			r.logger.Info("release rejected: not rental owner",
				slog.String("vehicle_id", vehicle.ID),
				slog.String("user_id", user.ID),
			)
			return nil, errors.Wrapf(ErrNotRentalOwner, "rental %s", rental.ID)
		}
		return rental, nil
	}
	return nil, errors.Wrapf(ErrNoActiveRental, "vehicle %s", vehicle.ID)
}

// closeRental drops a terminal rental from the active indexes. Callers must hold mu.
func (r *RentalRegistry) closeRental(rental *domain.Rental) {
	delete(r.activeByUser, rental.UserID)
	delete(r.activeByVehicle, rental.VehicleID)
}
