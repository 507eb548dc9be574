package domain

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the access role of a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

const (
	// VIPPointsThreshold is the loyalty balance at which a user becomes VIP.
	VIPPointsThreshold = 5

	// FreeRideCost is the number of points deducted by a free ride redemption.
	FreeRideCost = 5
)

// User represents a customer or administrator of the rental service.
//
// Loyalty fields are only changed through methods so the VIP latch and the
// non-negative balance hold.
type User struct {
	ID        string
	Username  string
	Name      string
	Role      Role
	CreatedAt time.Time // set by the registry on registration

	passwordHash     []byte
	loyaltyPoints    int
	completedRentals int
	vip              bool
	rentalIDs        []string
}

// NewUser creates a user, hashing the password with bcrypt. An empty password
// leaves the user without credentials.
func NewUser(id, username, name, password string, role Role) (*User, error) {
	if role == "" {
		role = RoleCustomer
	}
	user := &User{
		ID:       id,
		Username: username,
		Name:     name,
		Role:     role,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		user.passwordHash = hash
	}
	return user, nil
}

// IsAdmin reports whether the user has the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if len(u.passwordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

// LoyaltyPoints returns the current loyalty balance.
func (u *User) LoyaltyPoints() int {
	return u.loyaltyPoints
}

// CompletedRentals returns the number of rentals the user has completed.
func (u *User) CompletedRentals() int {
	return u.completedRentals
}

// IsVIP reports whether the user has reached VIP status.
func (u *User) IsVIP() bool {
	return u.vip
}

// RentalIDs returns a copy of the user's rental ids in booking order.
func (u *User) RentalIDs() []string {
	return slices.Clone(u.rentalIDs)
}

// AddLoyaltyPoints adds points to the balance. Non-positive amounts are ignored.
func (u *User) AddLoyaltyPoints(points int) {
	if points <= 0 {
		return
	}
	u.loyaltyPoints += points
}

// IncrementCompletedRentals records one more completed rental.
func (u *User) IncrementCompletedRentals() {
	u.completedRentals++
}

// CheckAndUpdateVIPStatus latches VIP once the balance reaches the threshold.
// It returns true only on the call that flips the latch.
func (u *User) CheckAndUpdateVIPStatus() bool {
	if u.vip || u.loyaltyPoints < VIPPointsThreshold {
		return false
	}
	u.vip = true
	return true
}

// RedeemFreeRide deducts FreeRideCost points. VIP status is unaffected.
func (u *User) RedeemFreeRide() error {
	if u.loyaltyPoints < FreeRideCost {
		return ErrInsufficientPoints
	}
	u.loyaltyPoints -= FreeRideCost
	return nil
}

// AddRental appends a rental reference.
func (u *User) AddRental(rentalID string) {
	u.rentalIDs = append(u.rentalIDs, rentalID)
}

// Snapshot returns a copy that shares no mutable state with u.
func (u *User) Snapshot() User {
	cp := *u
	cp.passwordHash = nil
	cp.rentalIDs = slices.Clone(u.rentalIDs)
	return cp
}
