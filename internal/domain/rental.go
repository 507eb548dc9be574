package domain

import (
	"fmt"
	"time"
)

// RentalStatus represents the current status of a rental.
type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Rental is one booking of a vehicle by a user.
//
// User and vehicle display fields are copied at booking time, so records stay
// readable after the user is removed.
type Rental struct {
	ID        string
	UserID    string
	UserName  string
	VehicleID string
	Vehicle   VehicleDetails
	Kind      VehicleKind
	Status    RentalStatus
	StartTime time.Time
	EndTime   time.Time // zero while active

	vehicle *Vehicle
}

// NewRental starts an ACTIVE rental and marks the vehicle booked by the user.
func NewRental(id string, user *User, vehicle *Vehicle, now time.Time) *Rental {
	if user == nil || vehicle == nil {
		panic("domain: NewRental requires a user and a vehicle")
	}
	vehicle.MarkAsBooked(user.ID)
	return &Rental{
		ID:        id,
		UserID:    user.ID,
		UserName:  user.Name,
		VehicleID: vehicle.ID,
		Vehicle:   vehicle.Details,
		Kind:      vehicle.Kind,
		Status:    RentalStatusActive,
		StartTime: now,
		vehicle:   vehicle,
	}
}

// IsActive reports whether the rental is still ACTIVE.
func (r *Rental) IsActive() bool {
	return r.Status == RentalStatusActive
}

// Complete moves an active rental to COMPLETED. It returns false and changes
// nothing when the rental is already terminal.
func (r *Rental) Complete(now time.Time) bool {
	return r.finish(RentalStatusCompleted, now)
}

// Cancel moves an active rental to CANCELLED. It returns false and changes
// nothing when the rental is already terminal.
func (r *Rental) Cancel(now time.Time) bool {
	return r.finish(RentalStatusCancelled, now)
}

func (r *Rental) finish(status RentalStatus, now time.Time) bool {
	if r.Status != RentalStatusActive {
		return false
	}
	r.Status = status
	r.EndTime = now
	if r.vehicle != nil {
		r.vehicle.MarkAsReleased()
	}
	return true
}

// VehicleType returns the human-readable type of the rented vehicle.
func (r *Rental) VehicleType() string {
	return r.Kind.Type()
}

// DurationMinutes returns the whole minutes between start and end, or -1 while
// the rental has not ended.
func (r *Rental) DurationMinutes() int64 {
	if r.EndTime.IsZero() {
		return -1
	}
	return int64(r.EndTime.Sub(r.StartTime) / time.Minute)
}

// Snapshot returns a detached copy. Transitions on the copy never reach the vehicle.
func (r *Rental) Snapshot() Rental {
	cp := *r
	cp.vehicle = nil
	return cp
}

func (r *Rental) String() string {
	return fmt.Sprintf("%s %s %s %s", r.ID, r.UserName, r.Vehicle.Model, r.Status)
}
