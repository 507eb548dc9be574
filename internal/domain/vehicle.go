package domain

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// VehicleKind is the closed set of vehicle types in the fleet.
type VehicleKind string

const (
	VehicleKindEBike       VehicleKind = "E_BIKE"
	VehicleKindEScooter    VehicleKind = "E_SCOOTER"
	VehicleKindESkateboard VehicleKind = "E_SKATEBOARD"
	VehicleKindSegway      VehicleKind = "SEGWAY"
	VehicleKindBike        VehicleKind = "BIKE"
	VehicleKindKickScooter VehicleKind = "KICK_SCOOTER"
	VehicleKindSkateboard  VehicleKind = "SKATEBOARD"
)

var vehicleKindTypes = map[VehicleKind]string{
	VehicleKindEBike:       "E-Bike",
	VehicleKindEScooter:    "E-Scooter",
	VehicleKindESkateboard: "E-Skateboard",
	VehicleKindSegway:      "Segway",
	VehicleKindBike:        "Bike",
	VehicleKindKickScooter: "Kick Scooter",
	VehicleKindSkateboard:  "Skateboard",
}

// ParseVehicleKind validates a kind string.
func ParseVehicleKind(s string) (VehicleKind, error) {
	kind := VehicleKind(s)
	if _, ok := vehicleKindTypes[kind]; !ok {
		return "", errors.Wrapf(ErrUnknownVehicleKind, "%q", s)
	}
	return kind, nil
}

// Type returns the human-readable vehicle type.
func (k VehicleKind) Type() string {
	if t, ok := vehicleKindTypes[k]; ok {
		return t
	}
	return string(k)
}

// Electric reports whether the kind carries a battery and motor.
func (k VehicleKind) Electric() bool {
	switch k {
	case VehicleKindEBike, VehicleKindEScooter, VehicleKindESkateboard, VehicleKindSegway:
		return true
	default:
		return false
	}
}

// VehicleDetails holds display-only attributes. Nothing in booking reads them.
type VehicleDetails struct {
	Make      string
	Model     string
	AssetCode string // human-visible code like EB-001
}

// Vehicle is a rentable fleet item. Availability and occupant are written only
// by rental transitions.
type Vehicle struct {
	ID      string
	Kind    VehicleKind
	Details VehicleDetails

	booked        bool
	currentUserID string
}

// NewVehicle creates an available vehicle.
func NewVehicle(id string, kind VehicleKind, details VehicleDetails) *Vehicle {
	return &Vehicle{ID: id, Kind: kind, Details: details}
}

// IsAvailable reports whether the vehicle can be booked.
func (v *Vehicle) IsAvailable() bool {
	return !v.booked
}

// CurrentUserID returns the occupant's user id, or "" when available.
func (v *Vehicle) CurrentUserID() string {
	return v.currentUserID
}

// Type returns the human-readable vehicle type.
func (v *Vehicle) Type() string {
	return v.Kind.Type()
}

// Model returns the vehicle model.
func (v *Vehicle) Model() string {
	return v.Details.Model
}

// Describe returns "<type>: <make> <model>".
func (v *Vehicle) Describe() string {
	return fmt.Sprintf("%s: %s %s", v.Type(), v.Details.Make, v.Details.Model)
}

// MarkAsBooked flips the vehicle to unavailable for userID.
func (v *Vehicle) MarkAsBooked(userID string) {
	v.booked = true
	v.currentUserID = userID
}

// MarkAsReleased makes the vehicle available again.
func (v *Vehicle) MarkAsReleased() {
	v.booked = false
	v.currentUserID = ""
}
