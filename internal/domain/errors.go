package domain

import "github.com/cockroachdb/errors"

var (
	// ErrInsufficientPoints is returned when a redemption exceeds the loyalty balance.
	ErrInsufficientPoints = errors.New("not enough loyalty points to redeem a free ride")

	// ErrUnknownVehicleKind is returned for a kind outside the fleet's closed set.
	ErrUnknownVehicleKind = errors.New("unknown vehicle kind")
)
