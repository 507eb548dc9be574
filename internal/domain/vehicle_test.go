package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVehicleKind(t *testing.T) {
	tests := []struct {
		in       string
		want     VehicleKind
		typ      string
		electric bool
	}{
		{"E_BIKE", VehicleKindEBike, "E-Bike", true},
		{"E_SCOOTER", VehicleKindEScooter, "E-Scooter", true},
		{"E_SKATEBOARD", VehicleKindESkateboard, "E-Skateboard", true},
		{"SEGWAY", VehicleKindSegway, "Segway", true},
		{"BIKE", VehicleKindBike, "Bike", false},
		{"KICK_SCOOTER", VehicleKindKickScooter, "Kick Scooter", false},
		{"SKATEBOARD", VehicleKindSkateboard, "Skateboard", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, err := ParseVehicleKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.typ, kind.Type())
			assert.Equal(t, tt.electric, kind.Electric())
		})
	}

	_, err := ParseVehicleKind("HOVERBOARD")
	assert.ErrorIs(t, err, ErrUnknownVehicleKind)
}

func TestVehicle_BookAndRelease(t *testing.T) {
	v := NewVehicle("v-1", VehicleKindEBike, VehicleDetails{Make: "Trek", Model: "FX+ 2"})

	assert.True(t, v.IsAvailable())
	assert.Empty(t, v.CurrentUserID())
	assert.Equal(t, "E-Bike: Trek FX+ 2", v.Describe())

	v.MarkAsBooked("u-1")
	assert.False(t, v.IsAvailable())
	assert.Equal(t, "u-1", v.CurrentUserID())

	v.MarkAsReleased()
	assert.True(t, v.IsAvailable())
	assert.Empty(t, v.CurrentUserID())
}
