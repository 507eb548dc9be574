package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRental(t *testing.T) {
	f := newStandardFixture(t)

	active, err := f.registry.BookVehicle(f.ctx, "alice", "ebike")
	require.NoError(t, err)

	assert.Equal(t, "Rental ID: R-1\n"+
		"User: Alice\n"+
		"Vehicle: E-Bike - FX+ 2\n"+
		"Status: ACTIVE\n"+
		"Start: 2024-06-01 09:00\n"+
		"End: n/a\n"+
		"----------------------------------------\n", FormatRental(active))

	f.clock.Advance(30 * time.Minute)
	done, err := f.registry.ReleaseVehicle(f.ctx, "alice", "ebike")
	require.NoError(t, err)

	text := FormatRental(done)
	assert.Contains(t, text, "Status: COMPLETED\n")
	assert.Contains(t, text, "End: 2024-06-01 09:30\n")
	assert.Contains(t, text, "Duration: 30 min\n")
}

func TestFormatUser(t *testing.T) {
	f := newStandardFixture(t)
	for i := 0; i < 5; i++ {
		f.rideOnce(t, "bob", "scooter")
	}

	user, err := f.registry.User("bob")
	require.NoError(t, err)

	text := FormatUser(user, 0)
	assert.Contains(t, text, "Name: Bob\n")
	assert.Contains(t, text, "Total completed rentals: 5\n")
	assert.Contains(t, text, "Loyalty Points: 2\n")
	assert.Contains(t, text, "VIP: No\n")
	assert.Contains(t, text, "Current active rentals: 0\n")
}
