package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role Role) *User {
	t.Helper()
	u, err := NewUser("u-1", "alice", "Alice", "secret", role)
	require.NoError(t, err)
	return u
}

func TestNewUser_DefaultsToCustomer(t *testing.T) {
	u, err := NewUser("u-1", "alice", "Alice", "", "")
	require.NoError(t, err)

	assert.Equal(t, RoleCustomer, u.Role)
	assert.False(t, u.IsAdmin())
	assert.Zero(t, u.LoyaltyPoints())
	assert.Zero(t, u.CompletedRentals())
	assert.False(t, u.IsVIP())
}

func TestUser_CheckPassword(t *testing.T) {
	u := newTestUser(t, RoleAdmin)

	assert.True(t, u.IsAdmin())
	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("wrong"))

	noPassword, err := NewUser("u-2", "bob", "Bob", "", RoleCustomer)
	require.NoError(t, err)
	assert.False(t, noPassword.CheckPassword(""))
}

func TestUser_AddLoyaltyPointsIgnoresNonPositive(t *testing.T) {
	u := newTestUser(t, RoleCustomer)

	u.AddLoyaltyPoints(2)
	u.AddLoyaltyPoints(0)
	u.AddLoyaltyPoints(-3)

	assert.Equal(t, 2, u.LoyaltyPoints())
}

func TestUser_VIPLatch(t *testing.T) {
	u := newTestUser(t, RoleCustomer)

	u.AddLoyaltyPoints(VIPPointsThreshold - 1)
	assert.False(t, u.CheckAndUpdateVIPStatus())
	assert.False(t, u.IsVIP())

	u.AddLoyaltyPoints(1)
	assert.True(t, u.CheckAndUpdateVIPStatus(), "first check at the threshold flips the latch")
	assert.False(t, u.CheckAndUpdateVIPStatus(), "later checks report no change")
	assert.True(t, u.IsVIP())

	require.NoError(t, u.RedeemFreeRide())
	assert.Zero(t, u.LoyaltyPoints())
	assert.False(t, u.CheckAndUpdateVIPStatus())
	assert.True(t, u.IsVIP(), "VIP survives spending points")
}

func TestUser_RedeemFreeRide(t *testing.T) {
	u := newTestUser(t, RoleCustomer)

	u.AddLoyaltyPoints(FreeRideCost - 1)
	err := u.RedeemFreeRide()
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, FreeRideCost-1, u.LoyaltyPoints(), "failed redemption leaves balance untouched")

	u.AddLoyaltyPoints(3)
	require.NoError(t, u.RedeemFreeRide())
	assert.Equal(t, 2, u.LoyaltyPoints())
}

func TestUser_SnapshotIsDetached(t *testing.T) {
	u := newTestUser(t, RoleCustomer)
	u.AddRental("R-1")

	snap := u.Snapshot()
	snap.AddRental("R-2")
	snap.AddLoyaltyPoints(10)

	assert.Equal(t, []string{"R-1"}, u.RentalIDs())
	assert.Zero(t, u.LoyaltyPoints())
	assert.False(t, snap.CheckPassword("secret"), "snapshots carry no credentials")
}
