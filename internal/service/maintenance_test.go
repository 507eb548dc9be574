package service

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipabout/internal/domain"
)

type fakeScheduler struct {
	signals []MaintenanceSignal
	err     error
}

func (s *fakeScheduler) ScheduleMaintenance(_ context.Context, signal MaintenanceSignal) error {
	s.signals = append(s.signals, signal)
	return s.err
}

func TestMaintenanceObserver_SignalsExactlyAtThreshold(t *testing.T) {
	f := newStandardFixture(t)
	scheduler := &fakeScheduler{}
	observer := NewMaintenanceObserver(NewMemoryUsageCounter(), scheduler, DefaultMaintenanceThreshold, discardLogger())
	f.registry.AddObserver(observer)

	for i := 0; i < DefaultMaintenanceThreshold-1; i++ {
		f.rideOnce(t, userFor(i), "ebike")
	}
	assert.Empty(t, scheduler.signals)

	f.rideOnce(t, "alice", "ebike")
	require.Len(t, scheduler.signals, 1)
	assert.Equal(t, MaintenanceSignal{VehicleID: "ebike", Model: "FX+ 2", Count: 10}, scheduler.signals[0])

	f.rideOnce(t, "bob", "ebike")
	f.rideOnce(t, "alice", "scooter")
	assert.Len(t, scheduler.signals, 1, "no repeat past the threshold")

	summary, err := observer.UsageSummary(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []VehicleUsage{
		{VehicleID: "ebike", CompletedRentals: 11},
		{VehicleID: "scooter", CompletedRentals: 1},
	}, summary)
}

func TestMaintenanceObserver_DefaultsThreshold(t *testing.T) {
	observer := NewMaintenanceObserver(NewMemoryUsageCounter(), nil, 0, nil)

	assert.Equal(t, int64(DefaultMaintenanceThreshold), observer.RemainingBeforeMaintenance(0))
	assert.Equal(t, int64(1), observer.RemainingBeforeMaintenance(9))
	assert.Zero(t, observer.RemainingBeforeMaintenance(12))
}

func TestMaintenanceObserver_SchedulerErrorSurfaces(t *testing.T) {
	scheduler := &fakeScheduler{err: errors.New("queue full")}
	observer := NewMaintenanceObserver(NewMemoryUsageCounter(), scheduler, 1, discardLogger())

	err := observer.OnRentalCompleted(context.Background(), domain.Rental{VehicleID: "v-1"})
	assert.EqualError(t, err, "queue full")
	assert.Len(t, scheduler.signals, 1)
}

func TestMemoryUsageCounter_CountsAreCopies(t *testing.T) {
	counter := NewMemoryUsageCounter()
	ctx := context.Background()

	n, err := counter.Increment(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	counts, err := counter.Counts(ctx)
	require.NoError(t, err)
	counts["v-1"] = 99

	n, err = counter.Increment(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func userFor(i int) string {
	if i%2 == 0 {
		return "alice"
	}
	return "bob"
}
