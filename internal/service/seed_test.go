package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipabout/internal/domain"
)

func TestSeedVehiclesIfEmpty(t *testing.T) {
	f := newFixture(t)

	seeded, err := f.registry.SeedVehiclesIfEmpty(f.ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	vehicles := f.registry.Vehicles()
	require.Len(t, vehicles, 3)
	assert.Equal(t, domain.VehicleKindEBike, vehicles[0].Kind)
	assert.Equal(t, "EB-001", vehicles[0].Details.AssetCode)
	for _, v := range vehicles {
		assert.True(t, v.IsAvailable())
	}

	seeded, err = f.registry.SeedVehiclesIfEmpty(f.ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, f.registry.Vehicles(), 3)
}

func TestSeedVehiclesIfEmpty_SkipsNonEmptyFleet(t *testing.T) {
	f := newStandardFixture(t)

	seeded, err := f.registry.SeedVehiclesIfEmpty(f.ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, f.registry.Vehicles(), 2)
}

func TestSeedVehiclesIfEmpty_Concurrent(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.registry.SeedVehiclesIfEmpty(f.ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, f.registry.Vehicles(), 3)
}
