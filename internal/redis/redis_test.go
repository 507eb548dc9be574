package redis

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"zipabout/internal/service"
)

type StoreSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	ctx    context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

// Usage counter tests

func (s *StoreSuite) TestUsageStoreIncrement() {
	store := NewUsageStore(s.client)

	for want := int64(1); want <= 3; want++ {
		n, err := store.Increment(s.ctx, "ebike")
		s.Require().NoError(err)
		s.Equal(want, n)
	}
	_, err := store.Increment(s.ctx, "scooter")
	s.Require().NoError(err)

	counts, err := store.Counts(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int64{"ebike": 3, "scooter": 1}, counts)
}

func (s *StoreSuite) TestUsageStoreCountsEmpty() {
	counts, err := NewUsageStore(s.client).Counts(s.ctx)
	s.Require().NoError(err)
	s.Empty(counts)
}

func (s *StoreSuite) TestUsageStoreCorruptValue() {
	s.mini.HSet(usageKey, "ebike", "lots")

	_, err := NewUsageStore(s.client).Counts(s.ctx)
	s.Error(err)
}

func (s *StoreSuite) TestUsageStoreDrivesMaintenanceObserver() {
	queue := NewMaintenanceQueue(s.client)
	observer := service.NewMaintenanceObserver(NewUsageStore(s.client), queue, 2, nil)

	s.mini.HSet(usageKey, "ebike", "1") // counted by another instance

	err := observer.OnRentalCompleted(s.ctx, rentalOf("ebike"))
	s.Require().NoError(err)

	pending, err := queue.Pending(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal("ebike", pending[0].VehicleID)
	s.Equal(int64(2), pending[0].Count)
}

// Maintenance queue tests

func (s *StoreSuite) TestMaintenanceQueueOrder() {
	queue := NewMaintenanceQueue(s.client)

	s.Require().NoError(queue.ScheduleMaintenance(s.ctx, service.MaintenanceSignal{VehicleID: "v-1", Model: "FX+ 2", Count: 10}))
	s.Require().NoError(queue.ScheduleMaintenance(s.ctx, service.MaintenanceSignal{VehicleID: "v-2", AssetCode: "ES-001", Model: "Pro 2", Count: 10}))

	pending, err := queue.Pending(s.ctx)
	s.Require().NoError(err)
	s.Equal([]service.MaintenanceSignal{
		{VehicleID: "v-1", Model: "FX+ 2", Count: 10},
		{VehicleID: "v-2", AssetCode: "ES-001", Model: "Pro 2", Count: 10},
	}, pending)
}

func (s *StoreSuite) TestMaintenanceQueueEmpty() {
	pending, err := NewMaintenanceQueue(s.client).Pending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
}

// Response cache tests

func (s *StoreSuite) TestResponseStoreRoundTrip() {
	store := NewResponseStore(s.client)
	headers := http.Header{}
	headers.Set("Content-Type", "application/json; charset=utf-8")

	s.Require().NoError(store.Set(s.ctx, "key-1", &CachedResponse{
		StatusCode: http.StatusCreated,
		Body:       []byte(`{"id":"R-1"}`),
		Headers:    headers,
	}, time.Hour))

	cached, err := store.Get(s.ctx, "key-1")
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal(http.StatusCreated, cached.StatusCode)
	s.JSONEq(`{"id":"R-1"}`, string(cached.Body))
	s.Equal("application/json; charset=utf-8", cached.Headers.Get("Content-Type"))
	s.True(s.mini.Exists(responseCachePrefix + "key-1"))
}

func (s *StoreSuite) TestResponseStoreEmptyBody() {
	store := NewResponseStore(s.client)

	s.Require().NoError(store.Set(s.ctx, "delete-1", &CachedResponse{StatusCode: http.StatusNoContent}, time.Hour))

	cached, err := store.Get(s.ctx, "delete-1")
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal(http.StatusNoContent, cached.StatusCode)
	s.Empty(cached.Body)
}

func (s *StoreSuite) TestResponseStoreMiss() {
	cached, err := NewResponseStore(s.client).Get(s.ctx, "missing")
	s.NoError(err)
	s.Nil(cached)
}

func (s *StoreSuite) TestResponseStoreExpires() {
	store := NewResponseStore(s.client)
	s.Require().NoError(store.Set(s.ctx, "key-1", &CachedResponse{StatusCode: http.StatusOK}, time.Minute))

	s.mini.FastForward(2 * time.Minute)

	cached, err := store.Get(s.ctx, "key-1")
	s.NoError(err)
	s.Nil(cached)
}
