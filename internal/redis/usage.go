package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const usageKey = "maintenance:usage"

// UsageStore counts completed rentals per vehicle in a Redis hash, so counts
// survive across server instances sharing the same Redis.
type UsageStore struct {
	client *redis.Client
}

// NewUsageStore creates a new UsageStore.
func NewUsageStore(client *redis.Client) *UsageStore {
	return &UsageStore{client: client}
}

// Increment adds one completion for the vehicle using HINCRBY and returns the new count.
func (s *UsageStore) Increment(ctx context.Context, vehicleID string) (int64, error) {
	return s.client.HIncrBy(ctx, usageKey, vehicleID, 1).Result()
}

// Counts returns every vehicle's completion count.
func (s *UsageStore) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, usageKey).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(raw))
	for id, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, nil
}
