package redis

import (
	"context"
	"time"

	"zipabout/internal/service"
)

// ResponseCache defines the interface for idempotent response storage.
type ResponseCache interface {
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, response *CachedResponse, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var (
	_ service.UsageCounter         = (*UsageStore)(nil)
	_ service.MaintenanceScheduler = (*MaintenanceQueue)(nil)
	_ ResponseCache                = (*ResponseStore)(nil)
)
