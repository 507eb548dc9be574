package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"zipabout/internal/service"
)

const maintenanceQueueKey = "maintenance:queue"

// MaintenanceQueue appends maintenance signals to a Redis list for the
// workshop to pick up.
type MaintenanceQueue struct {
	client *redis.Client
}

// NewMaintenanceQueue creates a new MaintenanceQueue.
func NewMaintenanceQueue(client *redis.Client) *MaintenanceQueue {
	return &MaintenanceQueue{client: client}
}

// ScheduleMaintenance pushes the signal onto the queue.
func (q *MaintenanceQueue) ScheduleMaintenance(ctx context.Context, signal service.MaintenanceSignal) error {
	data, err := json.Marshal(signal)
	if err != nil {
		return err
	}
	return q.client.RPush(ctx, maintenanceQueueKey, data).Err()
}

// Pending returns queued signals, oldest first.
func (q *MaintenanceQueue) Pending(ctx context.Context) ([]service.MaintenanceSignal, error) {
	items, err := q.client.LRange(ctx, maintenanceQueueKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	signals := make([]service.MaintenanceSignal, 0, len(items))
	for _, item := range items {
		var signal service.MaintenanceSignal
		if err := json.Unmarshal([]byte(item), &signal); err != nil {
			return nil, err
		}
		signals = append(signals, signal)
	}
	return signals, nil
}
