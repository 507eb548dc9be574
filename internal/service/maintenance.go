package service

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"zipabout/internal/domain"
)

// DefaultMaintenanceThreshold is the completed-rental count at which a vehicle
// is due a maintenance check.
const DefaultMaintenanceThreshold = 10

// UsageCounter counts completed rentals per vehicle.
type UsageCounter interface {
	// Increment adds one completion and returns the new count.
	Increment(ctx context.Context, vehicleID string) (int64, error)

	// Counts returns the current count for every vehicle seen so far.
	Counts(ctx context.Context) (map[string]int64, error)
}

// MemoryUsageCounter is an in-process UsageCounter.
type MemoryUsageCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewMemoryUsageCounter creates an empty counter.
func NewMemoryUsageCounter() *MemoryUsageCounter {
	return &MemoryUsageCounter{counts: make(map[string]int64)}
}

func (c *MemoryUsageCounter) Increment(_ context.Context, vehicleID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[vehicleID]++
	return c.counts[vehicleID], nil
}

func (c *MemoryUsageCounter) Counts(_ context.Context) (map[string]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts), nil
}

// MaintenanceSignal is emitted once when a vehicle reaches the threshold.
type MaintenanceSignal struct {
	VehicleID string `json:"vehicle_id"`
	AssetCode string `json:"asset_code,omitempty"`
	Model     string `json:"model"`
	Count     int64  `json:"count"`
}

// MaintenanceScheduler receives maintenance signals.
type MaintenanceScheduler interface {
	ScheduleMaintenance(ctx context.Context, signal MaintenanceSignal) error
}

// MaintenanceObserver tracks completions per vehicle and signals maintenance
// exactly when a vehicle's count equals the threshold.
type MaintenanceObserver struct {
	counter   UsageCounter
	scheduler MaintenanceScheduler
	threshold int64
	logger    *slog.Logger
}

// NewMaintenanceObserver creates a MaintenanceObserver. A non-positive
// threshold uses DefaultMaintenanceThreshold; a nil scheduler only logs.
func NewMaintenanceObserver(counter UsageCounter, scheduler MaintenanceScheduler, threshold int, logger *slog.Logger) *MaintenanceObserver {
	if threshold <= 0 {
		threshold = DefaultMaintenanceThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MaintenanceObserver{
		counter:   counter,
		scheduler: scheduler,
		threshold: int64(threshold),
		logger:    logger,
	}
}

// OnRentalCompleted implements RentalObserver.
func (o *MaintenanceObserver) OnRentalCompleted(ctx context.Context, rental domain.Rental) error {
	count, err := o.counter.Increment(ctx, rental.VehicleID)
	if err != nil {
		return err
	}

	o.logger.Info("vehicle usage recorded",
		slog.String("vehicle_id", rental.VehicleID),
		slog.String("type", rental.VehicleType()),
		slog.String("model", rental.Vehicle.Model),
		slog.Int64("completed_rentals", count),
	)

	if count != o.threshold {
		return nil
	}

	signal := MaintenanceSignal{
		VehicleID: rental.VehicleID,
		AssetCode: rental.Vehicle.AssetCode,
		Model:     rental.Vehicle.Model,
		Count:     count,
	}
	o.logger.Warn("vehicle reached maintenance threshold, schedule a maintenance check",
		slog.String("vehicle_id", signal.VehicleID),
		slog.String("asset_code", signal.AssetCode),
		slog.String("model", signal.Model),
		slog.Int64("threshold", o.threshold),
	)
	if o.scheduler == nil {
		return nil
	}
	return o.scheduler.ScheduleMaintenance(ctx, signal)
}

// VehicleUsage is one line of the usage summary.
type VehicleUsage struct {
	VehicleID        string
	CompletedRentals int64
}

// UsageSummary returns completed-rental counts ordered by vehicle id.
func (o *MaintenanceObserver) UsageSummary(ctx context.Context) ([]VehicleUsage, error) {
	counts, err := o.counter.Counts(ctx)
	if err != nil {
		return nil, err
	}

	summary := make([]VehicleUsage, 0, len(counts))
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		summary = append(summary, VehicleUsage{VehicleID: id, CompletedRentals: counts[id]})
	}
	return summary, nil
}

// RemainingBeforeMaintenance reports how many more completions a vehicle with
// count completions needs to reach the threshold. Zero once it has passed.
func (o *MaintenanceObserver) RemainingBeforeMaintenance(count int64) int64 {
	return max(o.threshold-count, 0)
}
