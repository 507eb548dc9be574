package jobs

import (
	"context"
	"log/slog"
	"time"

	"zipabout/internal/service"
)

// jobTimeout bounds a single job run.
const jobTimeout = 30 * time.Second

// JobRunner runs the periodic fleet reports.
type JobRunner struct {
	registry    *service.RentalRegistry
	maintenance *service.MaintenanceObserver
	logger      *slog.Logger
}

// NewJobRunner creates a new job runner.
func NewJobRunner(registry *service.RentalRegistry, maintenance *service.MaintenanceObserver, logger *slog.Logger) *JobRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobRunner{
		registry:    registry,
		maintenance: maintenance,
		logger:      logger,
	}
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			jr.logger.Error("job panicked", slog.String("job", jobName), slog.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	jr.logger.Debug("starting job", slog.String("job", jobName))
	jobFunc(ctx)
	jr.logger.Debug("job completed", slog.String("job", jobName))
}

// RunAll runs every report once (for manual execution).
func (jr *JobRunner) RunAll() {
	jr.UsageReport()
	jr.ActiveRentalsReport()
}
