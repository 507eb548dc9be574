package jobs

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the JobRunner's reports on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	jobs   *JobRunner
	logger *slog.Logger
}

// NewScheduler registers the reports under schedule, a standard cron spec or
// a descriptor such as "@every 1h".
func NewScheduler(jobRunner *JobRunner, schedule string) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:   c,
		jobs:   jobRunner,
		logger: jobRunner.logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.jobs.UsageReport); err != nil {
		return nil, errors.Wrapf(err, "register UsageReport job with schedule %q", schedule)
	}
	if _, err := s.cron.AddFunc(schedule, s.jobs.ActiveRentalsReport); err != nil {
		return nil, errors.Wrapf(err, "register ActiveRentalsReport job with schedule %q", schedule)
	}

	return s, nil
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("cron scheduler stopped")
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
