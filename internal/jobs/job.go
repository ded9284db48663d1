package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pancakelab/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Job is a scheduled task the JobManager can start and stop.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// scheduler is the cron plumbing shared by all jobs.
type scheduler struct {
	name     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func newScheduler(name string, schedule string, logger *slog.Logger) scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return scheduler{
		name:     name,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", name),
	}
}

func (s *scheduler) Name() string {
	return s.name
}

func (s *scheduler) start(tick func(ctx context.Context)) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { tick(context.Background()) }); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.InfoContext(context.Background(), "Job started", "schedule", s.schedule)
	return nil
}

// Stop waits for a running tick to finish.
func (s *scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.InfoContext(context.Background(), "Job stopped")
}

// isExpectedRace reports errors caused by another actor moving an order
// between listing and acting on it.
func isExpectedRace(err error) bool {
	return errors.Is(err, errs.ErrStateIsInvalid) || errors.Is(err, errs.ErrObjectNotFound)
}
