// Package scheduler drives unattended job runs from cron expressions.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"matchsync/internal/report"
	"matchsync/internal/service"
)

// Runner is the slice of the job runner the scheduler needs.
type Runner interface {
	Run(ctx context.Context, name string, req service.TriggerRequest) (*report.Summary, error)
}

// Scheduler maps cron expressions to job names. Scheduled runs use the
// configured defaults; overrides are a trigger-API concern.
type Scheduler struct {
	runner Runner
	cron   *cron.Cron
	logger *slog.Logger
}

func New(runner Runner, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner: runner,
		cron:   cron.New(),
		logger: logger.With("component", "scheduler"),
	}
}

// Add registers one job under a cron expression.
func (s *Scheduler) Add(job, expression string) error {
	_, err := s.cron.AddFunc(expression, func() {
		s.runJob(job)
	})
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", job, expression, err)
	}
	s.logger.Info("job scheduled", "job", job, "schedule", expression)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runJob(job string) {
	// Scheduled runs racing a manual trigger lose the lock; that is routine,
	// not a failure.
	summary, err := s.runner.Run(context.Background(), job, service.TriggerRequest{})
	if errors.Is(err, service.ErrAlreadyRunning) {
		s.logger.Info("scheduled run skipped, job already running", "job", job)
		return
	}
	if err != nil {
		s.logger.Error("scheduled run failed to start", "job", job, "error", err)
		return
	}
	if !summary.Success {
		s.logger.Error("scheduled run failed", "job", job, "error", summary.Error)
	}
}
