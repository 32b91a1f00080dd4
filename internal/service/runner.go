package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"matchsync/internal/config"
	"matchsync/internal/domain"
	"matchsync/internal/report"
)

var (
	ErrUnknownJob     = errors.New("unknown job")
	ErrAlreadyRunning = errors.New("job already running")
	ErrInvalidParams  = errors.New("invalid parameters")
)

// Job is one runnable sync task. Execute reports progress through run and
// returns an error only for failures that should fail the whole run;
// per-item problems are counted on the run instead.
type Job interface {
	Name() string
	Execute(ctx context.Context, p runParams, run *report.Run) error
}

// Runner owns the shared mechanics of every job: parameter resolution, the
// per-job advisory lock, the run deadline, and the audit record.
type Runner struct {
	jobs   map[string]Job
	lock   Locker
	ops    OperationStore
	cfg    config.JobsConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewRunner(lock Locker, ops OperationStore, cfg config.JobsConfig, logger *slog.Logger, jobs ...Job) *Runner {
	r := &Runner{
		jobs:   make(map[string]Job, len(jobs)),
		lock:   lock,
		ops:    ops,
		cfg:    cfg,
		logger: logger.With("component", "runner"),
		now:    time.Now,
	}
	for _, job := range jobs {
		r.jobs[job.Name()] = job
	}
	return r
}

// JobNames lists the registered jobs in stable order.
func (r *Runner) JobNames() []string {
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes one job end to end. A second trigger for a job that is still
// running is refused with ErrAlreadyRunning rather than queued.
func (r *Runner) Run(ctx context.Context, name string, req TriggerRequest) (*report.Summary, error) {
	job, ok := r.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	params, err := resolveParams(r.cfg, req, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	handle, acquired, err := r.lock.TryAcquire(ctx, "sync:"+name)
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, name)
	}
	defer func() {
		if err := handle.Release(context.WithoutCancel(ctx)); err != nil {
			r.logger.Error("release run lock", "job", name, "error", err)
		}
	}()

	logger := r.logger.With("job", name)
	logger.Info("run started",
		"window_from", params.From.Format(dateLayout),
		"window_to", params.To.Format(dateLayout),
		"leagues", len(params.LeagueIDs),
	)

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.RunTimeout)
	defer cancel()

	run := report.NewRun(name)
	execErr := job.Execute(runCtx, params, run)
	summary := run.Finish(execErr)

	r.audit(ctx, summary)

	if execErr != nil {
		logger.Error("run failed", "error", execErr, "api_calls", summary.APICalls, "duration", summary.Duration)
	} else {
		logger.Info("run completed",
			"fetched", summary.Fetched,
			"updated", summary.Updated,
			"errors", summary.Errors,
			"api_calls", summary.APICalls,
			"duration", summary.Duration,
		)
	}

	return summary, nil
}

// audit persists the operation row. The run outcome already happened, so an
// audit failure is logged and swallowed.
func (r *Runner) audit(ctx context.Context, summary *report.Summary) {
	op := domain.Operation{
		Name:     summary.Job,
		Success:  summary.Success,
		APICalls: summary.APICalls,
		Duration: summary.Duration,
		Details:  summary.Details(),
	}
	if err := r.ops.Insert(context.WithoutCancel(ctx), op); err != nil {
		r.logger.Error("insert operation record", "job", summary.Job, "error", err)
	}
}
