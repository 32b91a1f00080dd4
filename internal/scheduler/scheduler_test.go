package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"matchsync/internal/report"
	"matchsync/internal/service"
)

type stubRunner struct {
	summary *report.Summary
	err     error
	jobs    []string
}

func (s *stubRunner) Run(_ context.Context, name string, _ service.TriggerRequest) (*report.Summary, error) {
	s.jobs = append(s.jobs, name)
	return s.summary, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdd_RejectsBadExpression(t *testing.T) {
	s := New(&stubRunner{}, testLogger())

	err := s.Add("fixtures", "not a cron line")

	require.Error(t, err)
	require.Contains(t, err.Error(), "fixtures")
}

func TestAdd_AcceptsStandardExpressions(t *testing.T) {
	s := New(&stubRunner{}, testLogger())

	require.NoError(t, s.Add("fixtures", "0 6 * * *"))
	require.NoError(t, s.Add("live", "*/2 * * * *"))
}

func TestRunJob_TriggersTheNamedJob(t *testing.T) {
	runner := &stubRunner{summary: &report.Summary{Job: "odds", Success: true}}
	s := New(runner, testLogger())

	s.runJob("odds")

	require.Equal(t, []string{"odds"}, runner.jobs)
}

func TestRunJob_ToleratesLockContention(t *testing.T) {
	runner := &stubRunner{err: fmt.Errorf("%w: odds", service.ErrAlreadyRunning)}
	s := New(runner, testLogger())

	// Must not panic on a nil summary.
	s.runJob("odds")

	require.Equal(t, []string{"odds"}, runner.jobs)
}
