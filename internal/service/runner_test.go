package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"matchsync/internal/config"
	"matchsync/internal/domain"
	"matchsync/internal/service"
	"matchsync/internal/service/mocks"
)

// The runner is exercised with a real job wired to mocks; stub jobs are not
// possible from an external test package and a thin job keeps the tests
// close to production wiring anyway.

func testJobsConfig() config.JobsConfig {
	return config.JobsConfig{
		RunTimeout:   time.Minute,
		LeagueIDs:    []int64{8, 9},
		BookmakerIDs: []int64{2, 5},
		MaxFixtures:  50,
		MaxTeams:     500,
		BatchSize:    2,
		DaysForward:  3,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

type RunnerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	provider *mocks.MockProvider
	teams    *mocks.MockTeamStore
	locker   *mocks.MockLocker
	unlocker *mocks.MockUnlocker
	ops      *mocks.MockOperationStore

	runner *service.Runner
}

func (s *RunnerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocks.NewMockProvider(s.ctrl)
	s.teams = mocks.NewMockTeamStore(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.unlocker = mocks.NewMockUnlocker(s.ctrl)
	s.ops = mocks.NewMockOperationStore(s.ctrl)

	job := service.NewTeamLogoJob(s.provider, s.teams, testLogger())
	s.runner = service.NewRunner(s.locker, s.ops, testJobsConfig(), testLogger(), job)
}

func (s *RunnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) TestRejectsUnknownJob() {
	_, err := s.runner.Run(context.Background(), "nope", service.TriggerRequest{})

	s.Require().ErrorIs(err, service.ErrUnknownJob)
}

func (s *RunnerTestSuite) TestRejectsBadParameters() {
	start := "not-a-date"

	_, err := s.runner.Run(context.Background(), "teamlogos", service.TriggerRequest{StartDate: &start})

	s.Require().Error(err)
	s.Require().Contains(err.Error(), "startDate")
}

func (s *RunnerTestSuite) TestRefusesConcurrentRun() {
	s.locker.EXPECT().
		TryAcquire(gomock.Any(), "sync:teamlogos").
		Return(nil, false, nil)

	_, err := s.runner.Run(context.Background(), "teamlogos", service.TriggerRequest{})

	s.Require().ErrorIs(err, service.ErrAlreadyRunning)
}

func (s *RunnerTestSuite) TestSuccessfulRunReleasesLockAndAudits() {
	s.locker.EXPECT().
		TryAcquire(gomock.Any(), "sync:teamlogos").
		Return(s.unlocker, true, nil)
	s.unlocker.EXPECT().Release(gomock.Any()).Return(nil)
	s.teams.EXPECT().
		NeedingLogos(gomock.Any(), []int64{8, 9}, false, 500).
		Return(nil, nil)

	var recorded domain.Operation
	s.ops.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op domain.Operation) error {
			recorded = op
			return nil
		})

	summary, err := s.runner.Run(context.Background(), "teamlogos", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Equal("teamlogos", recorded.Name)
	s.Require().True(recorded.Success)
	s.Require().NotEmpty(recorded.Details)
}

func (s *RunnerTestSuite) TestExecuteFailureCapturedInSummaryAndAudit() {
	s.locker.EXPECT().
		TryAcquire(gomock.Any(), "sync:teamlogos").
		Return(s.unlocker, true, nil)
	s.unlocker.EXPECT().Release(gomock.Any()).Return(nil)
	s.teams.EXPECT().
		NeedingLogos(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	var recorded domain.Operation
	s.ops.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op domain.Operation) error {
			recorded = op
			return nil
		})

	summary, err := s.runner.Run(context.Background(), "teamlogos", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().False(summary.Success)
	s.Require().Contains(summary.Error, "db down")
	s.Require().False(recorded.Success)
}

func (s *RunnerTestSuite) TestJobNamesStable() {
	s.Require().Equal([]string{"teamlogos"}, s.runner.JobNames())
}
