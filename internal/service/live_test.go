package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/service"
	"matchsync/internal/service/mocks"
)

type LiveUpdateJobTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	provider  *mocks.MockProvider
	fixtures  *mocks.MockFixtureStore
	publisher *mocks.MockPublisher
	locker    *mocks.MockLocker
	unlocker  *mocks.MockUnlocker
	ops       *mocks.MockOperationStore

	runner *service.Runner
}

func (s *LiveUpdateJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocks.NewMockProvider(s.ctrl)
	s.fixtures = mocks.NewMockFixtureStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.unlocker = mocks.NewMockUnlocker(s.ctrl)
	s.ops = mocks.NewMockOperationStore(s.ctrl)

	job := service.NewLiveUpdateJob(s.provider, s.fixtures, s.publisher, testLogger())
	s.runner = service.NewRunner(s.locker, s.ops, testJobsConfig(), testLogger(), job)
}

func (s *LiveUpdateJobTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLiveUpdateJobTestSuite(t *testing.T) {
	suite.Run(t, new(LiveUpdateJobTestSuite))
}

func (s *LiveUpdateJobTestSuite) grantRun() {
	s.locker.EXPECT().TryAcquire(gomock.Any(), "sync:live").Return(s.unlocker, true, nil)
	s.unlocker.EXPECT().Release(gomock.Any()).Return(nil)
	s.ops.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
}

const liveFixturePayload = `{
	"id": 7, "league_id": 8, "state_id": 22,
	"scores": [
		{"description": "CURRENT", "score": {"participant": "home", "goals": 2}},
		{"description": "CURRENT", "score": {"participant": "away", "goals": 1}}
	]
}`

func (s *LiveUpdateJobTestSuite) TestAppliesChangeAndPublishes() {
	s.grantRun()

	ref := domain.FixtureRef{
		ID: 7, Name: "A vs B", LeagueID: 8,
		StateID: int64Ptr(1), HomeScore: intPtr(0), AwayScore: intPtr(0),
	}
	s.fixtures.EXPECT().
		InWindow(gomock.Any(), gomock.Any(), gomock.Any(), []int64{8, 9}, 50).
		Return([]domain.FixtureRef{ref}, nil)
	s.provider.EXPECT().
		FetchOne(gomock.Any(), "/football/fixtures/7", gomock.Any()).
		Return(json.RawMessage(liveFixturePayload), nil)

	var applied domain.FixtureUpdate
	s.fixtures.EXPECT().
		ApplyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update domain.FixtureUpdate) error {
			applied = update
			return nil
		})

	var published domain.ScoreEvent
	s.publisher.EXPECT().
		PublishScoreChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.ScoreEvent) error {
			published = event
			return nil
		})

	summary, err := s.runner.Run(context.Background(), "live", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Equal(int64(7), applied.FixtureID)
	s.Require().True(applied.SetScores)
	s.Require().True(applied.SetState)
	s.Require().Equal(2, *applied.HomeScore)
	s.Require().Equal(1, *applied.AwayScore)
	s.Require().Equal(int64(22), *applied.StateID)
	s.Require().Equal(int64(7), published.FixtureID)
	s.Require().Equal("A vs B", published.Name)
	s.Require().Equal(1, summary.Updated)
}

func (s *LiveUpdateJobTestSuite) TestUnchangedFixtureIsNotWritten() {
	s.grantRun()

	ref := domain.FixtureRef{
		ID: 7, Name: "A vs B", LeagueID: 8,
		StateID: int64Ptr(22), HomeScore: intPtr(2), AwayScore: intPtr(1),
	}
	s.fixtures.EXPECT().
		InWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FixtureRef{ref}, nil)
	s.provider.EXPECT().
		FetchOne(gomock.Any(), "/football/fixtures/7", gomock.Any()).
		Return(json.RawMessage(liveFixturePayload), nil)

	summary, err := s.runner.Run(context.Background(), "live", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Zero(summary.Updated)
}

func (s *LiveUpdateJobTestSuite) TestDisabledScoreUpdatesStillApplyState() {
	s.grantRun()

	ref := domain.FixtureRef{
		ID: 7, Name: "A vs B", LeagueID: 8,
		StateID: int64Ptr(1), HomeScore: intPtr(0), AwayScore: intPtr(0),
	}
	s.fixtures.EXPECT().
		InWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FixtureRef{ref}, nil)
	s.provider.EXPECT().
		FetchOne(gomock.Any(), "/football/fixtures/7", gomock.Any()).
		Return(json.RawMessage(liveFixturePayload), nil)

	var applied domain.FixtureUpdate
	s.fixtures.EXPECT().
		ApplyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update domain.FixtureUpdate) error {
			applied = update
			return nil
		})
	s.publisher.EXPECT().PublishScoreChange(gomock.Any(), gomock.Any()).Return(nil)

	updateScores := false
	summary, err := s.runner.Run(context.Background(), "live", service.TriggerRequest{UpdateScores: &updateScores})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().False(applied.SetScores)
	s.Require().True(applied.SetState)
}

func (s *LiveUpdateJobTestSuite) TestPublishFailureKeepsTheRowUpdate() {
	s.grantRun()

	ref := domain.FixtureRef{
		ID: 7, Name: "A vs B", LeagueID: 8,
		StateID: int64Ptr(1), HomeScore: intPtr(0), AwayScore: intPtr(0),
	}
	s.fixtures.EXPECT().
		InWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FixtureRef{ref}, nil)
	s.provider.EXPECT().
		FetchOne(gomock.Any(), "/football/fixtures/7", gomock.Any()).
		Return(json.RawMessage(liveFixturePayload), nil)
	s.fixtures.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().
		PublishScoreChange(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	summary, err := s.runner.Run(context.Background(), "live", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Equal(1, summary.Updated)
	s.Require().Equal(1, summary.Errors)
}

func (s *LiveUpdateJobTestSuite) TestMissingTokenFailsTheRun() {
	s.grantRun()

	ref := domain.FixtureRef{ID: 7, Name: "A vs B", LeagueID: 8}
	s.fixtures.EXPECT().
		InWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FixtureRef{ref}, nil)

	s.provider.EXPECT().
		FetchOne(gomock.Any(), "/football/fixtures/7", gomock.Any()).
		Return(nil, sportmonks.ErrMissingToken)

	summary, err := s.runner.Run(context.Background(), "live", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().False(summary.Success)
	s.Require().Zero(summary.APICalls)
	s.Require().Contains(summary.Error, "api token")
}
