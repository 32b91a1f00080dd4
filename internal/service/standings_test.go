package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/service"
	"matchsync/internal/service/mocks"
)

type StandingsJobTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	provider  *mocks.MockProvider
	seasons   *mocks.MockSeasonStore
	standings *mocks.MockStandingStore
	locker    *mocks.MockLocker
	unlocker  *mocks.MockUnlocker
	ops       *mocks.MockOperationStore

	runner *service.Runner
}

func (s *StandingsJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocks.NewMockProvider(s.ctrl)
	s.seasons = mocks.NewMockSeasonStore(s.ctrl)
	s.standings = mocks.NewMockStandingStore(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.unlocker = mocks.NewMockUnlocker(s.ctrl)
	s.ops = mocks.NewMockOperationStore(s.ctrl)

	job := service.NewStandingsJob(s.provider, s.seasons, s.standings, 3, testLogger())
	s.runner = service.NewRunner(s.locker, s.ops, testJobsConfig(), testLogger(), job)
}

func (s *StandingsJobTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStandingsJobTestSuite(t *testing.T) {
	suite.Run(t, new(StandingsJobTestSuite))
}

func (s *StandingsJobTestSuite) grantRun() {
	s.locker.EXPECT().TryAcquire(gomock.Any(), "sync:standings").Return(s.unlocker, true, nil)
	s.unlocker.EXPECT().Release(gomock.Any()).Return(nil)
	s.ops.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *StandingsJobTestSuite) TestRebuildsCurrentSeasonOnly() {
	s.grantRun()

	s.seasons.EXPECT().CurrentForLeagues(gomock.Any(), []int64{8}).Return(nil, nil)

	s.provider.EXPECT().
		FetchAllPages(gomock.Any(), "/football/standings", gomock.Any(), 3).
		Return(sportmonks.PageResult{
			Items: []json.RawMessage{
				json.RawMessage(`{
					"id": 1, "participant_id": 10, "season_id": 100, "league_id": 8,
					"position": 1, "points": 30,
					"season": {"id": 100, "league_id": 8, "name": "2025/2026", "is_current": true}
				}`),
				json.RawMessage(`{
					"id": 2, "participant_id": 11, "season_id": 90, "league_id": 8,
					"position": 1, "points": 80,
					"season": {"id": 90, "league_id": 8, "name": "2024/2025", "is_current": false}
				}`),
			},
			APICalls: 1,
		})

	var ensured []domain.Season
	s.seasons.EXPECT().
		EnsureBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seasons []domain.Season) error {
			ensured = seasons
			return nil
		})

	var replacedSeasons []int64
	var replacedRows []domain.Standing
	s.standings.EXPECT().
		ReplaceForSeasons(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seasonIDs []int64, rows []domain.Standing) error {
			replacedSeasons = seasonIDs
			replacedRows = rows
			return nil
		})

	summary, err := s.runner.Run(context.Background(), "standings", service.TriggerRequest{LeagueIDs: []int64{8}})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Len(ensured, 1)
	s.Require().Equal(int64(100), ensured[0].ID)
	s.Require().Equal([]int64{100}, replacedSeasons)
	s.Require().Len(replacedRows, 1)
	s.Require().Equal(int64(10), replacedRows[0].TeamID)
	s.Require().Equal(2, summary.Fetched)
	s.Require().Equal(1, summary.Filtered)
	s.Require().Equal(1, summary.Updated)
}

func (s *StandingsJobTestSuite) TestOneLeagueFailingDoesNotAbortOthers() {
	s.grantRun()

	s.seasons.EXPECT().CurrentForLeagues(gomock.Any(), []int64{8, 9}).Return(nil, nil)

	leagueParams := func(leagueID string) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			values, ok := x.(url.Values)
			return ok && values.Get("filters") == "standingLeagues:"+leagueID
		})
	}

	s.provider.EXPECT().
		FetchAllPages(gomock.Any(), "/football/standings", leagueParams("8"), 3).
		Return(sportmonks.PageResult{APICalls: 1, Err: errors.New("upstream 500")})
	s.provider.EXPECT().
		FetchAllPages(gomock.Any(), "/football/standings", leagueParams("9"), 3).
		Return(sportmonks.PageResult{
			Items: []json.RawMessage{
				json.RawMessage(`{
					"id": 3, "participant_id": 12, "season_id": 200, "league_id": 9,
					"position": 4, "points": 21,
					"season": {"id": 200, "league_id": 9, "name": "2025/2026", "is_current": true}
				}`),
			},
			APICalls: 1,
		})

	s.seasons.EXPECT().EnsureBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.standings.EXPECT().
		ReplaceForSeasons(gomock.Any(), []int64{200}, gomock.Any()).
		Return(nil)

	summary, err := s.runner.Run(context.Background(), "standings", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Equal(1, summary.Errors)
	s.Require().Equal(1, summary.Updated)
}

func (s *StandingsJobTestSuite) TestNothingFetchedWritesNothing() {
	s.grantRun()

	s.seasons.EXPECT().CurrentForLeagues(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.provider.EXPECT().
		FetchAllPages(gomock.Any(), "/football/standings", gomock.Any(), gomock.Any()).
		Return(sportmonks.PageResult{APICalls: 1}).
		Times(2)

	summary, err := s.runner.Run(context.Background(), "standings", service.TriggerRequest{})

	s.Require().NoError(err)
	s.Require().True(summary.Success)
	s.Require().Zero(summary.Updated)
}
