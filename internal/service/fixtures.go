package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// FixtureJob pulls every fixture inside the run window and upserts the ones
// belonging to the configured leagues.
type FixtureJob struct {
	provider Provider
	fixtures FixtureStore
	maxPages int
	logger   *slog.Logger
}

func NewFixtureJob(provider Provider, fixtures FixtureStore, maxPages int, logger *slog.Logger) *FixtureJob {
	return &FixtureJob{
		provider: provider,
		fixtures: fixtures,
		maxPages: maxPages,
		logger:   logger.With("job", "fixtures"),
	}
}

func (j *FixtureJob) Name() string { return "fixtures" }

func (j *FixtureJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	path := fmt.Sprintf("/football/fixtures/between/%s/%s",
		p.From.Format(dateLayout), p.To.Format(dateLayout))

	params := url.Values{}
	params.Set("include", "participants;scores")

	res := j.provider.FetchAllPages(ctx, path, params, j.maxPages)
	run.AddAPICalls(res.APICalls)
	if res.Err != nil {
		if len(res.Items) == 0 {
			return fmt.Errorf("fetch fixtures: %w", res.Err)
		}
		// Keep the pages that did arrive and carry on with those.
		run.AddErrors(1)
		run.Logf("fixture fetch stopped early: %v", res.Err)
	}
	run.AddFetched(len(res.Items))

	allowed := idSet(p.LeagueIDs)

	var fixtures []domain.Fixture
	for _, raw := range res.Items {
		var payload sportmonks.FixturePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			run.AddErrors(1)
			run.Logf("skipping unparsable fixture: %v", err)
			continue
		}
		if len(allowed) > 0 && !allowed[payload.LeagueID] {
			continue
		}
		fixtures = append(fixtures, sportmonks.MapFixture(payload))
	}
	run.AddFiltered(len(res.Items) - len(fixtures))

	if len(fixtures) > 0 {
		if err := j.fixtures.UpsertBatch(ctx, fixtures); err != nil {
			return fmt.Errorf("upsert fixtures: %w", err)
		}
	}
	run.AddUpdated(len(fixtures))
	run.SetResult("fixturesSynced", len(fixtures))
	run.Logf("synced %d of %d fetched fixtures", len(fixtures), len(res.Items))

	j.logger.Info("fixtures synced", "fetched", len(res.Items), "upserted", len(fixtures))
	return nil
}
