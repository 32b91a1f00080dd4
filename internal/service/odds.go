package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"matchsync/internal/batch"
	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// matchWinnerMarketID is the 1X2 (full time result) market.
const matchWinnerMarketID = 1

// OddsJob refreshes 1X2 odds for every fixture in the run window. Odds move
// constantly, so there is no freshness check: every fixture in scope gets
// fetched and overwritten on each run.
type OddsJob struct {
	provider   Provider
	fixtures   FixtureStore
	odds       OddsStore
	bookmakers BookmakerStore
	maxPages   int
	logger     *slog.Logger
}

func NewOddsJob(provider Provider, fixtures FixtureStore, odds OddsStore, bookmakers BookmakerStore, maxPages int, logger *slog.Logger) *OddsJob {
	return &OddsJob{
		provider:   provider,
		fixtures:   fixtures,
		odds:       odds,
		bookmakers: bookmakers,
		maxPages:   maxPages,
		logger:     logger.With("job", "odds"),
	}
}

func (j *OddsJob) Name() string { return "odds" }

func (j *OddsJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	refs, err := j.fixtures.InWindow(ctx, p.From, p.To, p.LeagueIDs, p.MaxFixtures)
	if err != nil {
		return fmt.Errorf("select fixtures in window: %w", err)
	}
	run.Logf("%d fixtures in window", len(refs))
	if len(refs) == 0 {
		return nil
	}

	// The bookmaker catalogue goes in first so the odds rows written below
	// reference rows that exist.
	if _, err := syncCatalogue(ctx, j.provider, run, "bookmakers", "/odds/bookmakers",
		j.maxPages, sportmonks.MapBookmaker, j.bookmakers.UpsertBatch); err != nil {
		return err
	}

	allowed := idSet(p.BookmakerIDs)

	results := batch.Process(ctx, refs, p.BatchSize, func(ctx context.Context, ref domain.FixtureRef) (int, error) {
		params := url.Values{}
		params.Set("include", "odds")

		raw, err := fetchItem(ctx, j.provider, run, fmt.Sprintf("/football/fixtures/%d", ref.ID), params)
		if err != nil {
			return 0, fmt.Errorf("fetch fixture %d: %w", ref.ID, err)
		}

		var payload sportmonks.FixturePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return 0, fmt.Errorf("parse fixture %d: %w", ref.ID, err)
		}

		run.AddFetched(len(payload.Odds))
		odds := filterOdds(ref.ID, payload.Odds, allowed)
		run.AddFiltered(len(payload.Odds) - len(odds))

		if len(odds) == 0 {
			return 0, nil
		}
		if err := j.odds.UpsertBatch(ctx, odds); err != nil {
			return 0, fmt.Errorf("upsert odds for fixture %d: %w", ref.ID, err)
		}
		run.AddUpdated(len(odds))
		return len(odds), nil
	})

	if err := missingToken(results); err != nil {
		return err
	}

	total := 0
	for _, res := range results {
		if res.Success {
			total += res.Value
			continue
		}
		run.AddErrors(1)
		run.Logf("fixture skipped: %v", res.Err)
	}

	succeeded, failed := batch.Tally(results)
	run.SetResult("fixturesProcessed", len(refs))
	run.SetResult("oddsUpserted", total)
	run.Logf("refreshed odds for %d fixtures (%d failed)", succeeded, failed)

	j.logger.Info("odds refreshed", "fixtures", succeeded, "failed", failed, "odds", total)
	return nil
}

// filterOdds keeps only 1X2 outcomes from the selected bookmakers.
func filterOdds(fixtureID int64, payloads []sportmonks.OddPayload, allowedBookmakers map[int64]bool) []domain.Odd {
	var odds []domain.Odd
	for _, payload := range payloads {
		if payload.MarketID != matchWinnerMarketID {
			continue
		}
		if len(allowedBookmakers) > 0 && !allowedBookmakers[payload.BookmakerID] {
			continue
		}
		switch strings.ToLower(payload.Label) {
		case "home", "draw", "away":
		default:
			continue
		}
		odd := sportmonks.MapOdd(payload)
		odd.FixtureID = fixtureID
		odds = append(odds, odd)
	}
	return odds
}
