package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"matchsync/internal/batch"
	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// TVChannelJob backfills broadcaster links for upcoming fixtures that have
// none yet. Fixtures already linked are left alone.
type TVChannelJob struct {
	provider Provider
	fixtures FixtureStore
	stations TVStationStore
	maxPages int
	logger   *slog.Logger
}

func NewTVChannelJob(provider Provider, fixtures FixtureStore, stations TVStationStore, maxPages int, logger *slog.Logger) *TVChannelJob {
	return &TVChannelJob{
		provider: provider,
		fixtures: fixtures,
		stations: stations,
		maxPages: maxPages,
		logger:   logger.With("job", "tvchannels"),
	}
}

func (j *TVChannelJob) Name() string { return "tvchannels" }

func (j *TVChannelJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	known, err := j.syncStations(ctx, run)
	if err != nil {
		return err
	}

	refs, err := j.fixtures.WithoutTVLinks(ctx, p.From, p.To, p.LeagueIDs, p.MaxFixtures)
	if err != nil {
		return fmt.Errorf("select fixtures without tv links: %w", err)
	}
	run.AddFetched(len(refs))
	run.Logf("%d fixtures missing tv links", len(refs))
	if len(refs) == 0 {
		return nil
	}

	results := batch.Process(ctx, refs, p.BatchSize, func(ctx context.Context, ref domain.FixtureRef) ([]domain.FixtureTVStation, error) {
		params := url.Values{}
		params.Set("include", "tvstations")

		raw, err := fetchItem(ctx, j.provider, run, fmt.Sprintf("/football/fixtures/%d", ref.ID), params)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture %d: %w", ref.ID, err)
		}

		var payload sportmonks.FixturePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("parse fixture %d: %w", ref.ID, err)
		}
		return sportmonks.MapTVLinks(ref.ID, payload.TVStations), nil
	})

	if err := missingToken(results); err != nil {
		return err
	}

	var links []domain.FixtureTVStation
	for _, res := range results {
		if !res.Success {
			run.AddErrors(1)
			run.Logf("fixture skipped: %v", res.Err)
			continue
		}
		for _, link := range res.Value {
			// Skip broadcasters the catalogue sync never saw.
			if len(known) > 0 && !known[link.TVStationID] {
				run.AddFiltered(1)
				continue
			}
			links = append(links, link)
		}
	}

	if len(links) > 0 {
		if err := j.stations.LinkBatch(ctx, links); err != nil {
			return fmt.Errorf("link tv stations: %w", err)
		}
	}
	run.AddUpdated(len(links))

	succeeded, failed := batch.Tally(results)
	run.SetResult("fixturesProcessed", len(refs))
	run.SetResult("linksCreated", len(links))
	run.Logf("linked %d broadcasters across %d fixtures (%d failed)", len(links), succeeded, failed)

	j.logger.Info("tv channels linked", "fixtures", succeeded, "failed", failed, "links", len(links))
	return nil
}

// syncStations refreshes the broadcaster catalogue and returns the set of
// station ids now known locally.
func (j *TVChannelJob) syncStations(ctx context.Context, run *report.Run) (map[int64]bool, error) {
	stations, err := syncCatalogue(ctx, j.provider, run, "tv stations", "/football/tv-stations",
		j.maxPages, sportmonks.MapTVStation, j.stations.UpsertBatch)
	if err != nil {
		return nil, err
	}

	known := make(map[int64]bool, len(stations))
	for _, station := range stations {
		known[station.ID] = true
	}
	return known, nil
}
