package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// StandingsJob rebuilds league tables. Standings have no stable per-row
// identity worth diffing, so each touched season's table is replaced
// wholesale inside one transaction.
type StandingsJob struct {
	provider  Provider
	seasons   SeasonStore
	standings StandingStore
	maxPages  int
	logger    *slog.Logger
}

func NewStandingsJob(provider Provider, seasons SeasonStore, standings StandingStore, maxPages int, logger *slog.Logger) *StandingsJob {
	return &StandingsJob{
		provider:  provider,
		seasons:   seasons,
		standings: standings,
		maxPages:  maxPages,
		logger:    logger.With("job", "standings"),
	}
}

func (j *StandingsJob) Name() string { return "standings" }

func (j *StandingsJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	// Payloads without a season include fall back to the locally known
	// current seasons when filtering.
	currentSeasons := map[int64]bool{}
	if p.CurrentSeasonOnly {
		known, err := j.seasons.CurrentForLeagues(ctx, p.LeagueIDs)
		if err != nil {
			return fmt.Errorf("select current seasons: %w", err)
		}
		for _, season := range known {
			currentSeasons[season.ID] = true
		}
	}

	seasonRows := map[int64]domain.Season{}
	standingsBySeason := map[int64][]domain.Standing{}
	fetched, filtered := 0, 0

	for _, leagueID := range p.LeagueIDs {
		params := url.Values{}
		params.Set("include", "season")
		params.Set("filters", fmt.Sprintf("standingLeagues:%d", leagueID))

		res := j.provider.FetchAllPages(ctx, "/football/standings", params, j.maxPages)
		run.AddAPICalls(res.APICalls)
		if res.Err != nil {
			if errors.Is(res.Err, sportmonks.ErrMissingToken) {
				return res.Err
			}
			// One league failing must not wipe the tables of the others.
			run.AddErrors(1)
			run.Logf("standings fetch failed for league %d: %v", leagueID, res.Err)
			if len(res.Items) == 0 {
				continue
			}
		}

		fetched += len(res.Items)
		for _, raw := range res.Items {
			var payload sportmonks.StandingPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				run.AddErrors(1)
				continue
			}
			if p.CurrentSeasonOnly && !isCurrentSeason(payload, currentSeasons) {
				filtered++
				continue
			}
			if payload.Season != nil {
				seasonRows[payload.Season.ID] = sportmonks.MapSeason(*payload.Season)
			}
			standing := sportmonks.MapStanding(payload)
			standingsBySeason[standing.SeasonID] = append(standingsBySeason[standing.SeasonID], standing)
		}
	}

	run.AddFetched(fetched)
	run.AddFiltered(filtered)

	if len(standingsBySeason) == 0 {
		run.Logf("no standings to rebuild")
		return nil
	}

	seasons := make([]domain.Season, 0, len(seasonRows))
	for _, season := range seasonRows {
		seasons = append(seasons, season)
	}
	if len(seasons) > 0 {
		if err := j.seasons.EnsureBatch(ctx, seasons); err != nil {
			return fmt.Errorf("ensure seasons: %w", err)
		}
	}

	seasonIDs := make([]int64, 0, len(standingsBySeason))
	var rows []domain.Standing
	for seasonID, standings := range standingsBySeason {
		seasonIDs = append(seasonIDs, seasonID)
		rows = append(rows, standings...)
	}
	sort.Slice(seasonIDs, func(i, k int) bool { return seasonIDs[i] < seasonIDs[k] })

	if err := j.standings.ReplaceForSeasons(ctx, seasonIDs, rows); err != nil {
		return fmt.Errorf("replace standings: %w", err)
	}
	run.AddUpdated(len(rows))
	run.SetResult("seasonsRebuilt", len(seasonIDs))
	run.SetResult("standingsWritten", len(rows))
	run.Logf("rebuilt %d seasons with %d standings", len(seasonIDs), len(rows))

	j.logger.Info("standings rebuilt", "seasons", len(seasonIDs), "rows", len(rows))
	return nil
}

func isCurrentSeason(p sportmonks.StandingPayload, known map[int64]bool) bool {
	if p.Season != nil {
		return p.Season.IsCurrent
	}
	return known[p.SeasonID]
}
