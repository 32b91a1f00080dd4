package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"matchsync/internal/batch"
	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// TeamLogoJob backfills real logo URLs for teams that still carry a
// placeholder or no logo at all.
type TeamLogoJob struct {
	provider Provider
	teams    TeamStore
	logger   *slog.Logger
}

func NewTeamLogoJob(provider Provider, teams TeamStore, logger *slog.Logger) *TeamLogoJob {
	return &TeamLogoJob{
		provider: provider,
		teams:    teams,
		logger:   logger.With("job", "teamlogos"),
	}
}

func (j *TeamLogoJob) Name() string { return "teamlogos" }

func (j *TeamLogoJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	refs, err := j.teams.NeedingLogos(ctx, p.LeagueIDs, p.IncludeAllTeams, p.MaxTeams)
	if err != nil {
		return fmt.Errorf("select teams needing logos: %w", err)
	}
	run.AddFetched(len(refs))
	run.Logf("%d teams need a logo", len(refs))
	if len(refs) == 0 {
		return nil
	}

	results := batch.Process(ctx, refs, p.BatchSize, func(ctx context.Context, ref domain.TeamRef) (string, error) {
		raw, err := fetchItem(ctx, j.provider, run, fmt.Sprintf("/football/teams/%d", ref.ID), nil)
		if err != nil {
			return "", fmt.Errorf("fetch team %d: %w", ref.ID, err)
		}

		var payload sportmonks.TeamPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return "", fmt.Errorf("parse team %d: %w", ref.ID, err)
		}

		logo := sportmonks.LogoFromTeam(payload)
		if logo == nil {
			// Upstream still has nothing better than a placeholder.
			return "", nil
		}
		if err := j.teams.UpdateLogo(ctx, ref.ID, *logo); err != nil {
			return "", fmt.Errorf("update logo for team %d: %w", ref.ID, err)
		}
		run.Logf("updated logo for %s", ref.Name)
		return *logo, nil
	})

	if err := missingToken(results); err != nil {
		return err
	}

	updated := 0
	for _, res := range results {
		switch {
		case !res.Success:
			run.AddErrors(1)
			run.Logf("team skipped: %v", res.Err)
		case res.Value == "":
			run.AddFiltered(1)
		default:
			updated++
		}
	}
	run.AddUpdated(updated)
	run.SetResult("teamsChecked", len(refs))
	run.SetResult("logosUpdated", updated)

	succeeded, failed := batch.Tally(results)
	run.Logf("updated %d logos (%d checked clean, %d failed)", updated, succeeded-updated, failed)

	j.logger.Info("team logos backfilled", "checked", len(refs), "updated", updated, "failed", failed)
	return nil
}
