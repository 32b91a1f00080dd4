package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"matchsync/internal/batch"
	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
	"matchsync/internal/score"
)

// LiveUpdateJob polls today's fixtures and applies score and state changes
// to the stored rows, publishing an event for every change it makes. It
// always works on the current day, independent of the run window.
type LiveUpdateJob struct {
	provider  Provider
	fixtures  FixtureStore
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewLiveUpdateJob(provider Provider, fixtures FixtureStore, publisher Publisher, logger *slog.Logger) *LiveUpdateJob {
	return &LiveUpdateJob{
		provider:  provider,
		fixtures:  fixtures,
		publisher: publisher,
		logger:    logger.With("job", "live"),
		now:       time.Now,
	}
}

func (j *LiveUpdateJob) Name() string { return "live" }

func (j *LiveUpdateJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	now := j.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	refs, err := j.fixtures.InWindow(ctx, dayStart, dayEnd, p.LeagueIDs, p.MaxFixtures)
	if err != nil {
		return fmt.Errorf("select today's fixtures: %w", err)
	}
	run.AddFetched(len(refs))
	run.Logf("%d fixtures today", len(refs))
	if len(refs) == 0 {
		return nil
	}

	results := batch.Process(ctx, refs, p.BatchSize, func(ctx context.Context, ref domain.FixtureRef) (bool, error) {
		return j.updateFixture(ctx, p, ref, run)
	})

	if err := missingToken(results); err != nil {
		return err
	}

	changed := 0
	for _, res := range results {
		if !res.Success {
			run.AddErrors(1)
			run.Logf("fixture skipped: %v", res.Err)
			continue
		}
		if res.Value {
			changed++
		}
	}
	run.AddUpdated(changed)
	run.SetResult("fixturesChecked", len(refs))
	run.SetResult("fixturesChanged", changed)
	run.Logf("applied %d live updates", changed)

	j.logger.Info("live updates applied", "checked", len(refs), "changed", changed)
	return nil
}

// updateFixture reports whether the stored row changed.
func (j *LiveUpdateJob) updateFixture(ctx context.Context, p runParams, ref domain.FixtureRef, run *report.Run) (bool, error) {
	params := url.Values{}
	params.Set("include", "scores;participants;state")

	raw, err := fetchItem(ctx, j.provider, run, fmt.Sprintf("/football/fixtures/%d", ref.ID), params)
	if err != nil {
		return false, fmt.Errorf("fetch fixture %d: %w", ref.ID, err)
	}

	var payload sportmonks.FixturePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false, fmt.Errorf("parse fixture %d: %w", ref.ID, err)
	}

	update := domain.FixtureUpdate{FixtureID: ref.ID}

	if p.UpdateScores {
		snap := score.Resolve(sportmonks.Observations(payload.Scores))
		if (snap.Home != nil || snap.Away != nil) &&
			(!intPtrEqual(snap.Home, ref.HomeScore) || !intPtrEqual(snap.Away, ref.AwayScore)) {
			update.HomeScore = snap.Home
			update.AwayScore = snap.Away
			update.SetScores = true
		}
	}
	if p.UpdateStatus && payload.StateID != nil && !int64PtrEqual(payload.StateID, ref.StateID) {
		update.StateID = payload.StateID
		update.SetState = true
	}

	if !update.SetScores && !update.SetState {
		return false, nil
	}

	if err := j.fixtures.ApplyUpdate(ctx, update); err != nil {
		return false, fmt.Errorf("apply update for fixture %d: %w", ref.ID, err)
	}
	run.Logf("updated %s (scores=%t state=%t)", ref.Name, update.SetScores, update.SetState)

	if j.publisher != nil {
		event := domain.ScoreEvent{
			FixtureID: ref.ID,
			Name:      ref.Name,
			HomeScore: update.HomeScore,
			AwayScore: update.AwayScore,
			StateID:   update.StateID,
		}
		if err := j.publisher.PublishScoreChange(ctx, event); err != nil {
			// The row is already updated, so a publish failure only counts.
			run.AddErrors(1)
			run.Logf("publish failed for fixture %d: %v", ref.ID, err)
		}
	}

	return true, nil
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
