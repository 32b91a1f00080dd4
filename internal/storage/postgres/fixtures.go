package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchsync/internal/domain"
)

type FixtureStore struct {
	db *sqlx.DB
}

func NewFixtureStore(db *sqlx.DB) *FixtureStore {
	return &FixtureStore{db: db}
}

var fixtureColumns = []string{
	"id", "sport_id", "league_id", "season_id", "stage_id", "round_id",
	"state_id", "venue_id", "name", "starting_at", "result_info", "leg",
	"length", "placeholder", "has_odds", "home_team_id", "away_team_id",
	"home_score", "away_score",
}

// UpsertBatch writes fixtures keyed by their upstream id; every non-key
// column is refreshed on conflict. Each chunk is one atomic statement.
func (s *FixtureStore) UpsertBatch(ctx context.Context, fixtures []domain.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)

	return chunked(fixtures, upsertChunkSize, func(chunk []domain.Fixture) error {
		query := fmt.Sprintf(
			"INSERT INTO fixtures (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(fixtureColumns, ", "),
			valuePlaceholders(len(chunk), len(fixtureColumns)),
			excludedSet(fixtureColumns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(fixtureColumns))
		for _, f := range chunk {
			args = append(args,
				f.ID, f.SportID, f.LeagueID, f.SeasonID, f.StageID, f.RoundID,
				f.StateID, f.VenueID, f.Name, f.StartingAt, f.ResultInfo, f.Leg,
				f.Length, f.Placeholder, f.HasOdds, f.HomeTeamID, f.AwayTeamID,
				f.HomeScore, f.AwayScore,
			)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixtures: %w", err)
		}
		return nil
	})
}

// InWindow returns the slim comparison rows for fixtures starting inside
// [from, to] in the given leagues, kickoff ascending, capped at limit.
func (s *FixtureStore) InWindow(ctx context.Context, from, to time.Time, leagueIDs []int64, limit int) ([]domain.FixtureRef, error) {
	query := `
		SELECT id, name, league_id, starting_at, state_id, home_score, away_score
		FROM fixtures
		WHERE starting_at >= $1 AND starting_at <= $2
		AND league_id = ANY($3)
		ORDER BY starting_at ASC
		LIMIT $4`

	var refs []domain.FixtureRef
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, query, from, to, pq.Array(leagueIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("select fixtures in window: %w", err)
	}
	return refs, nil
}

// WithoutTVLinks is the anti-join variant of InWindow: fixtures in scope
// that have no persisted broadcaster link yet.
func (s *FixtureStore) WithoutTVLinks(ctx context.Context, from, to time.Time, leagueIDs []int64, limit int) ([]domain.FixtureRef, error) {
	query := `
		SELECT f.id, f.name, f.league_id, f.starting_at, f.state_id, f.home_score, f.away_score
		FROM fixtures f
		WHERE f.starting_at >= $1 AND f.starting_at <= $2
		AND f.league_id = ANY($3)
		AND NOT EXISTS (
			SELECT 1 FROM fixture_tvstations ftv WHERE ftv.fixture_id = f.id
		)
		ORDER BY f.starting_at ASC
		LIMIT $4`

	var refs []domain.FixtureRef
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, query, from, to, pq.Array(leagueIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("select fixtures without tv links: %w", err)
	}
	return refs, nil
}

// ApplyUpdate patches only the live fields a live-update run found changed.
func (s *FixtureStore) ApplyUpdate(ctx context.Context, update domain.FixtureUpdate) error {
	set := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	args = append(args, update.FixtureID)

	if update.SetState {
		args = append(args, update.StateID)
		set = append(set, fmt.Sprintf("state_id = $%d", len(args)))
	}
	if update.SetScores {
		args = append(args, update.HomeScore)
		set = append(set, fmt.Sprintf("home_score = $%d", len(args)))
		args = append(args, update.AwayScore)
		set = append(set, fmt.Sprintf("away_score = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE fixtures SET %s WHERE id = $1", strings.Join(set, ", "))
	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fixture %d: %w", update.FixtureID, err)
	}
	return nil
}

// Count reports the number of persisted fixtures, used by run summaries.
func (s *FixtureStore) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, "SELECT COUNT(*) FROM fixtures")
	return count, err
}
