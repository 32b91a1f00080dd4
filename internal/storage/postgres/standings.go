package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchsync/internal/domain"
)

type SeasonStore struct {
	db *sqlx.DB
}

func NewSeasonStore(db *sqlx.DB) *SeasonStore {
	return &SeasonStore{db: db}
}

// EnsureBatch inserts seasons that are not yet known; existing rows are left
// alone, standings only need the foreign key to resolve.
func (s *SeasonStore) EnsureBatch(ctx context.Context, seasons []domain.Season) error {
	if len(seasons) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{
		"id", "sport_id", "league_id", "name", "finished", "pending",
		"is_current", "starting_at", "ending_at",
	}

	return chunked(seasons, upsertChunkSize, func(chunk []domain.Season) error {
		query := fmt.Sprintf(
			"INSERT INTO seasons (%s) VALUES %s ON CONFLICT (id) DO NOTHING",
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, season := range chunk {
			args = append(args,
				season.ID, season.SportID, season.LeagueID, season.Name,
				season.Finished, season.Pending, season.IsCurrent,
				season.StartingAt, season.EndingAt,
			)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("ensure seasons: %w", err)
		}
		return nil
	})
}

// CurrentForLeagues returns the current season per league in the allow-list.
func (s *SeasonStore) CurrentForLeagues(ctx context.Context, leagueIDs []int64) ([]domain.Season, error) {
	query := `
		SELECT id, sport_id, league_id, name, finished, pending, is_current, starting_at, ending_at
		FROM seasons
		WHERE league_id = ANY($1) AND is_current = true`

	var seasons []domain.Season
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &seasons, query, pq.Array(leagueIDs))
	if err != nil {
		return nil, fmt.Errorf("select current seasons: %w", err)
	}
	return seasons, nil
}

type StandingStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewStandingStore(db *sqlx.DB) *StandingStore {
	return &StandingStore{db: db, tm: NewTransactionManager(db)}
}

// ReplaceForSeasons implements replace-by-partition: inside one transaction
// all standings rows for the touched seasons are deleted, then the freshly
// computed rows inserted. After commit the partition holds exactly the new
// rows.
func (s *StandingStore) ReplaceForSeasons(ctx context.Context, seasonIDs []int64, standings []domain.Standing) error {
	if len(seasonIDs) == 0 {
		return nil
	}

	columns := []string{"id", "season_id", "team_id", "position", "points"}

	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		if _, err := exec.ExecContext(txCtx,
			"DELETE FROM standings WHERE season_id = ANY($1)", pq.Array(seasonIDs),
		); err != nil {
			return fmt.Errorf("delete standings: %w", err)
		}

		return chunked(standings, upsertChunkSize, func(chunk []domain.Standing) error {
			query := fmt.Sprintf(
				"INSERT INTO standings (%s) VALUES %s",
				strings.Join(columns, ", "),
				valuePlaceholders(len(chunk), len(columns)),
			)

			args := make([]interface{}, 0, len(chunk)*len(columns))
			for _, st := range chunk {
				args = append(args, st.ID, st.SeasonID, st.TeamID, st.Position, st.Points)
			}

			if _, err := exec.ExecContext(txCtx, query, args...); err != nil {
				return fmt.Errorf("insert standings: %w", err)
			}
			return nil
		})
	})
}
