package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

type OddsStore struct {
	db *sqlx.DB
}

func NewOddsStore(db *sqlx.DB) *OddsStore {
	return &OddsStore{db: db}
}

var oddColumns = []string{
	"id", "fixture_id", "market_id", "bookmaker_id", "label", "value",
	"name", "sort_order", "market_description", "probability", "fractional",
	"american", "winning", "stopped", "total", "handicap",
	"latest_bookmaker_update",
}

// UpsertBatch refreshes odds keyed by their upstream id. Odds are
// time-varying, so every non-key column is always overwritten.
func (s *OddsStore) UpsertBatch(ctx context.Context, odds []domain.Odd) error {
	if len(odds) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)

	return chunked(odds, upsertChunkSize, func(chunk []domain.Odd) error {
		query := fmt.Sprintf(
			"INSERT INTO odds (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(oddColumns, ", "),
			valuePlaceholders(len(chunk), len(oddColumns)),
			excludedSet(oddColumns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(oddColumns))
		for _, o := range chunk {
			args = append(args,
				o.ID, o.FixtureID, o.MarketID, o.BookmakerID, o.Label, o.Value,
				o.Name, o.SortOrder, o.MarketDescription, o.Probability,
				o.Fractional, o.American, o.Winning, o.Stopped, o.Total,
				o.Handicap, o.LatestBookmakerUpdate,
			)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert odds: %w", err)
		}
		return nil
	})
}
