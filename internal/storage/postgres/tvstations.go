package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

type TVStationStore struct {
	db *sqlx.DB
}

func NewTVStationStore(db *sqlx.DB) *TVStationStore {
	return &TVStationStore{db: db}
}

func (s *TVStationStore) UpsertBatch(ctx context.Context, stations []domain.TVStation) error {
	if len(stations) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{"id", "name", "url", "image_path"}

	return chunked(stations, upsertChunkSize, func(chunk []domain.TVStation) error {
		query := fmt.Sprintf(
			"INSERT INTO tvstations (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
			excludedSet(columns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, tv := range chunk {
			args = append(args, tv.ID, tv.Name, tv.URL, tv.ImagePath)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert tv stations: %w", err)
		}
		return nil
	})
}

// LinkBatch persists fixture-broadcaster links. Conflicts on the composite
// key update only the country, which is the sole non-key column.
func (s *TVStationStore) LinkBatch(ctx context.Context, links []domain.FixtureTVStation) error {
	if len(links) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{"fixture_id", "tvstation_id", "country_id"}

	return chunked(links, upsertChunkSize, func(chunk []domain.FixtureTVStation) error {
		query := fmt.Sprintf(
			`INSERT INTO fixture_tvstations (%s) VALUES %s
			ON CONFLICT (fixture_id, tvstation_id) DO UPDATE SET country_id = EXCLUDED.country_id`,
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, link := range chunk {
			args = append(args, link.FixtureID, link.TVStationID, link.CountryID)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixture tv links: %w", err)
		}
		return nil
	})
}
