package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

// Reference stores cover the small upstream-mirrored lookup tables. They all
// follow the same upsert-by-id shape.

type CountryStore struct {
	db *sqlx.DB
}

func NewCountryStore(db *sqlx.DB) *CountryStore {
	return &CountryStore{db: db}
}

func (s *CountryStore) UpsertBatch(ctx context.Context, countries []domain.Country) error {
	if len(countries) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{"id", "name", "image_path"}

	return chunked(countries, upsertChunkSize, func(chunk []domain.Country) error {
		query := fmt.Sprintf(
			"INSERT INTO countries (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
			excludedSet(columns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, c := range chunk {
			args = append(args, c.ID, c.Name, c.ImagePath)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert countries: %w", err)
		}
		return nil
	})
}

type LeagueStore struct {
	db *sqlx.DB
}

func NewLeagueStore(db *sqlx.DB) *LeagueStore {
	return &LeagueStore{db: db}
}

func (s *LeagueStore) UpsertBatch(ctx context.Context, leagues []domain.League) error {
	if len(leagues) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{"id", "name", "country_id", "image_path"}

	return chunked(leagues, upsertChunkSize, func(chunk []domain.League) error {
		query := fmt.Sprintf(
			"INSERT INTO leagues (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
			excludedSet(columns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, l := range chunk {
			args = append(args, l.ID, l.Name, l.CountryID, l.ImagePath)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert leagues: %w", err)
		}
		return nil
	})
}

type BookmakerStore struct {
	db *sqlx.DB
}

func NewBookmakerStore(db *sqlx.DB) *BookmakerStore {
	return &BookmakerStore{db: db}
}

func (s *BookmakerStore) UpsertBatch(ctx context.Context, bookmakers []domain.Bookmaker) error {
	if len(bookmakers) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	columns := []string{"id", "name", "url", "image_path"}

	return chunked(bookmakers, upsertChunkSize, func(chunk []domain.Bookmaker) error {
		query := fmt.Sprintf(
			"INSERT INTO bookmakers (%s) VALUES %s ON CONFLICT (id) DO UPDATE SET %s",
			strings.Join(columns, ", "),
			valuePlaceholders(len(chunk), len(columns)),
			excludedSet(columns[1:]),
		)

		args := make([]interface{}, 0, len(chunk)*len(columns))
		for _, b := range chunk {
			args = append(args, b.ID, b.Name, b.URL, b.ImagePath)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert bookmakers: %w", err)
		}
		return nil
	})
}
