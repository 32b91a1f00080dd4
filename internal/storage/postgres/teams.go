package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchsync/internal/domain"
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

var teamColumns = []string{"id", "name", "short_code", "country_id", "logo_url"}

func (s *TeamStore) UpsertBatch(ctx context.Context, teams []domain.Team) error {
	if len(teams) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)

	return chunked(teams, upsertChunkSize, func(chunk []domain.Team) error {
		// logo_url is only overwritten by a non-null incoming value so a
		// bulk re-sync without logos cannot erase an enriched one.
		query := fmt.Sprintf(
			`INSERT INTO teams (%s) VALUES %s
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				short_code = EXCLUDED.short_code,
				country_id = EXCLUDED.country_id,
				logo_url = COALESCE(EXCLUDED.logo_url, teams.logo_url)`,
			strings.Join(teamColumns, ", "),
			valuePlaceholders(len(chunk), len(teamColumns)),
		)

		args := make([]interface{}, 0, len(chunk)*len(teamColumns))
		for _, t := range chunk {
			args = append(args, t.ID, t.Name, t.ShortCode, t.CountryID, t.LogoURL)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert teams: %w", err)
		}
		return nil
	})
}

// NeedingLogos returns teams whose logo is absent or a known placeholder.
// Scoped to teams appearing in fixtures of the given leagues unless
// includeAll is set. Capped at limit.
func (s *TeamStore) NeedingLogos(ctx context.Context, leagueIDs []int64, includeAll bool, limit int) ([]domain.TeamRef, error) {
	var (
		query string
		args  []interface{}
	)

	if includeAll || len(leagueIDs) == 0 {
		query = `
			SELECT id, name, logo_url
			FROM teams
			WHERE logo_url IS NULL OR logo_url = '' OR logo_url ILIKE '%placeholder%'
			ORDER BY name
			LIMIT $1`
		args = []interface{}{limit}
	} else {
		query = `
			SELECT DISTINCT t.id, t.name, t.logo_url
			FROM teams t
			INNER JOIN fixtures f ON t.id = f.home_team_id OR t.id = f.away_team_id
			WHERE f.league_id = ANY($1)
			AND (t.logo_url IS NULL OR t.logo_url = '' OR t.logo_url ILIKE '%placeholder%')
			ORDER BY t.name
			LIMIT $2`
		args = []interface{}{pq.Array(leagueIDs), limit}
	}

	var refs []domain.TeamRef
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, query, args...); err != nil {
		return nil, fmt.Errorf("select teams needing logos: %w", err)
	}
	return refs, nil
}

func (s *TeamStore) UpdateLogo(ctx context.Context, teamID int64, logoURL string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE teams SET logo_url = $1 WHERE id = $2",
		logoURL, teamID,
	)
	if err != nil {
		return fmt.Errorf("update team %d logo: %w", teamID, err)
	}
	return nil
}
