package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
)

type Provider interface {
	FetchAllPages(ctx context.Context, path string, params url.Values, maxPages int) sportmonks.PageResult
	FetchOne(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}

type FixtureStore interface {
	UpsertBatch(ctx context.Context, fixtures []domain.Fixture) error
	InWindow(ctx context.Context, from, to time.Time, leagueIDs []int64, limit int) ([]domain.FixtureRef, error)
	WithoutTVLinks(ctx context.Context, from, to time.Time, leagueIDs []int64, limit int) ([]domain.FixtureRef, error)
	ApplyUpdate(ctx context.Context, update domain.FixtureUpdate) error
}

type OddsStore interface {
	UpsertBatch(ctx context.Context, odds []domain.Odd) error
}

type TeamStore interface {
	UpsertBatch(ctx context.Context, teams []domain.Team) error
	NeedingLogos(ctx context.Context, leagueIDs []int64, includeAll bool, limit int) ([]domain.TeamRef, error)
	UpdateLogo(ctx context.Context, teamID int64, logoURL string) error
}

type CountryStore interface {
	UpsertBatch(ctx context.Context, countries []domain.Country) error
}

type LeagueStore interface {
	UpsertBatch(ctx context.Context, leagues []domain.League) error
}

type BookmakerStore interface {
	UpsertBatch(ctx context.Context, bookmakers []domain.Bookmaker) error
}

type TVStationStore interface {
	UpsertBatch(ctx context.Context, stations []domain.TVStation) error
	LinkBatch(ctx context.Context, links []domain.FixtureTVStation) error
}

type SeasonStore interface {
	EnsureBatch(ctx context.Context, seasons []domain.Season) error
	CurrentForLeagues(ctx context.Context, leagueIDs []int64) ([]domain.Season, error)
}

type StandingStore interface {
	ReplaceForSeasons(ctx context.Context, seasonIDs []int64, standings []domain.Standing) error
}

type OperationStore interface {
	Insert(ctx context.Context, op domain.Operation) error
	Recent(ctx context.Context, limit int) ([]domain.Operation, error)
}

// Unlocker releases a previously acquired run lock.
type Unlocker interface {
	Release(ctx context.Context) error
}

// Locker guards against concurrent runs of the same job and scope.
type Locker interface {
	TryAcquire(ctx context.Context, scope string) (Unlocker, bool, error)
}

type Publisher interface {
	PublishScoreChange(ctx context.Context, event domain.ScoreEvent) error
	Close() error
}
