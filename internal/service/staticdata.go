package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"matchsync/internal/domain"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// StaticDataJob refreshes the slow-moving reference catalogues: countries,
// leagues, teams, bookmakers and tv stations. Each catalogue can be toggled
// off per run; a catalogue fetch failing is counted and the rest still run.
type StaticDataJob struct {
	provider   Provider
	countries  CountryStore
	leagues    LeagueStore
	teams      TeamStore
	bookmakers BookmakerStore
	stations   TVStationStore
	maxPages   int
	logger     *slog.Logger
}

func NewStaticDataJob(
	provider Provider,
	countries CountryStore,
	leagues LeagueStore,
	teams TeamStore,
	bookmakers BookmakerStore,
	stations TVStationStore,
	maxPages int,
	logger *slog.Logger,
) *StaticDataJob {
	return &StaticDataJob{
		provider:   provider,
		countries:  countries,
		leagues:    leagues,
		teams:      teams,
		bookmakers: bookmakers,
		stations:   stations,
		maxPages:   maxPages,
		logger:     logger.With("job", "staticdata"),
	}
}

func (j *StaticDataJob) Name() string { return "staticdata" }

func (j *StaticDataJob) Execute(ctx context.Context, p runParams, run *report.Run) error {
	if p.IncludeCountries || p.IncludeLeagues {
		if err := sectionDone(run, "league", j.syncLeagues(ctx, p, run)); err != nil {
			return err
		}
	}
	if p.IncludeTeams {
		if err := sectionDone(run, "team", j.syncTeams(ctx, p, run)); err != nil {
			return err
		}
	}
	if p.IncludeBookmakers {
		if err := sectionDone(run, "bookmaker", j.syncBookmakers(ctx, run)); err != nil {
			return err
		}
	}
	if p.IncludeTVStations {
		if err := sectionDone(run, "tv station", j.syncStations(ctx, run)); err != nil {
			return err
		}
	}

	j.logger.Info("static data refreshed", "errors", run.Errors())
	return nil
}

// sectionDone settles one catalogue section: failures are counted so the
// remaining sections still run, except an unconfigured token, which no
// section can survive and which fails the run.
func sectionDone(run *report.Run, label string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sportmonks.ErrMissingToken) {
		return err
	}
	run.AddErrors(1)
	run.Logf("%s sync failed: %v", label, err)
	return nil
}

// syncLeagues refreshes leagues and, because every league payload embeds its
// country, the country catalogue in the same pass. Countries go in first so
// the league foreign keys resolve.
func (j *StaticDataJob) syncLeagues(ctx context.Context, p runParams, run *report.Run) error {
	params := url.Values{}
	params.Set("include", "country")

	res := j.provider.FetchAllPages(ctx, "/football/leagues", params, j.maxPages)
	run.AddAPICalls(res.APICalls)
	if res.Err != nil && len(res.Items) == 0 {
		return fmt.Errorf("fetch leagues: %w", res.Err)
	}
	run.AddFetched(len(res.Items))

	countriesByID := map[int64]domain.Country{}
	leagues := make([]domain.League, 0, len(res.Items))
	for _, raw := range res.Items {
		var payload sportmonks.LeaguePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			run.AddErrors(1)
			continue
		}
		if payload.Country != nil {
			countriesByID[payload.Country.ID] = sportmonks.MapCountry(*payload.Country)
		}
		leagues = append(leagues, sportmonks.MapLeague(payload))
	}

	if p.IncludeCountries && len(countriesByID) > 0 {
		countries := make([]domain.Country, 0, len(countriesByID))
		for _, country := range countriesByID {
			countries = append(countries, country)
		}
		if err := j.countries.UpsertBatch(ctx, countries); err != nil {
			return fmt.Errorf("upsert countries: %w", err)
		}
		run.AddUpdated(len(countries))
		run.Logf("synced %d countries", len(countries))
	}

	if p.IncludeLeagues && len(leagues) > 0 {
		if err := j.leagues.UpsertBatch(ctx, leagues); err != nil {
			return fmt.Errorf("upsert leagues: %w", err)
		}
		run.AddUpdated(len(leagues))
		run.Logf("synced %d leagues", len(leagues))
	}
	return nil
}

func (j *StaticDataJob) syncTeams(ctx context.Context, p runParams, run *report.Run) error {
	params := url.Values{}
	if len(p.LeagueIDs) > 0 {
		params.Set("filters", "teamLeagues:"+joinIDs(p.LeagueIDs))
	}

	res := j.provider.FetchAllPages(ctx, "/football/teams", params, j.maxPages)
	run.AddAPICalls(res.APICalls)
	if res.Err != nil && len(res.Items) == 0 {
		return fmt.Errorf("fetch teams: %w", res.Err)
	}
	run.AddFetched(len(res.Items))

	teams := make([]domain.Team, 0, len(res.Items))
	for _, raw := range res.Items {
		if len(teams) >= p.MaxTeams {
			run.AddFiltered(len(res.Items) - len(teams))
			break
		}
		var payload sportmonks.TeamPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			run.AddErrors(1)
			continue
		}
		teams = append(teams, sportmonks.MapTeam(payload))
	}
	if len(teams) == 0 {
		return nil
	}
	if err := j.teams.UpsertBatch(ctx, teams); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	run.AddUpdated(len(teams))
	run.Logf("synced %d teams", len(teams))
	return nil
}

func (j *StaticDataJob) syncBookmakers(ctx context.Context, run *report.Run) error {
	bookmakers, err := syncCatalogue(ctx, j.provider, run, "bookmakers", "/odds/bookmakers",
		j.maxPages, sportmonks.MapBookmaker, j.bookmakers.UpsertBatch)
	if err != nil || len(bookmakers) == 0 {
		return err
	}
	run.AddFetched(len(bookmakers))
	run.AddUpdated(len(bookmakers))
	run.Logf("synced %d bookmakers", len(bookmakers))
	return nil
}

func (j *StaticDataJob) syncStations(ctx context.Context, run *report.Run) error {
	stations, err := syncCatalogue(ctx, j.provider, run, "tv stations", "/football/tv-stations",
		j.maxPages, sportmonks.MapTVStation, j.stations.UpsertBatch)
	if err != nil || len(stations) == 0 {
		return err
	}
	run.AddFetched(len(stations))
	run.AddUpdated(len(stations))
	run.Logf("synced %d tv stations", len(stations))
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
