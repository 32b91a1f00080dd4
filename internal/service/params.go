package service

import (
	"fmt"
	"time"

	"matchsync/internal/config"
)

const dateLayout = "2006-01-02"

// TriggerRequest is the optional parameter override a caller sends when
// starting a job. Nil fields fall back to the configured defaults.
type TriggerRequest struct {
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	DaysBack          *int    `json:"daysBack"`
	DaysForward       *int    `json:"daysForward"`
	LeagueIDs         []int64 `json:"leagueIds"`
	BookmakerIDs      []int64 `json:"bookmakerIds"`
	MaxFixtures       *int    `json:"maxFixtures"`
	MaxTeams          *int    `json:"maxTeams"`
	BatchSize         *int    `json:"batchSize"`
	IncludeAllTeams   *bool   `json:"includeAllTeams"`
	UpdateScores      *bool   `json:"updateScores"`
	UpdateStatus      *bool   `json:"updateStatus"`
	IncludeCountries  *bool   `json:"includeCountries"`
	IncludeLeagues    *bool   `json:"includeLeagues"`
	IncludeTeams      *bool   `json:"includeTeams"`
	IncludeBookmakers *bool   `json:"includeBookmakers"`
	IncludeTVStations *bool   `json:"includeTvStations"`
	CurrentSeasonOnly *bool   `json:"currentSeasonOnly"`
}

// runParams is the fully resolved parameter set a job executes with.
type runParams struct {
	From         time.Time
	To           time.Time
	LeagueIDs    []int64
	BookmakerIDs []int64
	MaxFixtures  int
	MaxTeams     int
	BatchSize    int

	IncludeAllTeams   bool
	UpdateScores      bool
	UpdateStatus      bool
	IncludeCountries  bool
	IncludeLeagues    bool
	IncludeTeams      bool
	IncludeBookmakers bool
	IncludeTVStations bool
	CurrentSeasonOnly bool
}

// resolveParams merges a trigger request onto the configured job defaults.
// Explicit startDate/endDate win over the relative day window; both bounds
// are normalized to whole days.
func resolveParams(cfg config.JobsConfig, req TriggerRequest, now time.Time) (runParams, error) {
	p := runParams{
		LeagueIDs:         cfg.LeagueIDs,
		BookmakerIDs:      cfg.BookmakerIDs,
		MaxFixtures:       cfg.MaxFixtures,
		MaxTeams:          cfg.MaxTeams,
		BatchSize:         cfg.BatchSize,
		UpdateScores:      true,
		UpdateStatus:      true,
		IncludeCountries:  true,
		IncludeLeagues:    true,
		IncludeTeams:      true,
		IncludeBookmakers: true,
		IncludeTVStations: true,
		CurrentSeasonOnly: true,
	}

	if len(req.LeagueIDs) > 0 {
		p.LeagueIDs = req.LeagueIDs
	}
	if len(req.BookmakerIDs) > 0 {
		p.BookmakerIDs = req.BookmakerIDs
	}
	if req.MaxFixtures != nil {
		p.MaxFixtures = *req.MaxFixtures
	}
	if req.MaxTeams != nil {
		p.MaxTeams = *req.MaxTeams
	}
	if req.BatchSize != nil {
		p.BatchSize = *req.BatchSize
	}
	if req.IncludeAllTeams != nil {
		p.IncludeAllTeams = *req.IncludeAllTeams
	}
	if req.UpdateScores != nil {
		p.UpdateScores = *req.UpdateScores
	}
	if req.UpdateStatus != nil {
		p.UpdateStatus = *req.UpdateStatus
	}
	if req.IncludeCountries != nil {
		p.IncludeCountries = *req.IncludeCountries
	}
	if req.IncludeLeagues != nil {
		p.IncludeLeagues = *req.IncludeLeagues
	}
	if req.IncludeTeams != nil {
		p.IncludeTeams = *req.IncludeTeams
	}
	if req.IncludeBookmakers != nil {
		p.IncludeBookmakers = *req.IncludeBookmakers
	}
	if req.IncludeTVStations != nil {
		p.IncludeTVStations = *req.IncludeTVStations
	}
	if req.CurrentSeasonOnly != nil {
		p.CurrentSeasonOnly = *req.CurrentSeasonOnly
	}

	daysBack := cfg.DaysBack
	if req.DaysBack != nil {
		daysBack = *req.DaysBack
	}
	daysForward := cfg.DaysForward
	if req.DaysForward != nil {
		daysForward = *req.DaysForward
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	p.From = today.AddDate(0, 0, -daysBack)
	p.To = today.AddDate(0, 0, daysForward).Add(24*time.Hour - time.Second)

	if req.StartDate != nil {
		from, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return runParams{}, fmt.Errorf("parse startDate %q: %w", *req.StartDate, err)
		}
		p.From = from
	}
	if req.EndDate != nil {
		to, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return runParams{}, fmt.Errorf("parse endDate %q: %w", *req.EndDate, err)
		}
		p.To = to.Add(24*time.Hour - time.Second)
	}
	if p.To.Before(p.From) {
		return runParams{}, fmt.Errorf("window ends before it starts: %s > %s",
			p.From.Format(dateLayout), p.To.Format(dateLayout))
	}

	return p, nil
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
