package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"matchsync/internal/config"
)

func paramsConfig() config.JobsConfig {
	return config.JobsConfig{
		LeagueIDs:    []int64{8, 9},
		BookmakerIDs: []int64{2, 5},
		MaxFixtures:  50,
		MaxTeams:     500,
		BatchSize:    20,
		DaysBack:     0,
		DaysForward:  3,
	}
}

func TestResolveParams_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	p, err := resolveParams(paramsConfig(), TriggerRequest{}, now)

	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), p.From)
	require.Equal(t, time.Date(2026, 3, 13, 23, 59, 59, 0, time.UTC), p.To)
	require.Equal(t, []int64{8, 9}, p.LeagueIDs)
	require.Equal(t, []int64{2, 5}, p.BookmakerIDs)
	require.Equal(t, 50, p.MaxFixtures)
	require.Equal(t, 20, p.BatchSize)
	require.True(t, p.UpdateScores)
	require.True(t, p.IncludeCountries)
	require.False(t, p.IncludeAllTeams)
	require.True(t, p.CurrentSeasonOnly)
}

func TestResolveParams_OverridesWin(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	daysBack := 2
	maxFixtures := 5
	includeAll := true
	updateScores := false

	p, err := resolveParams(paramsConfig(), TriggerRequest{
		DaysBack:        &daysBack,
		LeagueIDs:       []int64{501},
		MaxFixtures:     &maxFixtures,
		IncludeAllTeams: &includeAll,
		UpdateScores:    &updateScores,
	}, now)

	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), p.From)
	require.Equal(t, []int64{501}, p.LeagueIDs)
	require.Equal(t, 5, p.MaxFixtures)
	require.True(t, p.IncludeAllTeams)
	require.False(t, p.UpdateScores)
}

func TestResolveParams_ExplicitDatesWinOverDayWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	start, end := "2026-01-01", "2026-01-05"

	p, err := resolveParams(paramsConfig(), TriggerRequest{StartDate: &start, EndDate: &end}, now)

	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.From)
	require.Equal(t, time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC), p.To)
}

func TestResolveParams_BadDateRejected(t *testing.T) {
	start := "01/03/2026"

	_, err := resolveParams(paramsConfig(), TriggerRequest{StartDate: &start}, time.Now())

	require.Error(t, err)
	require.Contains(t, err.Error(), "startDate")
}

func TestResolveParams_InvertedWindowRejected(t *testing.T) {
	start, end := "2026-03-10", "2026-03-01"

	_, err := resolveParams(paramsConfig(), TriggerRequest{StartDate: &start, EndDate: &end}, time.Now())

	require.Error(t, err)
}
