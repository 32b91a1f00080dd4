package domain

import "time"

// Fixture mirrors one upstream fixture. The primary key is the upstream id,
// which keeps re-syncs idempotent.
type Fixture struct {
	ID          int64      `db:"id"`
	SportID     *int64     `db:"sport_id"`
	LeagueID    int64      `db:"league_id"`
	SeasonID    *int64     `db:"season_id"`
	StageID     *int64     `db:"stage_id"`
	RoundID     *int64     `db:"round_id"`
	StateID     *int64     `db:"state_id"`
	VenueID     *int64     `db:"venue_id"`
	Name        string     `db:"name"`
	StartingAt  time.Time  `db:"starting_at"`
	ResultInfo  *string    `db:"result_info"`
	Leg         *string    `db:"leg"`
	Length      *int       `db:"length"`
	Placeholder bool       `db:"placeholder"`
	HasOdds     bool       `db:"has_odds"`
	HomeTeamID  *int64     `db:"home_team_id"`
	AwayTeamID  *int64     `db:"away_team_id"`
	HomeScore   *int       `db:"home_score"`
	AwayScore   *int       `db:"away_score"`
}

// FixtureRef is the slim comparison row read by need-detection queries.
type FixtureRef struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	LeagueID   int64     `db:"league_id"`
	StartingAt time.Time `db:"starting_at"`
	StateID    *int64    `db:"state_id"`
	HomeScore  *int      `db:"home_score"`
	AwayScore  *int      `db:"away_score"`
}

// FixtureUpdate carries the mutable live fields for a single fixture.
type FixtureUpdate struct {
	FixtureID  int64
	StateID    *int64
	HomeScore  *int
	AwayScore  *int
	SetState   bool
	SetScores  bool
}

// ScoreEvent is emitted when a live-update run observes a changed score or
// match state.
type ScoreEvent struct {
	FixtureID int64  `json:"fixture_id"`
	Name      string `json:"name"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	StateID   *int64 `json:"state_id"`
}

type Season struct {
	ID         int64      `db:"id"`
	SportID    *int64     `db:"sport_id"`
	LeagueID   int64      `db:"league_id"`
	Name       string     `db:"name"`
	Finished   bool       `db:"finished"`
	Pending    bool       `db:"pending"`
	IsCurrent  bool       `db:"is_current"`
	StartingAt *time.Time `db:"starting_at"`
	EndingAt   *time.Time `db:"ending_at"`
}

// Standing rows are regenerated wholesale per season (replace-by-partition),
// so they carry no local bookkeeping columns.
type Standing struct {
	ID       int64 `db:"id"`
	SeasonID int64 `db:"season_id"`
	TeamID   int64 `db:"team_id"`
	Position int   `db:"position"`
	Points   int   `db:"points"`
}
