package sportmonks

import "encoding/json"

// Payload types mirror the SportMonks v3 response shapes for the fields the
// pipeline persists. Everything else in the payload is ignored.

type FixturePayload struct {
	ID                  int64                `json:"id"`
	SportID             *int64               `json:"sport_id"`
	LeagueID            int64                `json:"league_id"`
	SeasonID            *int64               `json:"season_id"`
	StageID             *int64               `json:"stage_id"`
	RoundID             *int64               `json:"round_id"`
	StateID             *int64               `json:"state_id"`
	VenueID             *int64               `json:"venue_id"`
	Name                string               `json:"name"`
	StartingAt          string               `json:"starting_at"`
	StartingAtTimestamp int64                `json:"starting_at_timestamp"`
	ResultInfo          *string              `json:"result_info"`
	Leg                 *string              `json:"leg"`
	Length              *int                 `json:"length"`
	Placeholder         bool                 `json:"placeholder"`
	HasOdds             bool                 `json:"has_odds"`
	Participants        []ParticipantPayload `json:"participants"`
	Scores              []ScoreEntryPayload  `json:"scores"`
	TVStations          []TVLinkPayload      `json:"tvstations"`
	Odds                []OddPayload         `json:"odds"`
}

type ParticipantPayload struct {
	ID   int64 `json:"id"`
	Meta struct {
		Location string `json:"location"`
	} `json:"meta"`
}

type ScoreEntryPayload struct {
	Description string `json:"description"`
	Score       struct {
		Participant string `json:"participant"`
		Goals       *int   `json:"goals"`
	} `json:"score"`
}

type OddPayload struct {
	ID                    int64           `json:"id"`
	FixtureID             int64           `json:"fixture_id"`
	MarketID              int64           `json:"market_id"`
	BookmakerID           int64           `json:"bookmaker_id"`
	Label                 string          `json:"label"`
	Value                 string          `json:"value"`
	Name                  *string         `json:"name"`
	SortOrder             *int            `json:"sort_order"`
	MarketDescription     *string         `json:"market_description"`
	Probability           json.RawMessage `json:"probability"`
	Fractional            *string         `json:"fractional"`
	American              *string         `json:"american"`
	Winning               bool            `json:"winning"`
	Stopped               bool            `json:"stopped"`
	Total                 *string         `json:"total"`
	Handicap              *string         `json:"handicap"`
	LatestBookmakerUpdate *string         `json:"latest_bookmaker_update"`
}

type CountryPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ImagePath *string `json:"image_path"`
}

type LeaguePayload struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CountryID *int64          `json:"country_id"`
	ImagePath *string         `json:"image_path"`
	Country   *CountryPayload `json:"country"`
}

type TeamPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ShortCode *string `json:"short_code"`
	CountryID *int64  `json:"country_id"`
	ImagePath *string `json:"image_path"`
	LogoPath  *string `json:"logo_path"`
	LogoURL   *string `json:"logo_url"`
}

type BookmakerPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	URL       *string `json:"url"`
	ImagePath *string `json:"image_path"`
}

type TVStationPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	URL       *string `json:"url"`
	ImagePath *string `json:"image_path"`
}

type TVLinkPayload struct {
	TVStationID int64  `json:"tvstation_id"`
	FixtureID   int64  `json:"fixture_id"`
	CountryID   *int64 `json:"country_id"`
}

type SeasonPayload struct {
	ID         int64   `json:"id"`
	SportID    *int64  `json:"sport_id"`
	LeagueID   int64   `json:"league_id"`
	Name       string  `json:"name"`
	Finished   bool    `json:"finished"`
	Pending    bool    `json:"pending"`
	IsCurrent  bool    `json:"is_current"`
	StartingAt *string `json:"starting_at"`
	EndingAt   *string `json:"ending_at"`
}

type StandingPayload struct {
	ID            int64          `json:"id"`
	ParticipantID int64          `json:"participant_id"`
	SeasonID      int64          `json:"season_id"`
	LeagueID      int64          `json:"league_id"`
	Position      int            `json:"position"`
	Points        int            `json:"points"`
	Season        *SeasonPayload `json:"season"`
}
