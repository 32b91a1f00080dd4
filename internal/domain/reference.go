package domain

import "time"

type Country struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	ImagePath *string `db:"image_path"`
}

type League struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	CountryID *int64  `db:"country_id"`
	ImagePath *string `db:"image_path"`
}

type Team struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	ShortCode *string `db:"short_code"`
	CountryID *int64  `db:"country_id"`
	LogoURL   *string `db:"logo_url"`
}

// TeamRef is the comparison row used when deciding which teams still need a
// logo backfill.
type TeamRef struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	LogoURL *string `db:"logo_url"`
}

type Bookmaker struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	URL       *string `db:"url"`
	ImagePath *string `db:"image_path"`
}

type TVStation struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	URL       *string `db:"url"`
	ImagePath *string `db:"image_path"`
}

// FixtureTVStation links a fixture to a broadcaster in a country.
type FixtureTVStation struct {
	FixtureID   int64 `db:"fixture_id"`
	TVStationID int64 `db:"tvstation_id"`
	CountryID   int64 `db:"country_id"`
}

type Odd struct {
	ID                    int64      `db:"id"`
	FixtureID             int64      `db:"fixture_id"`
	MarketID              int64      `db:"market_id"`
	BookmakerID           int64      `db:"bookmaker_id"`
	Label                 string     `db:"label"`
	Value                 string     `db:"value"`
	Name                  *string    `db:"name"`
	SortOrder             *int       `db:"sort_order"`
	MarketDescription     *string    `db:"market_description"`
	Probability           *float64   `db:"probability"`
	Fractional            *string    `db:"fractional"`
	American              *string    `db:"american"`
	Winning               bool       `db:"winning"`
	Stopped               bool       `db:"stopped"`
	Total                 *string    `db:"total"`
	Handicap              *string    `db:"handicap"`
	LatestBookmakerUpdate *time.Time `db:"latest_bookmaker_update"`
}
