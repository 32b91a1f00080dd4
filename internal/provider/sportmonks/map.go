package sportmonks

import (
	"strconv"
	"strings"
	"time"

	"matchsync/internal/domain"
	"matchsync/internal/score"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// placeholderKeywords mark sentinel logo URLs the provider hands out when it
// has no real image for a team.
var placeholderKeywords = []string{
	"placeholder", "default", "generic", "unknown", "team_placeholder",
}

// IsValidLogoURL accepts only absolute http(s) URLs that carry none of the
// known placeholder keywords.
func IsValidLogoURL(logoURL string) bool {
	if logoURL == "" {
		return false
	}
	lower := strings.ToLower(logoURL)
	for _, keyword := range placeholderKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	return strings.HasPrefix(logoURL, "http")
}

// LogoFromTeam returns the first valid logo URL present on a bulk-listed
// team payload, or nil when the payload has none worth keeping.
func LogoFromTeam(p TeamPayload) *string {
	for _, candidate := range []*string{p.ImagePath, p.LogoPath, p.LogoURL} {
		if candidate != nil && IsValidLogoURL(*candidate) {
			return candidate
		}
	}
	return nil
}

// Observations converts the tagged score entries of a fixture payload into
// resolver input, preserving payload order.
func Observations(entries []ScoreEntryPayload) []score.Observation {
	obs := make([]score.Observation, 0, len(entries))
	for _, entry := range entries {
		obs = append(obs, score.Observation{
			Tier:  score.Tier(entry.Description),
			Side:  score.Side(entry.Score.Participant),
			Goals: entry.Score.Goals,
		})
	}
	return obs
}

// MapFixture flattens a fixture payload into its persisted row: participants
// become home/away team ids and the tagged scores resolve to one pair.
func MapFixture(p FixturePayload) domain.Fixture {
	fixture := domain.Fixture{
		ID:          p.ID,
		SportID:     p.SportID,
		LeagueID:    p.LeagueID,
		SeasonID:    p.SeasonID,
		StageID:     p.StageID,
		RoundID:     p.RoundID,
		StateID:     p.StateID,
		VenueID:     p.VenueID,
		Name:        p.Name,
		StartingAt:  parseKickoff(p.StartingAt, p.StartingAtTimestamp),
		ResultInfo:  p.ResultInfo,
		Leg:         p.Leg,
		Length:      p.Length,
		Placeholder: p.Placeholder,
		HasOdds:     p.HasOdds,
	}

	for _, participant := range p.Participants {
		id := participant.ID
		switch participant.Meta.Location {
		case "home":
			fixture.HomeTeamID = &id
		case "away":
			fixture.AwayTeamID = &id
		}
	}

	snap := score.Resolve(Observations(p.Scores))
	fixture.HomeScore = snap.Home
	fixture.AwayScore = snap.Away

	return fixture
}

func MapOdd(p OddPayload) domain.Odd {
	odd := domain.Odd{
		ID:                p.ID,
		FixtureID:         p.FixtureID,
		MarketID:          p.MarketID,
		BookmakerID:       p.BookmakerID,
		Label:             p.Label,
		Value:             p.Value,
		Name:              p.Name,
		SortOrder:         p.SortOrder,
		MarketDescription: p.MarketDescription,
		Probability:       CleanProbability(p.Probability),
		Fractional:        p.Fractional,
		American:          p.American,
		Winning:           p.Winning,
		Stopped:           p.Stopped,
		Total:             p.Total,
		Handicap:          p.Handicap,
	}

	if p.LatestBookmakerUpdate != nil {
		if ts, err := time.Parse(timestampLayout, *p.LatestBookmakerUpdate); err == nil {
			odd.LatestBookmakerUpdate = &ts
		}
	}

	return odd
}

// CleanProbability turns the provider's probability field, which arrives as
// a bare number or a "33.33%" string, into a float. Unparsable values map to
// nil rather than failing the record.
func CleanProbability(raw []byte) *float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &value
}

func MapCountry(p CountryPayload) domain.Country {
	return domain.Country{ID: p.ID, Name: p.Name, ImagePath: p.ImagePath}
}

func MapLeague(p LeaguePayload) domain.League {
	return domain.League{ID: p.ID, Name: p.Name, CountryID: p.CountryID, ImagePath: p.ImagePath}
}

func MapTeam(p TeamPayload) domain.Team {
	return domain.Team{
		ID:        p.ID,
		Name:      p.Name,
		ShortCode: p.ShortCode,
		CountryID: p.CountryID,
		LogoURL:   LogoFromTeam(p),
	}
}

func MapBookmaker(p BookmakerPayload) domain.Bookmaker {
	return domain.Bookmaker{ID: p.ID, Name: p.Name, URL: p.URL, ImagePath: p.ImagePath}
}

func MapTVStation(p TVStationPayload) domain.TVStation {
	return domain.TVStation{ID: p.ID, Name: p.Name, URL: p.URL, ImagePath: p.ImagePath}
}

// MapTVLinks keeps only links whose station id falls in the provider's valid
// range; a missing country defaults to the international bucket.
func MapTVLinks(fixtureID int64, links []TVLinkPayload) []domain.FixtureTVStation {
	var rows []domain.FixtureTVStation
	for _, link := range links {
		if link.TVStationID < 1 || link.TVStationID > 10000 {
			continue
		}
		countryID := int64(1)
		if link.CountryID != nil {
			countryID = *link.CountryID
		}
		rows = append(rows, domain.FixtureTVStation{
			FixtureID:   fixtureID,
			TVStationID: link.TVStationID,
			CountryID:   countryID,
		})
	}
	return rows
}

func MapStanding(p StandingPayload) domain.Standing {
	return domain.Standing{
		ID:       p.ID,
		SeasonID: p.SeasonID,
		TeamID:   p.ParticipantID,
		Position: p.Position,
		Points:   p.Points,
	}
}

func MapSeason(p SeasonPayload) domain.Season {
	season := domain.Season{
		ID:        p.ID,
		SportID:   p.SportID,
		LeagueID:  p.LeagueID,
		Name:      p.Name,
		Finished:  p.Finished,
		Pending:   p.Pending,
		IsCurrent: p.IsCurrent,
	}
	if p.StartingAt != nil {
		if d, err := time.Parse(dateLayout, *p.StartingAt); err == nil {
			season.StartingAt = &d
		}
	}
	if p.EndingAt != nil {
		if d, err := time.Parse(dateLayout, *p.EndingAt); err == nil {
			season.EndingAt = &d
		}
	}
	return season
}

func parseKickoff(startingAt string, timestamp int64) time.Time {
	if timestamp > 0 {
		return time.Unix(timestamp, 0).UTC()
	}
	if ts, err := time.Parse(timestampLayout, startingAt); err == nil {
		return ts
	}
	return time.Time{}
}
