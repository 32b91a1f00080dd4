// Package score resolves a two-sided match score from the tagged score
// entries the upstream provider attaches to a fixture.
package score

// Tier identifies which phase of the match a score entry describes.
type Tier string

const (
	TierCurrent    Tier = "CURRENT"
	TierSecondHalf Tier = "2ND_HALF"
	TierFirstHalf  Tier = "1ST_HALF"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Observation is one tagged score entry from the provider payload. Goals is
// nil when the provider sent no value for that entry.
type Observation struct {
	Tier  Tier
	Side  Side
	Goals *int
}

// Snapshot is the resolved score pair. A nil side means no tier produced a
// value for it.
type Snapshot struct {
	Home *int
	Away *int
}

// tierOrder is the fixed fallback priority: the live CURRENT score wins,
// then the full-time 2ND_HALF score, then the 1ST_HALF score.
var tierOrder = []Tier{TierCurrent, TierSecondHalf, TierFirstHalf}

// Resolve walks the tiers in priority order and fills each side from the
// observations of the first tier that has a value for it. Within a tier,
// later observations for the same side overwrite earlier ones.
//
// A lower tier is consulted whenever either side is still unset, and its
// observations assign unconditionally, so a lower tier can overwrite a side
// the higher tier already resolved. Tests pin this; tightening it to
// per-side precedence would be a deliberate behavior change.
func Resolve(observations []Observation) Snapshot {
	var snap Snapshot

	for _, tier := range tierOrder {
		for _, obs := range observations {
			if obs.Tier != tier || obs.Goals == nil {
				continue
			}
			goals := *obs.Goals
			switch obs.Side {
			case SideHome:
				snap.Home = &goals
			case SideAway:
				snap.Away = &goals
			}
		}
		if snap.Home != nil && snap.Away != nil {
			break
		}
	}

	return snap
}
