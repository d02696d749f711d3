// Package types contains the domain model shared between the stats
// retriever and the chart renderer.
package types

// Outcome is the result category of a field-goal attempt. The provider
// reports free-form event strings; they are decoded into this closed set
// once, at the retriever boundary, so rendering code never compares strings.
type Outcome int

const (
	// OutcomeOther covers every event string the provider may emit that is
	// not a made or missed field goal. Such records are dropped from both
	// rendered series.
	OutcomeOther Outcome = iota
	OutcomeMade
	OutcomeMissed
)

// Provider event strings for the two recognized outcomes.
const (
	eventMade   = "Made Shot"
	eventMissed = "Missed Shot"
)

// ParseOutcome decodes a provider EVENT_TYPE string. The match is exact and
// case-sensitive; anything unrecognized maps to OutcomeOther.
func ParseOutcome(eventType string) Outcome {
	switch eventType {
	case eventMade:
		return OutcomeMade
	case eventMissed:
		return OutcomeMissed
	default:
		return OutcomeOther
	}
}

// String returns a human-readable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMade:
		return "Made"
	case OutcomeMissed:
		return "Missed"
	default:
		return "Other"
	}
}

// ShotEvent is one observed field-goal attempt. X and Y are court
// coordinates in hundredths of a foot, origin at the hoop's base: X runs
// across the court width, Y from the baseline toward center court.
type ShotEvent struct {
	X       float64
	Y       float64
	Outcome Outcome
}

// ShotCollection is an ordered sequence of shot events for one
// player/season pair. Rendering never mutates it.
type ShotCollection []ShotEvent

// LeagueZoneAverage is league-wide shooting frequency and efficiency for
// one court zone, as reported alongside a player's shot chart.
type LeagueZoneAverage struct {
	ZoneBasic string
	ZoneArea  string
	ZoneRange string
	Attempted int
	Made      int
	Pct       float64
}
