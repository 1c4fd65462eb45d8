package model

import "strings"

// Role is a player's functional category, used to select the extra
// metrics the specializer computes.
type Role int

const (
	RoleUnknown Role = iota
	RoleGoalie
	RoleDefender
	RoleForward
)

func (r Role) String() string {
	switch r {
	case RoleGoalie:
		return "G"
	case RoleDefender:
		return "D"
	case RoleForward:
		return "F"
	default:
		return "?"
	}
}

// ParseRole normalizes the position strings seen across BDC-style datasets
// ("G", "Goalie", "defenseman", ...) onto the four roles. Anything
// unrecognized maps to RoleUnknown, never an error.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "G", "GOALIE", "GOALKEEPER":
		return RoleGoalie
	case "D", "DEFENSE", "DEFENSEMAN", "DEFENDER":
		return RoleDefender
	case "F", "FORWARD":
		return RoleForward
	default:
		return RoleUnknown
	}
}

// Tier is the ordinal rating band assigned from a 0-100 score.
type Tier string

const (
	TierS Tier = "S" // elite
	TierA Tier = "A" // excellent
	TierB Tier = "B" // good
	TierC Tier = "C" // average
	TierD Tier = "D" // below average
	TierF Tier = "F" // poor
)

// TierForScore maps a score to its tier. Boundaries are inclusive at the
// bottom of each band; callers clamp the score to [0,100] first.
func TierForScore(score int) Tier {
	switch {
	case score >= 90:
		return TierS
	case score >= 80:
		return TierA
	case score >= 70:
		return TierB
	case score >= 60:
		return TierC
	case score >= 50:
		return TierD
	default:
		return TierF
	}
}

// TrackingSample is one positional observation for one player.
type TrackingSample struct {
	PlayerID string
	Time     float64
	X        float64
	Y        float64
}

// EventRecord is one discrete game event attributed to a player.
type EventRecord struct {
	PlayerID  string
	Time      float64
	EventType string
}

// PlayerProfile identifies a player within a dataset.
type PlayerProfile struct {
	PlayerID string
	Name     string
	Role     Role
	Team     string
}

// MetricSet maps metric names to values. It always carries the base
// kinematic keys; the specializer merges in role-specific keys.
type MetricSet map[string]float64

// Base kinematic and event metric keys.
const (
	MetricTotalDistance    = "total_distance"
	MetricAverageSpeed     = "average_speed"
	MetricMaxSpeed         = "max_speed"
	MetricDirectionChanges = "direction_changes"
	MetricOnPuckDistance   = "on_puck_distance"
	MetricSpaceCreation    = "space_creation"
	MetricEventsCount      = "events_count"
)

// Role-specific metric keys.
const (
	MetricCreaseMovement  = "crease_movement"
	MetricLateralMovement = "lateral_movement"
	MetricGapControl      = "gap_control"
	MetricHighDanger      = "high_danger_positioning"
)

// ScoreReport is the complete scouting result for one player. Score and
// notes come from the injected scoring provider; tier and rank are
// computed here and are always consistent with the score and the batch.
type ScoreReport struct {
	PlayerID      string    `json:"-"`
	PlayerName    string    `json:"player_name"`
	Position      string    `json:"position"`
	Metrics       MetricSet `json:"metrics"`
	ScoutingNotes string    `json:"scouting_notes"`
	Score         int       `json:"score"`
	Tier          Tier      `json:"tier"`
	Rank          int       `json:"rank"`
}

// TopPlayer is the condensed entry used in summary statistics.
type TopPlayer struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Score    int    `json:"score"`
	Tier     Tier   `json:"tier"`
}

// SummaryStats is recomputed from a ranked batch; it is never mutated
// independently of the reports it was derived from.
type SummaryStats struct {
	TotalPlayers     int          `json:"total_players"`
	TierDistribution map[Tier]int `json:"tier_distribution"`
	AverageScore     float64      `json:"average_score"`
	TopPlayers       []TopPlayer  `json:"top_players"`
}

// RunSummary is a lightweight record of one stored analysis run.
type RunSummary struct {
	DatasetHash  string
	CreatedAt    string
	Provider     string
	TotalPlayers int
	AverageScore float64
}
