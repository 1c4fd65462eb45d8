package metrics

import (
	"strings"

	"github.com/UtahNetScout/GoalieScout/internal/dataset"
	"github.com/UtahNetScout/GoalieScout/internal/model"
	"github.com/UtahNetScout/GoalieScout/internal/schema"
)

// puckEventMarkers identify puck-possession event types by substring
// match on the lowercased event name.
var puckEventMarkers = []string{"carry", "possession", "puck_carry", "controlled"}

// Engine computes the full metric set for one player. The zero-argument
// constructor wires the placeholder proximity/zone models; both are
// swappable once real multi-player data exists.
type Engine struct {
	Proximity ProximityModel
	Zones     ZoneModel
}

func NewEngine() *Engine {
	return &Engine{Proximity: fixedProximity{}, Zones: fixedZones{}}
}

// ComputeAll derives the base kinematic metrics plus the role-specific
// extras for one player. Role dispatch is total: unknown roles get the
// base set only, never an error.
func (e *Engine) ComputeAll(tracking, events *dataset.Table, role model.Role) model.MetricSet {
	m := model.MetricSet{
		model.MetricTotalDistance:    TotalDistance(tracking),
		model.MetricAverageSpeed:     AverageSpeed(tracking),
		model.MetricMaxSpeed:         MaxSpeed(tracking),
		model.MetricDirectionChanges: float64(DirectionChanges(tracking, DefaultDirectionThreshold)),
		model.MetricOnPuckDistance:   e.onPuckDistance(events),
		model.MetricSpaceCreation:    e.Proximity.SpaceCreation(tracking),
		model.MetricEventsCount:      float64(events.Len()),
	}

	switch role {
	case model.RoleGoalie:
		m[model.MetricCreaseMovement] = CreaseMovement(tracking)
		m[model.MetricLateralMovement] = LateralMovement(tracking)
	case model.RoleDefender:
		m[model.MetricGapControl] = e.Proximity.GapControl(tracking)
	case model.RoleForward:
		m[model.MetricHighDanger] = e.Zones.HighDangerShare(tracking)
	}
	return m
}

// onPuckDistance approximates carrying distance from the count of
// puck-possession events. Placeholder scale of 10 units per event until
// possession windows can be correlated with tracking segments.
func (e *Engine) onPuckDistance(events *dataset.Table) float64 {
	if events.Len() == 0 {
		return 0
	}
	typeCol, ok := schema.Resolve(events.Columns, schema.FieldEventType)
	if !ok {
		return 0
	}
	typeIdx, _ := events.ColumnIndex(typeCol)

	count := 0
	for i := 0; i < events.Len(); i++ {
		ev := strings.ToLower(events.Value(i, typeIdx))
		for _, marker := range puckEventMarkers {
			if strings.Contains(ev, marker) {
				count++
				break
			}
		}
	}
	return float64(count) * 10.0
}
