package metrics

import (
	"testing"

	"github.com/UtahNetScout/GoalieScout/internal/dataset"
	"github.com/UtahNetScout/GoalieScout/internal/model"
)

func eventTable(eventTypes []string) *dataset.Table {
	rows := make([][]string, 0, len(eventTypes))
	for _, ev := range eventTypes {
		rows = append(rows, []string{"1", ev, "10.5"})
	}
	return dataset.NewTable([]string{"player_id", "event", "time"}, rows)
}

func TestComputeAll_BaseKeysAlwaysPresent(t *testing.T) {
	engine := NewEngine()
	tracking := trackTable([][3]float64{{0, 0, 0}, {1, 3, 4}})
	events := eventTable([]string{"shot", "pass"})

	baseKeys := []string{
		model.MetricTotalDistance, model.MetricAverageSpeed, model.MetricMaxSpeed,
		model.MetricDirectionChanges, model.MetricOnPuckDistance,
		model.MetricSpaceCreation, model.MetricEventsCount,
	}

	for _, role := range []model.Role{model.RoleGoalie, model.RoleDefender, model.RoleForward, model.RoleUnknown} {
		m := engine.ComputeAll(tracking, events, role)
		for _, k := range baseKeys {
			if _, ok := m[k]; !ok {
				t.Errorf("role %v: missing base key %s", role, k)
			}
		}
	}
}

func TestComputeAll_GoalieExtras(t *testing.T) {
	engine := NewEngine()
	tracking := trackTable([][3]float64{{0, 0, 2}, {1, 2, 7}, {2, 5, 4}})
	m := engine.ComputeAll(tracking, eventTable([]string{"save"}), model.RoleGoalie)

	if got := m[model.MetricCreaseMovement]; got != 5.0 {
		t.Errorf("crease_movement: want 5.0, got %v", got)
	}
	if got := m[model.MetricLateralMovement]; got != 5.0 {
		t.Errorf("lateral_movement: want 5.0, got %v", got)
	}
	if _, ok := m[model.MetricGapControl]; ok {
		t.Error("goalie must not carry gap_control")
	}
}

func TestComputeAll_DefenderAndForwardPlaceholders(t *testing.T) {
	engine := NewEngine()
	tracking := trackTable([][3]float64{{0, 0, 0}, {1, 1, 1}})

	d := engine.ComputeAll(tracking, eventTable([]string{"block"}), model.RoleDefender)
	if got := d[model.MetricGapControl]; got != placeholderGapControl {
		t.Errorf("gap_control placeholder: want %v, got %v", placeholderGapControl, got)
	}

	f := engine.ComputeAll(tracking, eventTable([]string{"shot"}), model.RoleForward)
	if got := f[model.MetricHighDanger]; got != placeholderHighDanger {
		t.Errorf("high_danger_positioning placeholder: want %v, got %v", placeholderHighDanger, got)
	}
	if _, ok := f[model.MetricCreaseMovement]; ok {
		t.Error("forward must not carry crease_movement")
	}
}

func TestComputeAll_UnknownRoleNoExtras(t *testing.T) {
	engine := NewEngine()
	tracking := trackTable([][3]float64{{0, 0, 0}, {1, 1, 1}})
	m := engine.ComputeAll(tracking, eventTable([]string{"shot", "pass", "carry"}), model.RoleUnknown)

	for _, k := range []string{
		model.MetricCreaseMovement, model.MetricLateralMovement,
		model.MetricGapControl, model.MetricHighDanger,
	} {
		if _, ok := m[k]; ok {
			t.Errorf("unknown role must not carry %s", k)
		}
	}
	if got := m[model.MetricEventsCount]; got != 3 {
		t.Errorf("events_count: want 3, got %v", got)
	}
}

func TestOnPuckDistance(t *testing.T) {
	engine := NewEngine()
	// "carry" and "puck_carry" qualify; "shot" and "save" do not.
	events := eventTable([]string{"carry", "shot", "Puck_Carry", "save"})
	tracking := trackTable(nil)

	m := engine.ComputeAll(tracking, events, model.RoleUnknown)
	if got := m[model.MetricOnPuckDistance]; got != 20.0 {
		t.Errorf("on_puck_distance: want 20.0 (2 events x 10), got %v", got)
	}
}

func TestOnPuckDistance_NoEventColumn(t *testing.T) {
	engine := NewEngine()
	events := dataset.NewTable([]string{"player_id", "what"}, [][]string{{"1", "carry"}})
	m := engine.ComputeAll(trackTable(nil), events, model.RoleUnknown)
	if got := m[model.MetricOnPuckDistance]; got != 0 {
		t.Errorf("unresolvable event column: want 0, got %v", got)
	}
}
