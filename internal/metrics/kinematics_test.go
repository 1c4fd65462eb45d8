package metrics

import (
	"math"
	"strconv"
	"testing"

	"github.com/UtahNetScout/GoalieScout/internal/dataset"
)

// trackTable builds a tracking table with (time, x, y) rows.
func trackTable(samples [][3]float64) *dataset.Table {
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{
			"1",
			strconv.FormatFloat(s[0], 'f', -1, 64),
			strconv.FormatFloat(s[1], 'f', -1, 64),
			strconv.FormatFloat(s[2], 'f', -1, 64),
		})
	}
	return dataset.NewTable([]string{"player_id", "time", "x", "y"}, rows)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalDistance_Triangle(t *testing.T) {
	// (0,0) → (3,4) is the 3-4-5 triangle: distance exactly 5.
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 3, 4}})
	if got := TotalDistance(tr); got != 5.0 {
		t.Errorf("TotalDistance: want 5.0, got %v", got)
	}
}

func TestTotalDistance_InsufficientSamples(t *testing.T) {
	if got := TotalDistance(trackTable(nil)); got != 0 {
		t.Errorf("empty series: want 0, got %v", got)
	}
	if got := TotalDistance(trackTable([][3]float64{{0, 1, 1}})); got != 0 {
		t.Errorf("single sample: want 0, got %v", got)
	}
}

func TestTotalDistance_UnsortedInput(t *testing.T) {
	// Same triangle delivered out of time order; the engine must re-sort.
	tr := trackTable([][3]float64{{1, 3, 4}, {0, 0, 0}})
	if got := TotalDistance(tr); got != 5.0 {
		t.Errorf("unsorted input: want 5.0, got %v", got)
	}
}

func TestAverageSpeed(t *testing.T) {
	// Distance 100 over duration 10 → speed 10.
	tr := trackTable([][3]float64{{0, 0, 0}, {10, 100, 0}})
	if got := AverageSpeed(tr); !almostEqual(got, 10.0) {
		t.Errorf("AverageSpeed: want 10.0, got %v", got)
	}
}

func TestAverageSpeed_ZeroDuration(t *testing.T) {
	tr := trackTable([][3]float64{{5, 0, 0}, {5, 100, 0}})
	if got := AverageSpeed(tr); got != 0 {
		t.Errorf("zero duration: want 0, got %v", got)
	}
}

func TestMaxSpeed(t *testing.T) {
	// Segments: 10 units in 2s (5/s), then 30 units in 1s (30/s).
	tr := trackTable([][3]float64{{0, 0, 0}, {2, 10, 0}, {3, 40, 0}})
	if got := MaxSpeed(tr); !almostEqual(got, 30.0) {
		t.Errorf("MaxSpeed: want 30.0, got %v", got)
	}
}

func TestMaxSpeed_NoValidSegment(t *testing.T) {
	// All segments have Δt == 0 — no valid segment, speed 0.
	tr := trackTable([][3]float64{{1, 0, 0}, {1, 10, 0}, {1, 20, 0}})
	if got := MaxSpeed(tr); got != 0 {
		t.Errorf("no valid segment: want 0, got %v", got)
	}
}

func TestDirectionChanges_Collinear(t *testing.T) {
	// Three collinear evenly spaced samples: no turn at any threshold.
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}})
	for _, threshold := range []float64{1, 45, 90, 180} {
		if got := DirectionChanges(tr, threshold); got != 0 {
			t.Errorf("collinear at threshold %v: want 0, got %d", threshold, got)
		}
	}
}

func TestDirectionChanges_RightAngle(t *testing.T) {
	// East then north is an exact 90° turn; counts at the default 45°.
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 1, 0}, {2, 1, 1}})
	if got := DirectionChanges(tr, DefaultDirectionThreshold); got != 1 {
		t.Errorf("90° turn: want 1, got %d", got)
	}
}

func TestDirectionChanges_ThresholdInclusive(t *testing.T) {
	// The 90° turn counts at exactly 90° (boundary inclusive) but not above.
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 1, 0}, {2, 1, 1}})
	if got := DirectionChanges(tr, 90.0); got != 1 {
		t.Errorf("threshold 90: want 1, got %d", got)
	}
	if got := DirectionChanges(tr, 90.1); got != 0 {
		t.Errorf("threshold 90.1: want 0, got %d", got)
	}
}

func TestDirectionChanges_DegenerateSegmentSkipped(t *testing.T) {
	// Repeated position: the zero-length segment has no heading and the
	// triplet is skipped rather than counted or failed.
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 1, 1}})
	if got := DirectionChanges(tr, 45.0); got != 0 {
		t.Errorf("degenerate segment: want 0, got %d", got)
	}
}

func TestDirectionChanges_InsufficientSamples(t *testing.T) {
	tr := trackTable([][3]float64{{0, 0, 0}, {1, 1, 0}})
	if got := DirectionChanges(tr, 45.0); got != 0 {
		t.Errorf("two samples: want 0, got %d", got)
	}
}

func TestMissingCoordinateColumns(t *testing.T) {
	// No resolvable x/y: every kinematic metric degrades to its default.
	tr := dataset.NewTable(
		[]string{"player_id", "time", "lat", "lon"},
		[][]string{{"1", "0", "10", "20"}, {"1", "1", "11", "21"}, {"1", "2", "12", "22"}},
	)
	if got := TotalDistance(tr); got != 0 {
		t.Errorf("TotalDistance: want 0, got %v", got)
	}
	if got := AverageSpeed(tr); got != 0 {
		t.Errorf("AverageSpeed: want 0, got %v", got)
	}
	if got := MaxSpeed(tr); got != 0 {
		t.Errorf("MaxSpeed: want 0, got %v", got)
	}
	if got := DirectionChanges(tr, 45.0); got != 0 {
		t.Errorf("DirectionChanges: want 0, got %d", got)
	}
}

func TestUnparsableRowsSkipped(t *testing.T) {
	tr := dataset.NewTable(
		[]string{"player_id", "time", "x", "y"},
		[][]string{
			{"1", "0", "0", "0"},
			{"1", "0.5", "bogus", "1"},
			{"1", "1", "3", "4"},
		},
	)
	if got := TotalDistance(tr); got != 5.0 {
		t.Errorf("bad row should be skipped: want 5.0, got %v", got)
	}
}

func TestLateralMovement(t *testing.T) {
	// |2-0| + |−1−2| = 5, y ignored.
	tr := trackTable([][3]float64{{0, 0, 10}, {1, 2, 20}, {2, -1, 30}})
	if got := LateralMovement(tr); !almostEqual(got, 5.0) {
		t.Errorf("LateralMovement: want 5.0, got %v", got)
	}
}

func TestCreaseMovement(t *testing.T) {
	tr := trackTable([][3]float64{{0, 0, 2}, {1, 0, 7}, {2, 0, 4}})
	if got := CreaseMovement(tr); !almostEqual(got, 5.0) {
		t.Errorf("CreaseMovement: want 5.0 (y-extent), got %v", got)
	}
	if got := CreaseMovement(trackTable([][3]float64{{0, 0, 3}})); got != 0 {
		t.Errorf("single sample: want 0, got %v", got)
	}
}
