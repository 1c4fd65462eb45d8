// Package metrics derives movement metrics from per-player tracking and
// event tables. All computation is pure and linear in the series length;
// missing columns and short series degrade to neutral defaults instead of
// erroring so heterogeneous datasets still produce usable metric sets.
package metrics

import (
	"math"
	"sort"

	"github.com/UtahNetScout/GoalieScout/internal/dataset"
	"github.com/UtahNetScout/GoalieScout/internal/schema"
)

// DefaultDirectionThreshold is the minimum turn angle, in degrees, counted
// as a direction change.
const DefaultDirectionThreshold = 45.0

type sample struct {
	t, x, y float64
}

// extractSeries pulls the (time, x, y) series out of a tracking table,
// skipping rows with unparsable coordinates. Input row order is not
// trusted: the series is re-sorted by time ascending whenever a time
// column resolves. Returns false when a coordinate column (or, with
// needTime, the time column) cannot be resolved.
func extractSeries(t *dataset.Table, needTime bool) ([]sample, bool) {
	xCol, okX := schema.Resolve(t.Columns, schema.FieldX)
	yCol, okY := schema.Resolve(t.Columns, schema.FieldY)
	if !okX || !okY {
		return nil, false
	}
	timeCol, okTime := schema.Resolve(t.Columns, schema.FieldTime)
	if needTime && !okTime {
		return nil, false
	}

	xIdx, _ := t.ColumnIndex(xCol)
	yIdx, _ := t.ColumnIndex(yCol)
	timeIdx := -1
	if okTime {
		timeIdx, _ = t.ColumnIndex(timeCol)
	}

	series := make([]sample, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		x, ok := t.Float(i, xIdx)
		if !ok {
			continue
		}
		y, ok := t.Float(i, yIdx)
		if !ok {
			continue
		}
		s := sample{x: x, y: y}
		if timeIdx >= 0 {
			tv, ok := t.Float(i, timeIdx)
			if !ok {
				continue
			}
			s.t = tv
		}
		series = append(series, s)
	}

	if timeIdx >= 0 {
		sort.SliceStable(series, func(i, j int) bool { return series[i].t < series[j].t })
	}
	return series, true
}

func dist(a, b sample) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}

// TotalDistance is the sum of Euclidean distances between consecutive
// time-sorted samples. Fewer than 2 samples, or unresolved coordinate
// columns, yield 0.
func TotalDistance(t *dataset.Table) float64 {
	series, ok := extractSeries(t, false)
	if !ok || len(series) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(series); i++ {
		total += dist(series[i-1], series[i])
	}
	return total
}

// AverageSpeed is total distance over elapsed time between the first and
// last sample. Non-positive duration or fewer than 2 samples yield 0.
func AverageSpeed(t *dataset.Table) float64 {
	series, ok := extractSeries(t, true)
	if !ok || len(series) < 2 {
		return 0
	}
	duration := series[len(series)-1].t - series[0].t
	if duration <= 0 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(series); i++ {
		total += dist(series[i-1], series[i])
	}
	return total / duration
}

// MaxSpeed is the highest per-segment speed across consecutive samples.
// Segments with Δt <= 0 are ignored; no valid segment yields 0.
func MaxSpeed(t *dataset.Table) float64 {
	series, ok := extractSeries(t, true)
	if !ok || len(series) < 2 {
		return 0
	}
	maxSpeed := 0.0
	for i := 1; i < len(series); i++ {
		dt := series[i].t - series[i-1].t
		if dt <= 0 {
			continue
		}
		if v := dist(series[i-1], series[i]) / dt; v > maxSpeed {
			maxSpeed = v
		}
	}
	return maxSpeed
}

// DirectionChanges counts consecutive sample triplets whose segment
// headings differ by at least thresholdDeg. Zero-length segments have no
// heading and are skipped. Fewer than 3 samples yield 0.
func DirectionChanges(t *dataset.Table, thresholdDeg float64) int {
	series, ok := extractSeries(t, false)
	if !ok || len(series) < 3 {
		return 0
	}

	changes := 0
	for i := 2; i < len(series); i++ {
		v1x := series[i-1].x - series[i-2].x
		v1y := series[i-1].y - series[i-2].y
		v2x := series[i].x - series[i-1].x
		v2y := series[i].y - series[i-1].y

		n1 := math.Hypot(v1x, v1y)
		n2 := math.Hypot(v2x, v2y)
		if n1 == 0 || n2 == 0 {
			continue
		}

		cos := (v1x*v2x + v1y*v2y) / (n1 * n2)
		// Guard against floating-point overshoot before acos.
		if cos > 1 {
			cos = 1
		} else if cos < -1 {
			cos = -1
		}
		angle := math.Acos(cos) * 180 / math.Pi
		if angle >= thresholdDeg {
			changes++
		}
	}
	return changes
}

// LateralMovement is the sum of absolute consecutive x-deltas across the
// time-sorted series. Side-to-side workload, mostly relevant for goalies.
func LateralMovement(t *dataset.Table) float64 {
	series, ok := extractSeries(t, false)
	if !ok || len(series) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(series); i++ {
		total += math.Abs(series[i].x - series[i-1].x)
	}
	return total
}

// CreaseMovement is the y-extent (max minus min) of the series, a single
// scalar for positional depth variability.
func CreaseMovement(t *dataset.Table) float64 {
	series, ok := extractSeries(t, false)
	if !ok || len(series) < 2 {
		return 0
	}
	minY, maxY := series[0].y, series[0].y
	for _, s := range series[1:] {
		if s.y < minY {
			minY = s.y
		}
		if s.y > maxY {
			maxY = s.y
		}
	}
	return maxY - minY
}
