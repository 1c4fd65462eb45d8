package metrics

import "github.com/UtahNetScout/GoalieScout/internal/dataset"

// ProximityModel estimates opponent-relative positioning quantities.
// Single-player tracking carries no opponent positions, so the shipped
// implementation returns fixed placeholder values; a real model needs
// multi-player spatial data (e.g. nearest-opponent or Voronoi analysis).
type ProximityModel interface {
	// SpaceCreation is the average separation a player generates from the
	// nearest opponent, in rink units.
	SpaceCreation(tracking *dataset.Table) float64
	// GapControl is a defender's closing-distance score against attacking
	// forwards.
	GapControl(tracking *dataset.Table) float64
}

// ZoneModel classifies positions against rink zone geometry. The shipped
// implementation has no zone geometry and returns a fixed placeholder.
type ZoneModel interface {
	// HighDangerShare is the fraction of samples spent inside the
	// high-danger scoring area.
	HighDangerShare(tracking *dataset.Table) float64
}

// Placeholder outputs, pending real opponent tracking and zone geometry.
const (
	placeholderSpaceCreation = 15.0
	placeholderGapControl    = 8.0
	placeholderHighDanger    = 0.3
)

type fixedProximity struct{}

func (fixedProximity) SpaceCreation(*dataset.Table) float64 { return placeholderSpaceCreation }
func (fixedProximity) GapControl(*dataset.Table) float64    { return placeholderGapControl }

type fixedZones struct{}

func (fixedZones) HighDangerShare(*dataset.Table) float64 { return placeholderHighDanger }
