package component

import "github.com/tmaran/gridshade/common"

// DistanceMetric selects how the tracker measures distance to the player.
type DistanceMetric uint8

const (
	MetricEuclidean DistanceMetric = iota
	MetricManhattan
)

// Dist measures the distance from a to b under the metric.
func (m DistanceMetric) Dist(a, b common.Vec2) float64 {
	if m == MetricManhattan {
		return common.ManhattanDist(a, b)
	}
	return common.Dist(a, b)
}

// Tracker drives the hazard: it walks Waypoints in order (cyclic) and
// switches to chasing the player whenever the player is within Threshold
// tiles. The decision is remade every tick the entity is idle; losing
// proximity resumes the patrol from the current index, never from zero.
type Tracker struct {
	Waypoints []common.Vec2
	Index     int
	Threshold float64
	Metric    DistanceMetric
}

var TrackerComponent = NewComponent[Tracker]()
