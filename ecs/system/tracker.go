package system

import (
	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// TrackerSystem drives hazards: walk the patrol loop, and chase the player
// whenever they come within the tracker's threshold. Runs before input so
// the hazard commits to a target based on where the player ended last tick.
type TrackerSystem struct{}

func NewTrackerSystem() *TrackerSystem {
	return &TrackerSystem{}
}

func (s *TrackerSystem) Update(w *ecs.World, dt float64) {
	playerTile := playerPosition(w).Tile()

	ecs.ForEach3(w, component.TrackerComponent.Kind(), component.PositionComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, tr *component.Tracker, pos *component.Position, mot *component.Motion) {
		if !mot.Idle() {
			return
		}
		here := pos.Vec()

		var target common.Vec2
		if tr.Metric.Dist(here, playerTile) <= tr.Threshold {
			target = playerTile
		} else {
			if len(tr.Waypoints) == 0 {
				return
			}
			// Arrived at the current waypoint: advance, wrapping. The index
			// survives chase interludes, so patrol resumes where it left off.
			if here == tr.Waypoints[tr.Index] {
				tr.Index = (tr.Index + 1) % len(tr.Waypoints)
			}
			target = tr.Waypoints[tr.Index]
		}

		if target == here {
			return
		}
		mot.Start(here, target)
	})
}

// playerPosition returns the player's position. A world with no player is a
// broken invariant, not a condition to limp through.
func playerPosition(w *ecs.World) component.Position {
	var (
		found bool
		p     component.Position
	)
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.Player, pos *component.Position) {
		p = *pos
		found = true
	})
	if !found {
		panic("system: world has no player entity")
	}
	return p
}
