package system

import (
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// Outcome is the tick's win/loss evaluation. Both flags may hold at once;
// precedence between them is the session's policy, not this system's.
type Outcome struct {
	Victory  bool
	Gameover bool
}

// OutcomeSystem runs last and performs the pure contact checks: the player
// resting exactly on a goal wins, exactly on a hazard loses. It recomputes
// Result unconditionally every tick.
type OutcomeSystem struct {
	Result Outcome
}

func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

func (s *OutcomeSystem) Update(w *ecs.World, dt float64) {
	playerPos := playerPosition(w).Vec()

	var out Outcome
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.Goal, pos *component.Position) {
		if pos.Vec() == playerPos {
			out.Victory = true
		}
	})
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.Hazard, pos *component.Position) {
		if pos.Vec() == playerPos {
			out.Gameover = true
		}
	})
	s.Result = out
}
