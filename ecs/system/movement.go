package system

import (
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// MovementSystem finishes destination slides. It never starts one: the
// Idle→Moving transition belongs to the control and tracker systems.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update advances every moving entity by speed*dt along its stored
// direction, snapping exactly onto the target when the remaining distance
// fits inside this tick. Entities update independently; nothing here reads
// another entity's position.
func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, pos *component.Position, mot *component.Motion) {
		if mot.Dest == nil {
			return
		}
		remaining := mot.Dest.Target.Sub(pos.Vec())
		step := mot.Speed * dt
		if remaining.Len() <= step {
			pos.Set(mot.Dest.Target)
			mot.Dest = nil
			if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
				p.Locked = false
			}
			return
		}
		pos.Set(pos.Vec().Add(mot.Dest.Dir.Scale(step)))
	})
}
