package system

import (
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// GateSystem opens a gate while any button on one of its channels is
// pressed, and mirrors the state into the gate's Collision: None when open,
// Obstacle when closed. Runs right after ButtonSystem so the flip lands the
// same tick the plate state changes.
type GateSystem struct{}

func NewGateSystem() *GateSystem {
	return &GateSystem{}
}

func (s *GateSystem) Update(w *ecs.World, dt float64) {
	pressed := make(map[int]bool)
	ecs.ForEach(w, component.ButtonComponent.Kind(), func(e ecs.Entity, btn *component.Button) {
		if btn.Pressed {
			pressed[btn.Channel] = true
		}
	})

	ecs.ForEach2(w, component.GateComponent.Kind(), component.CollisionComponent.Kind(), func(e ecs.Entity, gate *component.Gate, col *component.Collision) {
		open := false
		for _, ch := range gate.Channels {
			if pressed[ch] {
				open = true
				break
			}
		}
		gate.Open = open
		if open {
			col.Kind = component.CollisionNone
		} else {
			col.Kind = component.CollisionObstacle
		}
	})
}
