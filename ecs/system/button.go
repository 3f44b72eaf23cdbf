package system

import (
	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// ButtonSystem derives each pressure plate's state from occupancy: a button
// is pressed iff the player or a pushable block rests exactly on its tile.
// An actor mid-slide over the plate does not actuate it.
type ButtonSystem struct{}

func NewButtonSystem() *ButtonSystem {
	return &ButtonSystem{}
}

func (s *ButtonSystem) Update(w *ecs.World, dt float64) {
	occupied := make(map[common.Vec2]struct{})
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, pos *component.Position, mot *component.Motion) {
		if !mot.Idle() {
			return
		}
		if !canPress(w, e) {
			return
		}
		occupied[pos.Vec()] = struct{}{}
	})

	ecs.ForEach2(w, component.ButtonComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, btn *component.Button, pos *component.Position) {
		_, btn.Pressed = occupied[pos.Vec()]
	})
}

// canPress reports whether lying on a plate actuates it: the player and
// pushable blocks do, hazards and scenery don't.
func canPress(w *ecs.World, e ecs.Entity) bool {
	if ecs.Has(w, e, component.PlayerComponent.Kind()) {
		return true
	}
	col, ok := ecs.Get(w, e, component.CollisionComponent.Kind())
	return ok && col.Kind == component.CollisionPushable
}
