package system

import (
	"testing"

	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

func v(x, y float64) common.Vec2 {
	return common.Vec2{X: x, Y: y}
}

func addComp[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], val *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, val); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func spawnPlayer(t *testing.T, w *ecs.World, at common.Vec2, speed float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.MotionComponent.Kind(), &component.Motion{Speed: speed})
	addComp(t, w, e, component.PlayerComponent.Kind(), &component.Player{})
	return e
}

func spawnWall(t *testing.T, w *ecs.World, at common.Vec2) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionObstacle})
	return e
}

func spawnBlock(t *testing.T, w *ecs.World, at common.Vec2, speed float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.MotionComponent.Kind(), &component.Motion{Speed: speed})
	addComp(t, w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionPushable})
	return e
}

func spawnHazard(t *testing.T, w *ecs.World, at common.Vec2, speed float64, tr component.Tracker) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.MotionComponent.Kind(), &component.Motion{Speed: speed})
	addComp(t, w, e, component.HazardComponent.Kind(), &component.Hazard{})
	addComp(t, w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionBlocksPush})
	addComp(t, w, e, component.TrackerComponent.Kind(), &tr)
	return e
}

func spawnGoal(t *testing.T, w *ecs.World, at common.Vec2) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.GoalComponent.Kind(), &component.Goal{})
	return e
}

func spawnButton(t *testing.T, w *ecs.World, at common.Vec2, channel int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.ButtonComponent.Kind(), &component.Button{Channel: channel})
	return e
}

func spawnGate(t *testing.T, w *ecs.World, at common.Vec2, channels ...int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComp(t, w, e, component.PositionComponent.Kind(), &component.Position{X: at.X, Y: at.Y})
	addComp(t, w, e, component.GateComponent.Kind(), &component.Gate{Channels: channels})
	addComp(t, w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionObstacle})
	return e
}

func motionOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Motion {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no motion", e)
	}
	return m
}

func positionOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Position {
	t.Helper()
	p, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no position", e)
	}
	return p
}
