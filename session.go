package main

import (
	"fmt"

	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
	"github.com/tmaran/gridshade/ecs/system"
	"github.com/tmaran/gridshade/levels"
)

// Movement speeds in tiles per second. Blocks slide at the player's speed
// so a push chain lands as one unit.
const (
	playerSpeed = 4.0
	hazardSpeed = 3.0

	// chaseRange is the stalker's proximity threshold in tiles.
	chaseRange = 3.0
)

// Visual-tile indices reported to the renderer. Stateful tiles (button,
// gate) use index+1 for their active look.
const (
	tilePlayer     = 0
	tileHazard     = 1
	tileBlock      = 2
	tileDoor       = 3
	tileWall       = 4 // +style
	tileButton     = 8 // 9 when pressed
	tileGateClosed = 10
	tileGateOpen   = 11
)

// Exit is the level-exit signal the shell consumes after each tick.
type Exit uint8

const (
	ExitContinue Exit = iota
	ExitVictory
	ExitGameover
)

// Session owns the world for one level. The world is spawned once from the
// immutable level data and discarded whole when the session ends.
type Session struct {
	level   levels.Level
	world   *ecs.World
	control *system.ControlSystem
	outcome *system.OutcomeSystem
	sched   *ecs.Scheduler
}

// NewSession spawns a fresh world from the level.
func NewSession(lvl levels.Level) *Session {
	w := ecs.NewWorld()

	player := w.CreateEntity()
	mustAdd(w, player, component.PositionComponent.Kind(), &component.Position{X: lvl.PlayerStart.X, Y: lvl.PlayerStart.Y})
	mustAdd(w, player, component.MotionComponent.Kind(), &component.Motion{Speed: playerSpeed})
	mustAdd(w, player, component.PlayerComponent.Kind(), &component.Player{})
	mustAdd(w, player, component.SpriteComponent.Kind(), &component.Sprite{Tile: tilePlayer})
	mustAdd(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerActor})

	hazard := w.CreateEntity()
	mustAdd(w, hazard, component.PositionComponent.Kind(), &component.Position{X: lvl.HazardStart.X, Y: lvl.HazardStart.Y})
	mustAdd(w, hazard, component.MotionComponent.Kind(), &component.Motion{Speed: hazardSpeed})
	mustAdd(w, hazard, component.HazardComponent.Kind(), &component.Hazard{})
	mustAdd(w, hazard, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionBlocksPush})
	mustAdd(w, hazard, component.TrackerComponent.Kind(), &component.Tracker{
		Waypoints: lvl.Patrol,
		Threshold: chaseRange,
		Metric:    component.MetricEuclidean,
	})
	mustAdd(w, hazard, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileHazard})
	mustAdd(w, hazard, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerActor})

	for _, pos := range lvl.Goals {
		e := w.CreateEntity()
		mustAdd(w, e, component.PositionComponent.Kind(), &component.Position{X: pos.X, Y: pos.Y})
		mustAdd(w, e, component.GoalComponent.Kind(), &component.Goal{})
		mustAdd(w, e, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileDoor})
		mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerObject})
	}

	for _, wall := range lvl.Walls {
		e := w.CreateEntity()
		mustAdd(w, e, component.PositionComponent.Kind(), &component.Position{X: wall.Pos.X, Y: wall.Pos.Y})
		mustAdd(w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionObstacle})
		mustAdd(w, e, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileWall + wall.Style})
		mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBackground})
	}

	for _, pos := range lvl.Blocks {
		e := w.CreateEntity()
		mustAdd(w, e, component.PositionComponent.Kind(), &component.Position{X: pos.X, Y: pos.Y})
		mustAdd(w, e, component.MotionComponent.Kind(), &component.Motion{Speed: playerSpeed})
		mustAdd(w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionPushable})
		mustAdd(w, e, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileBlock})
		mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerObject})
	}

	for _, btn := range lvl.Buttons {
		e := w.CreateEntity()
		mustAdd(w, e, component.PositionComponent.Kind(), &component.Position{X: btn.Pos.X, Y: btn.Pos.Y})
		mustAdd(w, e, component.ButtonComponent.Kind(), &component.Button{Channel: btn.Channel})
		mustAdd(w, e, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileButton})
		mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBackground})
	}

	for _, gate := range lvl.Gates {
		e := w.CreateEntity()
		mustAdd(w, e, component.PositionComponent.Kind(), &component.Position{X: gate.Pos.X, Y: gate.Pos.Y})
		mustAdd(w, e, component.GateComponent.Kind(), &component.Gate{Channels: gate.Channels})
		mustAdd(w, e, component.CollisionComponent.Kind(), &component.Collision{Kind: component.CollisionObstacle})
		mustAdd(w, e, component.SpriteComponent.Kind(), &component.Sprite{Tile: tileGateClosed})
		mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerObject})
	}

	control := system.NewControlSystem()
	outcome := system.NewOutcomeSystem()
	sched := ecs.NewScheduler(
		system.NewTrackerSystem(),
		control,
		system.NewMovementSystem(),
		system.NewButtonSystem(),
		system.NewGateSystem(),
		outcome,
	)

	return &Session{
		level:   lvl,
		world:   w,
		control: control,
		outcome: outcome,
		sched:   sched,
	}
}

// Step advances the simulation by one tick: elapsed seconds plus the tick's
// sampled input direction in, level-exit signal out. When the player lands
// on a tile that is both a goal and hazard-occupied, victory wins.
func (s *Session) Step(dt float64, dir common.Vec2) Exit {
	s.control.Dir = dir
	s.sched.Update(s.world, dt)

	res := s.outcome.Result
	switch {
	case res.Victory:
		return ExitVictory
	case res.Gameover:
		return ExitGameover
	default:
		return ExitContinue
	}
}

// View snapshots the world for the renderer, back to front.
func (s *Session) View() []system.Renderable {
	return system.BuildView(s.world)
}

// Midpoint is the camera anchor for this level.
func (s *Session) Midpoint() common.Vec2 {
	return s.level.Midpoint
}

// Name returns the level's declared name.
func (s *Session) Name() string {
	return s.level.Name
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	if err := ecs.Add(w, e, kind, v); err != nil {
		panic(fmt.Sprintf("session: spawn: %v", err))
	}
}
