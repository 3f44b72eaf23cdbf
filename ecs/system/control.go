package system

import (
	"github.com/tmaran/gridshade/common"
	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// maxPushChain bounds the push walk so a malformed world can't loop; no
// rectangular level can align more pushables than it has tiles.
const maxPushChain = 1024

// ControlSystem turns the tick's sampled input direction into a player move
// or a push chain. Dir is set by the session before each tick; only the
// last sampled direction is ever seen here.
type ControlSystem struct {
	Dir common.Vec2
}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (s *ControlSystem) Update(w *ecs.World, dt float64) {
	if s.Dir.IsZero() {
		return
	}
	dir := s.Dir

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PositionComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, player *component.Player, pos *component.Position, mot *component.Motion) {
		if !mot.Idle() || player.Locked {
			return
		}
		from := pos.Vec()
		target := from.Add(dir)

		chain, ok := resolvePush(w, target, dir)
		if !ok {
			// Blocked: the whole move is refused, the player stays idle.
			return
		}

		// Launch the chain and the player together so every entity lands
		// on the same tick. Collected first, mutated after, so no store is
		// touched while a query walks it.
		for _, link := range chain {
			linkPos, okPos := ecs.Get(w, link, component.PositionComponent.Kind())
			linkMot, okMot := ecs.Get(w, link, component.MotionComponent.Kind())
			if !okPos || !okMot {
				continue
			}
			lf := linkPos.Vec()
			linkMot.Start(lf, lf.Add(dir))
		}
		mot.Start(from, target)
		if len(chain) > 0 {
			player.Locked = true
		}
	})
}

// resolvePush walks the line of tiles from target along dir, collecting the
// pushable entities that would have to move. It reports ok=false when the
// line ends at anything that blocks entry, which refuses the entire move.
func resolvePush(w *ecs.World, target, dir common.Vec2) ([]ecs.Entity, bool) {
	var chain []ecs.Entity
	tile := target
	for range maxPushChain {
		blocker, kind := blockerAt(w, tile)
		switch kind {
		case component.CollisionObstacle, component.CollisionBlocksPush:
			return nil, false
		case component.CollisionPushable:
			chain = append(chain, blocker)
			tile = tile.Add(dir)
		default:
			// Empty (or only a non-blocking entity, e.g. an open gate):
			// the chain has a landing tile.
			return chain, true
		}
	}
	return nil, false
}

// blockerAt returns the strongest collider resting exactly on the tile.
// Entry blockers win over pushables; several entities may share a tile
// (a block sliding over a button, an open gate under the player).
func blockerAt(w *ecs.World, tile common.Vec2) (ecs.Entity, component.CollisionKind) {
	var (
		found ecs.Entity
		kind  = component.CollisionNone
	)
	ecs.ForEach2(w, component.PositionComponent.Kind(), component.CollisionComponent.Kind(), func(e ecs.Entity, pos *component.Position, col *component.Collision) {
		if pos.Vec() != tile {
			return
		}
		switch {
		case col.BlocksEntry():
			found, kind = e, col.Kind
		case col.Kind == component.CollisionPushable:
			if kind == component.CollisionNone {
				found, kind = e, col.Kind
			}
		}
	})
	return found, kind
}
