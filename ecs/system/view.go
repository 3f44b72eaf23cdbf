package system

import (
	"sort"

	"github.com/tmaran/gridshade/ecs"
	"github.com/tmaran/gridshade/ecs/component"
)

// Renderable is everything the drawing collaborator needs for one entity:
// where it is, which tile it shows, and its layer ordinal. The core does no
// drawing itself.
type Renderable struct {
	X     float64
	Y     float64
	Tile  int
	Layer int
}

// BuildView snapshots the world for the renderer, back-to-front
// (background < object < actor, then Y, then entity id for determinism).
// Gates and buttons expose their state as a +1 tile offset; this is the
// renderer's read of the observable Open/Pressed booleans.
func BuildView(w *ecs.World) []Renderable {
	type row struct {
		e ecs.Entity
		r Renderable
	}
	var rows []row

	ecs.ForEach3(w, component.PositionComponent.Kind(), component.SpriteComponent.Kind(), component.RenderLayerComponent.Kind(), func(e ecs.Entity, pos *component.Position, spr *component.Sprite, layer *component.RenderLayer) {
		tile := spr.Tile
		if gate, ok := ecs.Get(w, e, component.GateComponent.Kind()); ok && gate.Open {
			tile++
		}
		if btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind()); ok && btn.Pressed {
			tile++
		}
		rows = append(rows, row{e: e, r: Renderable{X: pos.X, Y: pos.Y, Tile: tile, Layer: layer.Index}})
	})

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].r.Layer != rows[j].r.Layer {
			return rows[i].r.Layer < rows[j].r.Layer
		}
		if rows[i].r.Y != rows[j].r.Y {
			return rows[i].r.Y < rows[j].r.Y
		}
		return rows[i].e < rows[j].e
	})

	out := make([]Renderable, len(rows))
	for i, r := range rows {
		out[i] = r.r
	}
	return out
}
