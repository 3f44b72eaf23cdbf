package component

import "github.com/tmaran/gridshade/common"

// Position is an entity's tile coordinate. It is float-valued while the
// entity slides between tiles and integer-valued at rest.
type Position struct {
	X float64
	Y float64
}

func (p Position) Vec() common.Vec2 {
	return common.Vec2{X: p.X, Y: p.Y}
}

func (p *Position) Set(v common.Vec2) {
	p.X = v.X
	p.Y = v.Y
}

// Tile returns the nearest integer tile to the current position.
func (p Position) Tile() common.Vec2 {
	return p.Vec().Round()
}

var PositionComponent = NewComponent[Position]()
