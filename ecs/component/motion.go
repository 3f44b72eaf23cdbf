package component

import "github.com/tmaran/gridshade/common"

// Destination is an in-flight slide toward a target tile. Dir is the unit
// direction from the slide's origin to Target and stays fixed for the whole
// slide, so the position only ever moves monotonically toward the target.
type Destination struct {
	Target common.Vec2
	Dir    common.Vec2
}

// Motion gives an entity destination-interpolated movement. Dest is nil
// while the entity is idle. Speed is in tiles per second and must be > 0.
type Motion struct {
	Speed float64
	Dest  *Destination
}

func (m *Motion) Idle() bool {
	return m.Dest == nil
}

// Start begins a slide from `from` toward `target`. It is the caller's
// transition (input or AI); the movement system only ever finishes slides.
func (m *Motion) Start(from, target common.Vec2) {
	m.Dest = &Destination{
		Target: target,
		Dir:    target.Sub(from).Normalized(),
	}
}

var MotionComponent = NewComponent[Motion]()
