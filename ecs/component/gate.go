package component

// Gate opens while any button on one of its channels is pressed. Open is an
// observable field; the renderer reads it to pick the gate's tile, and the
// gate system mirrors it into the entity's Collision (None when open,
// Obstacle when closed).
type Gate struct {
	Channels []int
	Open     bool
}

var GateComponent = NewComponent[Gate]()
