package component

// Button is a pressure plate. Pressed is derived every tick from idle
// occupancy of its tile by the player or a pushable block. Channel is the
// level-defined link key that gates resolve against.
type Button struct {
	Channel int
	Pressed bool
}

var ButtonComponent = NewComponent[Button]()
