package component

// Player marks the player-controlled entity. Locked is set while a push
// slide is in flight and cleared when the player lands, so a chain can't be
// re-resolved mid-slide.
type Player struct {
	Locked bool
}

var PlayerComponent = NewComponent[Player]()
