package component

// Render layer ordinals, drawn back to front.
const (
	LayerBackground = 0
	LayerObject     = 1
	LayerActor      = 2
)

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
