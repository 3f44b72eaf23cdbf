package component

// Sprite is the visual-tile index handed to the renderer. The core never
// draws; it only reports which tile an entity shows.
type Sprite struct {
	Tile int
}

var SpriteComponent = NewComponent[Sprite]()
