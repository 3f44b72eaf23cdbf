package component

// Hazard marks an entity that ends the level on contact with the player.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
