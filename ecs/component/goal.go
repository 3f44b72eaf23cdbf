package component

// Goal marks a tile that wins the level on contact with the player.
type Goal struct{}

var GoalComponent = NewComponent[Goal]()
