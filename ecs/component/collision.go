package component

// CollisionKind says how an entity participates in movement resolution.
type CollisionKind uint8

const (
	// CollisionNone neither blocks entry nor pushes (open gates).
	CollisionNone CollisionKind = iota
	// CollisionObstacle blocks entry and blocks pushes (walls, closed gates).
	CollisionObstacle
	// CollisionPushable may be displaced by a push chain.
	CollisionPushable
	// CollisionBlocksPush blocks entry and refuses any push chain that
	// would land on it, without being pushable itself. The stalker uses it.
	CollisionBlocksPush
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionObstacle:
		return "obstacle"
	case CollisionPushable:
		return "pushable"
	case CollisionBlocksPush:
		return "blocks-push"
	default:
		return "unknown"
	}
}

// Collision is the movement-resolution variant for an entity.
type Collision struct {
	Kind CollisionKind
}

// BlocksEntry reports whether a mover may not step onto this entity's tile.
func (c Collision) BlocksEntry() bool {
	return c.Kind == CollisionObstacle || c.Kind == CollisionBlocksPush
}

var CollisionComponent = NewComponent[Collision]()
