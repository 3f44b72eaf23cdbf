package ecs

import "github.com/tmaran/gridshade/ecs/component"

// World owns entities and one sparse-set store per component kind. It is
// exclusively owned by the session for one level and discarded whole on
// level transition; nothing here is safe for concurrent use, and nothing
// needs to be; a tick is single-threaded by contract.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is current.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// store returns the sparse set for a component id, creating it on demand.
func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// storeIfPresent returns the sparse set for a component id, or nil if no
// component of that kind was ever added.
func (w *World) storeIfPresent(id component.ComponentID) *SparseSet {
	return w.stores[id]
}

// handleFor rebuilds a full Entity handle from a store's dense id, skipping
// ids whose entity has since died.
func (w *World) handleFor(id int) (Entity, bool) {
	eid := entityID(id)
	if eid == 0 || int(eid) > len(w.entities.gen) {
		return 0, false
	}
	e := makeEntity(eid, w.entities.gen[eid-1])
	if !w.entities.isAlive(e) {
		return 0, false
	}
	return e, true
}
