package ecs

import "github.com/tmaran/gridshade/ecs/component"

// Add attaches a component to an entity, replacing any existing one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(int(e.id()), value)
	return nil
}

// Remove detaches a component from an entity. Returns false if absent.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID()).Remove(int(e.id()))
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !w.IsAlive(e) {
		return false
	}
	s := w.storeIfPresent(kind.ID())
	return s.Has(int(e.id()))
}

// Get returns a reference to the entity's component, if any. Mutations
// through the returned pointer are visible to every system.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !kind.Valid() || !w.IsAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(kind.ID())
	v := s.Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

// ForEach visits every live entity carrying the component. The underlying
// id list is snapshotted first, so fn may add or remove components without
// corrupting the walk.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return
	}
	for _, id := range s.Entities() {
		e, ok := w.handleFor(id)
		if !ok {
			continue
		}
		t, ok := s.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, t)
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.storeIfPresent(ka.ID())
	sb := w.storeIfPresent(kb.ID())
	if sa == nil || sb == nil {
		return
	}
	if sb.Len() < sa.Len() {
		ForEach2(w, kb, ka, func(e Entity, b *B, a *A) { fn(e, a, b) })
		return
	}
	for _, id := range sa.Entities() {
		if !sb.Has(id) {
			continue
		}
		e, ok := w.handleFor(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := w.storeIfPresent(kc.ID())
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		id := int(e.id())
		if !sc.Has(id) {
			return
		}
		c, ok := sc.Get(id).(*C)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}
