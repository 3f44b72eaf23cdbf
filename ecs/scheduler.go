package ecs

// System advances one concern of the world for a single tick.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in a fixed order. The order is the whole contract:
// AI decides, input resolves, motion interpolates, plates and gates settle,
// then the outcome is read.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
