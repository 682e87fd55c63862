package engine

// System is one simulation pass over the scene, run once per tick in
// Priority order.
type System interface {
	// Priority orders execution, lower runs first
	Priority() int

	// Update advances the system's slice of the scene by one tick
	Update(sc *Scene)
}

// AddSystem registers a system and keeps the list sorted by priority.
func (e *Engine) AddSystem(s System) {
	e.systems = append(e.systems, s)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(e.systems)-1; i++ {
		for j := 0; j < len(e.systems)-i-1; j++ {
			if e.systems[j].Priority() > e.systems[j+1].Priority() {
				e.systems[j], e.systems[j+1] = e.systems[j+1], e.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered system list in run order.
func (e *Engine) Systems() []System {
	out := make([]System, len(e.systems))
	copy(out, e.systems)
	return out
}
