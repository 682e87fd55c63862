package parameter

// System execution priorities (lower runs first)
const (
	PriorityGraph      = 10 // Rebuild before anything reads nodes
	PriorityActivation = 20 // Burst state machine, feeds spray emitters
	PriorityParticle   = 30 // After activation so this tick's bursts emit this tick
	PrioritySignal     = 40
	PrioritySteering   = 50 // Last, agent emitters land next tick with settled positions
)
