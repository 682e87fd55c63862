package component

import "github.com/fyreone/firegrid/vmath"

// ParticleKind selects the spawn velocity profile, gravity, and decay of
// a particle.
type ParticleKind uint8

const (
	// ParticleSpray arcs outward and up from an active sprinkler
	ParticleSpray ParticleKind = iota
	// ParticleFire drifts upward with lateral jitter beneath the evader
	ParticleFire
	// ParticleFoam sprays from the pursuer toward its target
	ParticleFoam
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleSpray:
		return "spray"
	case ParticleFire:
		return "fire"
	case ParticleFoam:
		return "foam"
	default:
		return "unknown"
	}
}

// Particle is one short-lived integrated element of the pool. The pool is
// append-ordered: index 0 is always the oldest survivor, which is what
// makes bulk eviction of the front correct.
type Particle struct {
	ID  uint64
	Pos vmath.Vec
	Vel vmath.Vec

	// Life runs (0, 1] Q32.32 and strictly decreases by Decay per tick
	Life  int64
	Decay int64

	// Size in Q32.32 pixels; fire shrinks it multiplicatively per tick
	Size int64

	Kind ParticleKind
}

// Emitter is the per-tick handoff into the particle system: an anchor, a
// kind, a spawn chance, and (for foam) an aim point. The particle system
// never learns whether the anchor was a node or an agent.
type Emitter struct {
	Pos  vmath.Vec
	Kind ParticleKind

	// Chance is the Q32.32 probability this emitter produces a particle
	// this tick; the emitting system stamps it from its own tuning
	Chance int64

	// Target aims foam launches; unused for spray and fire
	Target vmath.Vec
}
