// Package system holds the simulation rules: graph construction, the
// sprinkler burst state machine, particle integration, signal traffic,
// and agent steering. Each system advances its own slice of the scene
// once per tick; the engine sequences them by priority.
package system

import (
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/vmath"
)

// Register wires the standard pipeline into an engine. Hosts wanting a
// custom pipeline add systems individually instead.
func Register(e *engine.Engine, rng vmath.Source) {
	p := e.Params()
	for _, s := range []engine.System{
		NewGraphSystem(p, rng),
		NewActivationSystem(p, rng),
		NewParticleSystem(p, rng),
		NewSignalSystem(p, rng),
		NewSteeringSystem(p),
	} {
		e.AddSystem(s)
	}
}
