package system

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// ActivationSystem runs the sprinkler burst state machine and every
// node's pulse oscillator, and turns burst sprinklers into spray
// emitters for the particle system.
type ActivationSystem struct {
	rng vmath.Source

	phaseRate   int64
	chance      int64
	activeTicks int
	sprayChance int64

	idleScratch []int
}

func NewActivationSystem(p parameter.Params, rng vmath.Source) engine.System {
	return &ActivationSystem{
		rng:         rng,
		phaseRate:   vmath.FromFloat(p.Device.PhaseRate),
		chance:      vmath.FromFloat(p.Device.ActivationChance),
		activeTicks: p.Device.ActiveTicks,
		sprayChance: vmath.FromFloat(p.Particle.Spray.SpawnChance),
	}
}

func (s *ActivationSystem) Priority() int {
	return parameter.PriorityActivation
}

func (s *ActivationSystem) Update(sc *engine.Scene) {
	// Host-requested triggers first, then the ambient random burst
	for _, idx := range sc.Triggers {
		s.activate(sc, idx)
	}
	sc.Triggers = sc.Triggers[:0]

	if vmath.Chance(s.rng, s.chance) {
		s.activateRandomIdle(sc)
	}

	for i := range sc.Nodes {
		n := &sc.Nodes[i]

		// Phase wraps naturally, the angle space is the int64 ring
		n.Phase += s.phaseRate

		if n.State != component.NodeActive {
			continue
		}

		sc.Emitters = append(sc.Emitters, component.Emitter{
			Pos:    n.Pos,
			Kind:   component.ParticleSpray,
			Chance: s.sprayChance,
		})

		n.ActiveTimer--
		if n.ActiveTimer <= 0 {
			n.State = component.NodeIdle
			n.ActiveTimer = 0
		}
	}
}

// activate starts a burst on an idle sprinkler. Alarms, out-of-range
// indices, and already-active nodes are no-ops; re-triggering never
// touches a running timer.
func (s *ActivationSystem) activate(sc *engine.Scene, idx int) {
	if idx < 0 || idx >= len(sc.Nodes) {
		return
	}
	n := &sc.Nodes[idx]
	if n.Kind != component.NodeSprinkler || n.State == component.NodeActive {
		return
	}
	n.State = component.NodeActive
	n.ActiveTimer = s.activeTicks
}

func (s *ActivationSystem) activateRandomIdle(sc *engine.Scene) {
	s.idleScratch = s.idleScratch[:0]
	for i := range sc.Nodes {
		n := &sc.Nodes[i]
		if n.Kind == component.NodeSprinkler && n.State == component.NodeIdle {
			s.idleScratch = append(s.idleScratch, i)
		}
	}
	if len(s.idleScratch) == 0 {
		return
	}
	s.activate(sc, s.idleScratch[vmath.RandIntn(s.rng, len(s.idleScratch))])
}
