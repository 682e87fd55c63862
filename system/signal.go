package system

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// SignalSystem spawns, advances, and retires the pulses traveling along
// graph edges.
type SignalSystem struct {
	rng vmath.Source

	cap         int
	spawnChance int64
	alertWeight int64
	speedMin    int64
	speedMax    int64
}

func NewSignalSystem(p parameter.Params, rng vmath.Source) engine.System {
	return &SignalSystem{
		rng:         rng,
		cap:         p.Signal.Cap,
		spawnChance: vmath.FromFloat(p.Signal.SpawnChance),
		alertWeight: vmath.FromFloat(p.Signal.AlertWeight),
		speedMin:    vmath.FromFloat(p.Signal.SpeedMin),
		speedMax:    vmath.FromFloat(p.Signal.SpeedMax),
	}
}

func (s *SignalSystem) Priority() int {
	return parameter.PrioritySignal
}

func (s *SignalSystem) Update(sc *engine.Scene) {
	if len(sc.Signals) < s.cap && len(sc.Edges) > 0 && vmath.Chance(s.rng, s.spawnChance) {
		s.spawn(sc)
	}

	// Advance and retire in place, keeping arrival order
	keep := sc.Signals[:0]
	for _, sg := range sc.Signals {
		sg.Progress += sg.Speed
		if sg.Progress >= vmath.Scale {
			continue
		}
		keep = append(keep, sg)
	}
	sc.Signals = keep
}

func (s *SignalSystem) spawn(sc *engine.Scene) {
	edge := sc.Edges[vmath.RandIntn(s.rng, len(sc.Edges))]

	from, to := edge.A, edge.B
	if s.rng.Uint64()&1 == 1 {
		from, to = to, from
	}

	kind := component.SignalCheck
	if vmath.Chance(s.rng, s.alertWeight) {
		kind = component.SignalAlert
	}

	sc.Signals = append(sc.Signals, component.Signal{
		ID:    sc.NextSignalID(),
		From:  from,
		To:    to,
		Speed: vmath.RandRange(s.rng, s.speedMin, s.speedMax),
		Kind:  kind,
	})
}
