package system

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// ParticleSystem spawns from the tick's emitters, integrates the pool,
// retires dead or fallen particles, and bulk-evicts on overflow. It
// never learns where an emitter came from; anchors, kinds, and chances
// arrive pre-stamped.
type ParticleSystem struct {
	rng vmath.Source

	cap        int
	evictBatch int
	margin     int64

	spray sprayProfile
	fire  fireProfile
	foam  foamProfile
}

type sprayProfile struct {
	speedMin, speedMax int64
	spread             int64
	gravity            int64
	decay              int64
	size               int64
}

type fireProfile struct {
	riseMin, riseMax int64
	jitter           int64
	gravity          int64
	decay            int64
	size             int64
	shrink           int64
}

type foamProfile struct {
	speedMin, speedMax int64
	jitter             int64
	gravity            int64
	decay              int64
	size               int64
}

func NewParticleSystem(p parameter.Params, rng vmath.Source) engine.System {
	pp := p.Particle
	return &ParticleSystem{
		rng:        rng,
		cap:        pp.Cap,
		evictBatch: pp.EvictBatch,
		margin:     vmath.FromFloat(pp.FrameMargin),
		spray: sprayProfile{
			speedMin: vmath.FromFloat(pp.Spray.SpeedMin),
			speedMax: vmath.FromFloat(pp.Spray.SpeedMax),
			spread:   vmath.FromFloat(pp.Spray.Spread),
			gravity:  vmath.FromFloat(pp.Spray.Gravity),
			decay:    vmath.FromFloat(pp.Spray.Decay),
			size:     vmath.FromFloat(pp.Spray.Size),
		},
		fire: fireProfile{
			riseMin: vmath.FromFloat(pp.Fire.RiseMin),
			riseMax: vmath.FromFloat(pp.Fire.RiseMax),
			jitter:  vmath.FromFloat(pp.Fire.Jitter),
			gravity: vmath.FromFloat(pp.Fire.Gravity),
			decay:   vmath.FromFloat(pp.Fire.Decay),
			size:    vmath.FromFloat(pp.Fire.Size),
			shrink:  vmath.FromFloat(pp.Fire.Shrink),
		},
		foam: foamProfile{
			speedMin: vmath.FromFloat(pp.Foam.SpeedMin),
			speedMax: vmath.FromFloat(pp.Foam.SpeedMax),
			jitter:   vmath.FromFloat(pp.Foam.Jitter),
			gravity:  vmath.FromFloat(pp.Foam.Gravity),
			decay:    vmath.FromFloat(pp.Foam.Decay),
			size:     vmath.FromFloat(pp.Foam.Size),
		},
	}
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

func (s *ParticleSystem) Update(sc *engine.Scene) {
	for _, e := range sc.Emitters {
		if !vmath.Chance(s.rng, e.Chance) {
			continue
		}
		switch e.Kind {
		case component.ParticleSpray:
			s.spawnSpray(sc, e)
		case component.ParticleFire:
			s.spawnFire(sc, e)
		case component.ParticleFoam:
			s.spawnFoam(sc, e)
		}
	}
	sc.Emitters = sc.Emitters[:0]

	floor := sc.H + s.margin
	keep := sc.Particles[:0]
	for _, pt := range sc.Particles {
		pt.Pos = pt.Pos.Add(pt.Vel)

		switch pt.Kind {
		case component.ParticleSpray:
			pt.Vel.Y += s.spray.gravity
		case component.ParticleFire:
			pt.Vel.Y += s.fire.gravity
			pt.Size = vmath.Mul(pt.Size, s.fire.shrink)
		case component.ParticleFoam:
			pt.Vel.Y += s.foam.gravity
		}

		pt.Life -= pt.Decay
		if pt.Life <= 0 || pt.Pos.Y > floor {
			continue
		}
		keep = append(keep, pt)
	}
	sc.Particles = keep

	if len(sc.Particles) > s.cap {
		// Oldest live at the front of the age-ordered pool; one copy
		// drops the whole batch
		n := copy(sc.Particles, sc.Particles[s.evictBatch:])
		sc.Particles = sc.Particles[:n]
	}
}

// spawnSpray launches up out of the sprinkler head inside a spread cone.
func (s *ParticleSystem) spawnSpray(sc *engine.Scene, e component.Emitter) {
	up := vmath.HalfTurn + vmath.QuarterTurn
	angle := up + vmath.RandRange(s.rng, -s.spray.spread, s.spray.spread)
	speed := vmath.RandRange(s.rng, s.spray.speedMin, s.spray.speedMax)

	sc.Particles = append(sc.Particles, component.Particle{
		ID:    sc.NextParticleID(),
		Pos:   e.Pos,
		Vel:   vmath.Heading(angle).MulScalar(speed),
		Life:  vmath.Scale,
		Decay: s.spray.decay,
		Size:  s.spray.size,
		Kind:  component.ParticleSpray,
	})
}

// spawnFire drifts upward with lateral wobble.
func (s *ParticleSystem) spawnFire(sc *engine.Scene, e component.Emitter) {
	sc.Particles = append(sc.Particles, component.Particle{
		ID:  sc.NextParticleID(),
		Pos: e.Pos,
		Vel: vmath.Vec{
			X: vmath.RandRange(s.rng, -s.fire.jitter, s.fire.jitter),
			Y: -vmath.RandRange(s.rng, s.fire.riseMin, s.fire.riseMax),
		},
		Life:  vmath.Scale,
		Decay: s.fire.decay,
		Size:  s.fire.size,
		Kind:  component.ParticleFire,
	})
}

// spawnFoam launches along the line to the emitter's target. A target
// on top of the anchor leaves just the jitter; Unit is zero-safe.
func (s *ParticleSystem) spawnFoam(sc *engine.Scene, e component.Emitter) {
	dir := e.Target.Sub(e.Pos).Unit()
	speed := vmath.RandRange(s.rng, s.foam.speedMin, s.foam.speedMax)

	vel := dir.MulScalar(speed)
	vel.X += vmath.RandRange(s.rng, -s.foam.jitter, s.foam.jitter)
	vel.Y += vmath.RandRange(s.rng, -s.foam.jitter, s.foam.jitter)

	sc.Particles = append(sc.Particles, component.Particle{
		ID:    sc.NextParticleID(),
		Pos:   e.Pos,
		Vel:   vel,
		Life:  vmath.Scale,
		Decay: s.foam.decay,
		Size:  s.foam.size,
		Kind:  component.ParticleFoam,
	})
}
