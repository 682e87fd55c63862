package system

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// force is one steering contribution, an acceleration in Q32.32 px per
// tick². Implementations read scene state and mutate nothing; the
// integration loop owns velocity. New behaviors slot into a force list
// without touching integration.
type force interface {
	accel(sc *engine.Scene, a *component.Agent) vmath.Vec
}

// fleePointer pushes away from the smoothed pointer inside its radius,
// zero strength at the rim, full at contact.
type fleePointer struct {
	radius int64
	gain   int64
}

func (f fleePointer) accel(sc *engine.Scene, a *component.Agent) vmath.Vec {
	if !sc.Pointer.Engaged {
		return vmath.Vec{}
	}
	away := a.Pos.Sub(sc.Pointer.Smooth)
	d := away.Mag()
	if d == 0 || d >= f.radius {
		return vmath.Vec{}
	}
	str := vmath.Mul(f.gain, vmath.Div(f.radius-d, f.radius))
	return away.Unit().MulScalar(str)
}

// panicJitter shakes the agent with a tick-driven sinusoid while the
// pointer sits inside the panic radius.
type panicJitter struct {
	radius int64
	amp    int64
	freq   int64
}

func (f panicJitter) accel(sc *engine.Scene, a *component.Agent) vmath.Vec {
	if !sc.Pointer.Engaged || a.Pos.Dist(sc.Pointer.Smooth) >= f.radius {
		return vmath.Vec{}
	}
	phase := sc.Tick * f.freq
	return vmath.Vec{
		X: vmath.Mul(f.amp, vmath.Sin(phase)),
		Y: vmath.Mul(f.amp, vmath.Cos(phase)),
	}
}

// chaseEvader pulls toward the evader while beyond the follow distance.
type chaseEvader struct {
	gain    int64
	minDist int64
}

func (f chaseEvader) accel(sc *engine.Scene, a *component.Agent) vmath.Vec {
	to := sc.Evader.Pos.Sub(a.Pos)
	d := to.Mag()
	if d == 0 || d <= f.minDist {
		return vmath.Vec{}
	}
	return to.Unit().MulScalar(f.gain)
}

// avoidEvader pushes away inside the personal-space distance, so the
// pursuer orbits near the follow distance instead of overlapping.
type avoidEvader struct {
	gain     int64
	personal int64
}

func (f avoidEvader) accel(sc *engine.Scene, a *component.Agent) vmath.Vec {
	to := sc.Evader.Pos.Sub(a.Pos)
	d := to.Mag()
	if d == 0 || d >= f.personal {
		return vmath.Vec{}
	}
	return to.Unit().MulScalar(-f.gain)
}

// SteeringSystem smooths the pointer, runs both agents' force lists,
// integrates with friction and wall bounces, updates visual pose, and
// queues the agents' emitters for the next tick.
type SteeringSystem struct {
	evaderForces  []force
	pursuerForces []force

	pointerEase int64
	restitution int64
	padding     int64

	evFriction int64
	puFriction int64

	tiltFactor int64
	poseEase   int64
	spinFactor int64

	panicRadius int64
	breathAmp   int64
	breathFreq  int64

	fireChance int64
	fireOffset int64

	foamChance int64
	bandMin    int64
	bandMax    int64
}

func NewSteeringSystem(p parameter.Params) engine.System {
	ev := p.Steering.Evader
	pu := p.Steering.Pursuer

	return &SteeringSystem{
		evaderForces: []force{
			fleePointer{
				radius: vmath.FromFloat(ev.FleeRadius),
				gain:   vmath.FromFloat(ev.FleeGain),
			},
			panicJitter{
				radius: vmath.FromFloat(ev.PanicRadius),
				amp:    vmath.FromFloat(ev.JitterAmp),
				freq:   vmath.FromFloat(ev.JitterFreq),
			},
		},
		pursuerForces: []force{
			chaseEvader{
				gain:    vmath.FromFloat(pu.ChaseGain),
				minDist: vmath.FromFloat(pu.FollowDist),
			},
			avoidEvader{
				gain:     vmath.FromFloat(pu.AvoidGain),
				personal: vmath.FromFloat(pu.FollowDist * parameter.AvoidFraction),
			},
		},

		pointerEase: vmath.FromFloat(p.Steering.PointerEase),
		restitution: vmath.FromFloat(p.Steering.Restitution),
		padding:     vmath.FromFloat(p.Graph.Padding),

		evFriction: vmath.FromFloat(ev.Friction),
		puFriction: vmath.FromFloat(pu.Friction),

		tiltFactor: vmath.FromFloat(ev.TiltFactor),
		poseEase:   vmath.FromFloat(ev.TiltEase),
		spinFactor: vmath.FromFloat(pu.SpinFactor),

		panicRadius: vmath.FromFloat(ev.PanicRadius),
		breathAmp:   vmath.FromFloat(ev.BreathAmp),
		breathFreq:  vmath.FromFloat(ev.BreathFreq),

		fireChance: vmath.FromFloat(p.Particle.Fire.SpawnChance),
		fireOffset: vmath.FromFloat(p.Particle.Fire.Offset),

		foamChance: vmath.FromFloat(p.Particle.Foam.SpawnChance),
		bandMin:    vmath.FromFloat(p.Particle.Foam.BandMin),
		bandMax:    vmath.FromFloat(p.Particle.Foam.BandMax),
	}
}

func (s *SteeringSystem) Priority() int {
	return parameter.PrioritySteering
}

func (s *SteeringSystem) Update(sc *engine.Scene) {
	// A frame too small for the padding inset has no interior to steer in
	if sc.W <= 2*s.padding || sc.H <= 2*s.padding {
		return
	}

	p := &sc.Pointer
	if p.Engaged {
		p.Smooth = p.Smooth.Add(p.Raw.Sub(p.Smooth).MulScalar(s.pointerEase))
	}

	s.integrate(sc, &sc.Evader, s.evaderForces, s.evFriction)
	s.integrate(sc, &sc.Pursuer, s.pursuerForces, s.puFriction)

	s.pose(sc)
	s.emit(sc)
}

func (s *SteeringSystem) integrate(sc *engine.Scene, a *component.Agent, forces []force, friction int64) {
	for _, f := range forces {
		a.Vel = a.Vel.Add(f.accel(sc, a))
	}
	a.Vel = a.Vel.MulScalar(friction)
	a.Pos = a.Pos.Add(a.Vel)
	s.bounce(sc, a)
}

// bounce clamps to the padded frame and inverts the offending velocity
// component with a lossy restitution.
func (s *SteeringSystem) bounce(sc *engine.Scene, a *component.Agent) {
	minX, maxX := s.padding, sc.W-s.padding
	minY, maxY := s.padding, sc.H-s.padding

	if a.Pos.X < minX {
		a.Pos.X = minX
		a.Vel.X = -vmath.Mul(a.Vel.X, s.restitution)
	} else if a.Pos.X > maxX {
		a.Pos.X = maxX
		a.Vel.X = -vmath.Mul(a.Vel.X, s.restitution)
	}

	if a.Pos.Y < minY {
		a.Pos.Y = minY
		a.Vel.Y = -vmath.Mul(a.Vel.Y, s.restitution)
	} else if a.Pos.Y > maxY {
		a.Pos.Y = maxY
		a.Vel.Y = -vmath.Mul(a.Vel.Y, s.restitution)
	}
}

// pose derives the visual rotation and scale from motion: the evader
// leans with horizontal velocity and breathes while panicked, the
// pursuer spins with speed.
func (s *SteeringSystem) pose(sc *engine.Scene) {
	ev := &sc.Evader
	tilt := vmath.Mul(ev.Vel.X, s.tiltFactor)
	ev.Rot += vmath.Mul(tilt-ev.Rot, s.poseEase)

	panicked := sc.Pointer.Engaged && ev.Pos.Dist(sc.Pointer.Smooth) < s.panicRadius
	if panicked {
		ev.Scale = vmath.Scale + vmath.Mul(s.breathAmp, vmath.Sin(sc.Tick*s.breathFreq))
	} else {
		ev.Scale += vmath.Mul(vmath.Scale-ev.Scale, s.poseEase)
	}

	pu := &sc.Pursuer
	pu.Rot += vmath.Mul(pu.Vel.Mag(), s.spinFactor)
}

// emit queues the agents' particle anchors. The particle system ran
// earlier this tick, so these land next tick.
func (s *SteeringSystem) emit(sc *engine.Scene) {
	firePos := sc.Evader.Pos
	firePos.Y += s.fireOffset
	sc.Emitters = append(sc.Emitters, component.Emitter{
		Pos:    firePos,
		Kind:   component.ParticleFire,
		Chance: s.fireChance,
	})

	d := sc.Pursuer.Pos.Dist(sc.Evader.Pos)
	if d > s.bandMin && d < s.bandMax {
		sc.Emitters = append(sc.Emitters, component.Emitter{
			Pos:    sc.Pursuer.Pos,
			Kind:   component.ParticleFoam,
			Chance: s.foamChance,
			Target: sc.Evader.Pos,
		})
	}
}
