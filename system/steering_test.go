package system

import (
	"testing"

	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

func steerScene() *engine.Scene {
	sc := engine.NewScene(400, 300) // evader (200,150), pursuer (140,150)
	sc.NeedRebuild = false
	return sc
}

// Both agents stay inside the padded frame on every tick, even under
// sustained maximum flee with the pointer riding the evader.
func TestSteeringBoundaryInvariant(t *testing.T) {
	p := parameter.Default()
	sys := NewSteeringSystem(p)
	sc := steerScene()

	pad := vmath.FromFloat(p.Graph.Padding)
	sc.Pointer.Engaged = true
	for tick := 0; tick < 300; tick++ {
		// Chase the evader with a slight offset so the flee force never
		// hits the zero-distance dead spot
		sc.Pointer.Raw = sc.Evader.Pos.Add(vmath.VecFromInt(1, 1))
		sc.Tick++
		sys.Update(sc)
		sc.Emitters = sc.Emitters[:0]

		for _, a := range []component.Agent{sc.Evader, sc.Pursuer} {
			if a.Pos.X < pad || a.Pos.X > sc.W-pad {
				t.Fatalf("tick %d: x = %d outside [%d, %d]", tick, a.Pos.X, pad, sc.W-pad)
			}
			if a.Pos.Y < pad || a.Pos.Y > sc.H-pad {
				t.Fatalf("tick %d: y = %d outside [%d, %d]", tick, a.Pos.Y, pad, sc.H-pad)
			}
		}
	}
}

// A wall hit clamps position and inverts the offending velocity
// component scaled by restitution.
func TestSteeringBounce(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.Friction = 1.0
	p.Steering.Restitution = 0.5
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Evader.Pos = vmath.VecFromInt(10, 150) // already past the left inset
	sc.Evader.Vel = vmath.VecFromInt(-4, 0)

	sys.Update(sc)

	if got, want := sc.Evader.Pos.X, vmath.FromInt(20); got != want {
		t.Errorf("x = %d, want clamped to %d", got, want)
	}
	if got, want := sc.Evader.Vel.X, vmath.FromInt(2); got != want {
		t.Errorf("vel.x = %d, want %d (inverted at half strength)", got, want)
	}
	if sc.Evader.Vel.Y != 0 || sc.Evader.Pos.Y != vmath.FromInt(150) {
		t.Error("the untouched axis must pass through unchanged")
	}
}

// Flee pushes directly away from the pointer, at rim-relative strength.
func TestSteeringFlee(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.Friction = 1.0
	p.Steering.Evader.JitterAmp = 0
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pointer.Engaged = true
	sc.Pointer.Raw = vmath.VecFromInt(150, 150) // 50 px left of the evader
	sc.Pointer.Smooth = sc.Pointer.Raw

	sys.Update(sc)

	// Strength is gain scaled by how deep inside the radius the pointer is
	want := vmath.Mul(
		vmath.FromFloat(p.Steering.Evader.FleeGain),
		vmath.Div(vmath.FromFloat(p.Steering.Evader.FleeRadius-50), vmath.FromFloat(p.Steering.Evader.FleeRadius)),
	)
	if got := sc.Evader.Vel.X; got != want {
		t.Errorf("vel.x = %d, want %d", got, want)
	}
	if sc.Evader.Vel.Y != 0 {
		t.Errorf("vel.y = %d, want 0 for a purely horizontal flee", sc.Evader.Vel.Y)
	}
	if got, want := sc.Evader.Pos.X, vmath.FromInt(200)+want; got != want {
		t.Errorf("x = %d, want %d", got, want)
	}
}

// At exactly the flee radius the force is already zero.
func TestSteeringFleeRim(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.JitterAmp = 0
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pointer.Engaged = true
	sc.Pointer.Raw = vmath.VecFromInt(60, 150) // 140 px out, the radius itself
	sc.Pointer.Smooth = sc.Pointer.Raw

	sys.Update(sc)

	if sc.Evader.Vel != (vmath.Vec{}) {
		t.Errorf("vel = %+v, want zero at the rim", sc.Evader.Vel)
	}
	if sc.Evader.Pos != vmath.VecFromInt(200, 150) {
		t.Errorf("pos = %+v, evader should not have moved", sc.Evader.Pos)
	}
}

// A pointer dead on the evader skips the flee term instead of dividing
// by zero; the panic shake still runs.
func TestSteeringZeroDistance(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.JitterFreq = 0.25
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pointer.Engaged = true
	sc.Pointer.Raw = sc.Evader.Pos
	sc.Pointer.Smooth = sc.Evader.Pos
	sc.Tick = 1 // quarter-turn phase, shake points along +x

	sys.Update(sc)

	if sc.Evader.Vel.X <= 0 {
		t.Errorf("vel.x = %d, want a positive shake", sc.Evader.Vel.X)
	}
}

// The pursuer chases beyond the follow distance, backs off inside its
// personal space, and coasts in the band between.
func TestSteeringChaseBand(t *testing.T) {
	p := parameter.Default()
	p.Steering.Pursuer.Friction = 1.0
	sys := NewSteeringSystem(p)

	chase := vmath.FromFloat(p.Steering.Pursuer.ChaseGain)
	avoid := vmath.FromFloat(p.Steering.Pursuer.AvoidGain)

	// Pursuer x against the evader fixed at 200: 150 px out chases,
	// 40 px out backs off, 80 px out coasts between the two thresholds
	cases := []struct {
		name  string
		px    int
		wantX int64
	}{
		{"beyond follow distance", 50, chase},
		{"inside personal space", 160, -avoid},
		{"dead zone", 120, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := steerScene()
			sc.Pursuer.Pos = vmath.VecFromInt(tc.px, 150)

			sys.Update(sc)

			if got := sc.Pursuer.Vel.X; got != tc.wantX {
				t.Errorf("vel.x = %d, want %d", got, tc.wantX)
			}
			if sc.Pursuer.Vel.Y != 0 {
				t.Errorf("vel.y = %d, want 0 on a horizontal line", sc.Pursuer.Vel.Y)
			}
		})
	}
}

// Smoothing halves the gap to the raw pointer each tick at ease 0.5,
// and freezes the moment the pointer disengages.
func TestSteeringPointerSmoothing(t *testing.T) {
	p := parameter.Default()
	p.Steering.PointerEase = 0.5
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pointer.Engaged = true
	sc.Pointer.Raw = vmath.VecFromInt(160, 0)
	sc.Pointer.Smooth = vmath.Vec{}

	for _, want := range []int64{vmath.FromInt(80), vmath.FromInt(120), vmath.FromInt(140)} {
		sys.Update(sc)
		if got := sc.Pointer.Smooth.X; got != want {
			t.Fatalf("smooth.x = %d, want %d", got, want)
		}
	}

	sc.Pointer.Engaged = false
	sys.Update(sc)
	if got := sc.Pointer.Smooth.X; got != vmath.FromInt(140) {
		t.Errorf("smooth.x = %d, must freeze while disengaged", got)
	}
}

// The evader's burner emits every tick, anchored below its center; the
// pursuer's nozzle opens only inside the distance band.
func TestSteeringEmitters(t *testing.T) {
	p := parameter.Default()
	sys := NewSteeringSystem(p)

	countFoam := func(sc *engine.Scene) int {
		n := 0
		for _, e := range sc.Emitters {
			if e.Kind == component.ParticleFoam {
				n++
			}
		}
		return n
	}

	// Pursuer hugging the evader: under the band, fire only
	sc := steerScene()
	sc.Pursuer.Pos = vmath.VecFromInt(170, 150) // 30 px
	sys.Update(sc)

	if len(sc.Emitters) != 1 {
		t.Fatalf("%d emitters, want 1 (fire only under the band)", len(sc.Emitters))
	}
	fire := sc.Emitters[0]
	if fire.Kind != component.ParticleFire {
		t.Fatalf("kind = %v, want fire", fire.Kind)
	}
	if fire.Chance != vmath.FromFloat(p.Particle.Fire.SpawnChance) {
		t.Errorf("fire chance not stamped from tuning")
	}
	wantPos := sc.Evader.Pos
	wantPos.Y += vmath.FromFloat(p.Particle.Fire.Offset)
	if fire.Pos != wantPos {
		t.Errorf("fire pos = %+v, want %+v (offset below the evader)", fire.Pos, wantPos)
	}

	// Mid-band: the foam nozzle opens, aimed at the evader
	sc = steerScene()
	sc.Pursuer.Pos = vmath.VecFromInt(100, 150) // 100 px
	sys.Update(sc)

	if countFoam(sc) != 1 {
		t.Fatalf("want exactly one foam emitter in the band, got %d", countFoam(sc))
	}
	for _, e := range sc.Emitters {
		if e.Kind != component.ParticleFoam {
			continue
		}
		if e.Target != sc.Evader.Pos {
			t.Errorf("foam target = %+v, want the evader at %+v", e.Target, sc.Evader.Pos)
		}
		if e.Pos != sc.Pursuer.Pos {
			t.Errorf("foam pos = %+v, want the pursuer at %+v", e.Pos, sc.Pursuer.Pos)
		}
		if e.Chance != vmath.FromFloat(p.Particle.Foam.SpawnChance) {
			t.Errorf("foam chance not stamped from tuning")
		}
	}

	// Far past the band: nozzle shut again
	sc = steerScene()
	sc.Pursuer.Pos = vmath.VecFromInt(60, 150)
	sc.Evader.Pos = vmath.VecFromInt(340, 150) // 280 px out
	sys.Update(sc)

	if countFoam(sc) != 0 {
		t.Errorf("foam emitter past the band, distance gating broken")
	}
}

// Panic breathing swings the scale away from rest, and it eases back
// once the pointer leaves.
func TestSteeringBreathing(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.JitterAmp = 0
	p.Steering.Evader.BreathFreq = 0.25
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pointer.Engaged = true
	sc.Pointer.Raw = sc.Evader.Pos
	sc.Pointer.Smooth = sc.Evader.Pos
	sc.Tick = 1 // quarter-turn phase, peak inhale

	sys.Update(sc)
	if sc.Evader.Scale <= vmath.Scale {
		t.Fatalf("scale = %d, want above rest at peak inhale", sc.Evader.Scale)
	}

	sc.Pointer.Engaged = false
	gap := vmath.Abs(sc.Evader.Scale - vmath.Scale)
	for tick := 0; tick < 3; tick++ {
		sys.Update(sc)
		next := vmath.Abs(sc.Evader.Scale - vmath.Scale)
		if next >= gap {
			t.Fatalf("recovery stalled: gap %d then %d", gap, next)
		}
		gap = next
	}
}

// Lean tracks horizontal velocity through the pose ease.
func TestSteeringTilt(t *testing.T) {
	p := parameter.Default()
	p.Steering.Evader.Friction = 1.0
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Evader.Vel = vmath.VecFromInt(5, 0)

	sys.Update(sc)

	tilt := vmath.Mul(vmath.FromInt(5), vmath.FromFloat(p.Steering.Evader.TiltFactor))
	want := vmath.Mul(tilt, vmath.FromFloat(p.Steering.Evader.TiltEase))
	if got := sc.Evader.Rot; got != want {
		t.Errorf("rot = %d, want %d after one ease step", got, want)
	}

	sys.Update(sc)
	if got := sc.Evader.Rot; got <= want || got > tilt {
		t.Errorf("rot = %d, want strictly closer to the target lean %d", got, tilt)
	}
}

// Pursuer spin accumulates with speed.
func TestSteeringSpin(t *testing.T) {
	p := parameter.Default()
	p.Steering.Pursuer.Friction = 1.0
	sys := NewSteeringSystem(p)
	sc := steerScene()

	sc.Pursuer.Pos = vmath.VecFromInt(120, 150) // dead zone, no forces
	sc.Pursuer.Vel = vmath.VecFromInt(3, 4)     // speed exactly 5

	sys.Update(sc)

	want := vmath.Mul(vmath.FromInt(5), vmath.FromFloat(p.Steering.Pursuer.SpinFactor))
	if got := sc.Pursuer.Rot; got != want {
		t.Errorf("rot = %d, want %d", got, want)
	}
}

// A frame smaller than twice the padding has no interior: the whole
// update is a no-op.
func TestSteeringDegenerateFrame(t *testing.T) {
	p := parameter.Default()
	sys := NewSteeringSystem(p)

	sc := engine.NewScene(30, 30)
	sc.NeedRebuild = false
	sc.Evader.Vel = vmath.VecFromInt(5, 5)
	sc.Pointer.Engaged = true
	sc.Pointer.Raw = vmath.VecFromInt(25, 25)

	before := sc.Evader.Pos
	sys.Update(sc)

	if sc.Evader.Pos != before {
		t.Error("agents must freeze when the frame has no padded interior")
	}
	if len(sc.Emitters) != 0 {
		t.Errorf("%d emitters on a degenerate frame, want none", len(sc.Emitters))
	}
	if sc.Pointer.Smooth != (vmath.Vec{}) {
		t.Error("pointer smoothing must not run on a degenerate frame")
	}
}
