// Package parameter defines the tunable constants of the simulation and
// their YAML overlay loading. Every stochastic or physical magnitude the
// systems use lives here as a named, documented, overridable value; the
// defaults are the shipped tuning.
//
// Units throughout: lengths in px, speeds in px per tick, accelerations
// in px per tick², angles in turns (1.0 = full revolution), chances as
// probability per tick in [0, 1].
package parameter

// Params is the full tuning tree consumed by engine.New. Zero value is
// not usable; start from Default and overlay.
type Params struct {
	Graph    Graph    `yaml:"graph"`
	Device   Device   `yaml:"device"`
	Signal   Signal   `yaml:"signal"`
	Particle Particle `yaml:"particle"`
	Steering Steering `yaml:"steering"`
}

// Graph controls node placement and proximity edge construction.
type Graph struct {
	// DensityDivisor is the layout area in px² that yields one node
	DensityDivisor float64 `yaml:"density_divisor"`
	// MinNodes floors the node count regardless of layout area
	MinNodes int `yaml:"min_nodes"`
	// Padding is the inset in px that placement and agent motion respect
	Padding float64 `yaml:"padding"`
	// MaxEdgeDist links two nodes when their distance in px is below it
	MaxEdgeDist float64 `yaml:"max_edge_dist"`
}

// Device controls the per-node oscillator and the sprinkler burst state
// machine.
type Device struct {
	// SprinklerSize and AlarmSize are base radii in px
	SprinklerSize float64 `yaml:"sprinkler_size"`
	AlarmSize     float64 `yaml:"alarm_size"`
	// PhaseRate advances each node's pulse oscillator in turns per tick
	PhaseRate float64 `yaml:"phase_rate"`
	// ActivationChance is the per-tick probability that one idle
	// sprinkler, chosen uniformly, starts a burst
	ActivationChance float64 `yaml:"activation_chance"`
	// ActiveTicks is the burst duration (180 ≈ 3s at 60Hz)
	ActiveTicks int `yaml:"active_ticks"`
}

// Signal controls pulse traffic on the proximity graph.
type Signal struct {
	// Cap bounds concurrent pulses in flight
	Cap int `yaml:"cap"`
	// SpawnChance is the per-tick probability of a new pulse while below cap
	SpawnChance float64 `yaml:"spawn_chance"`
	// AlertWeight is the probability a new pulse is alert rather than check
	AlertWeight float64 `yaml:"alert_weight"`
	// SpeedMin/SpeedMax bound pulse speed in progress per tick
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
}

// Particle controls the shared pool plus the three jet profiles.
type Particle struct {
	// Cap bounds the pool; crossing it evicts EvictBatch oldest at once
	Cap        int `yaml:"cap"`
	EvictBatch int `yaml:"evict_batch"`
	// FrameMargin is how far in px past the frame a particle may fall
	// before retirement
	FrameMargin float64 `yaml:"frame_margin"`

	Spray Spray `yaml:"spray"`
	Fire  Fire  `yaml:"fire"`
	Foam  Foam  `yaml:"foam"`
}

// Spray arcs outward and up from an active sprinkler head.
type Spray struct {
	// SpawnChance is the per-tick emission probability per active sprinkler
	SpawnChance float64 `yaml:"spawn_chance"`
	// SpeedMin/SpeedMax bound launch speed in px per tick
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	// Spread is the half-width of the upward launch cone in turns
	Spread float64 `yaml:"spread"`
	// Gravity is downward acceleration in px per tick²
	Gravity float64 `yaml:"gravity"`
	// Decay is life lost per tick, so 1/Decay ticks to expiry
	Decay float64 `yaml:"decay"`
	// Size is the starting radius in px
	Size float64 `yaml:"size"`
}

// Fire drifts upward with lateral jitter beneath the evader.
type Fire struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	// RiseMin/RiseMax bound the upward launch speed in px per tick
	RiseMin float64 `yaml:"rise_min"`
	RiseMax float64 `yaml:"rise_max"`
	// Jitter bounds lateral launch speed in px per tick, either direction
	Jitter  float64 `yaml:"jitter"`
	Gravity float64 `yaml:"gravity"`
	Decay   float64 `yaml:"decay"`
	Size    float64 `yaml:"size"`
	// Shrink multiplies size each tick, < 1 so flames taper as they climb
	Shrink float64 `yaml:"shrink"`
	// Offset spawns flames this many px below the evader's center
	Offset float64 `yaml:"offset"`
}

// Foam launches from the pursuer along the line to its target.
type Foam struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	// Jitter is velocity noise in px per tick added around the aim line
	Jitter  float64 `yaml:"jitter"`
	Gravity float64 `yaml:"gravity"`
	Decay   float64 `yaml:"decay"`
	Size    float64 `yaml:"size"`
	// BandMin/BandMax is the pursuer-to-evader distance range in px
	// inside which the nozzle opens
	BandMin float64 `yaml:"band_min"`
	BandMax float64 `yaml:"band_max"`
}

// Steering controls the evader/pursuer pair and pointer smoothing.
type Steering struct {
	// PointerEase is the fraction per tick the smoothed pointer moves
	// toward the raw sample
	PointerEase float64 `yaml:"pointer_ease"`
	// Restitution scales the inverted velocity component on a wall bounce
	Restitution float64 `yaml:"restitution"`

	Evader  Evader  `yaml:"evader"`
	Pursuer Pursuer `yaml:"pursuer"`
}

// Evader flees the pointer and panics up close.
type Evader struct {
	// FleeRadius is the pointer distance in px inside which flee acts
	FleeRadius float64 `yaml:"flee_radius"`
	// FleeGain is the flee acceleration in px per tick² at zero distance
	FleeGain float64 `yaml:"flee_gain"`
	// PanicRadius is the tighter distance adding shake and breathing
	PanicRadius float64 `yaml:"panic_radius"`
	// JitterAmp is shake acceleration in px per tick²; JitterFreq is its
	// oscillation rate in turns per tick
	JitterAmp  float64 `yaml:"jitter_amp"`
	JitterFreq float64 `yaml:"jitter_freq"`
	// BreathAmp is the scale pulse around 1.0 while panicked; BreathFreq
	// in turns per tick
	BreathAmp  float64 `yaml:"breath_amp"`
	BreathFreq float64 `yaml:"breath_freq"`
	// Friction multiplies velocity each tick
	Friction float64 `yaml:"friction"`
	// TiltFactor maps horizontal velocity to a target lean in turns;
	// TiltEase is the pose smoothing fraction per tick, covering both
	// the lean and the breathing recovery
	TiltFactor float64 `yaml:"tilt_factor"`
	TiltEase   float64 `yaml:"tilt_ease"`
}

// Pursuer trails the evader at a preferred distance.
type Pursuer struct {
	// ChaseGain is attraction toward the evader in px per tick² when
	// beyond FollowDist
	ChaseGain float64 `yaml:"chase_gain"`
	// AvoidGain is repulsion when closer than AvoidFraction of FollowDist
	AvoidGain float64 `yaml:"avoid_gain"`
	// FollowDist is the preferred trailing distance in px
	FollowDist float64 `yaml:"follow_dist"`
	Friction   float64 `yaml:"friction"`
	// SpinFactor maps speed in px per tick to spin in turns per tick
	SpinFactor float64 `yaml:"spin_factor"`
}

// AvoidFraction of FollowDist is the personal-space boundary below which
// the pursuer pushes away instead of chasing.
const AvoidFraction = 0.8

// Default returns the shipped tuning.
func Default() Params {
	return Params{
		Graph: Graph{
			DensityDivisor: 20000,
			MinNodes:       8,
			Padding:        20,
			MaxEdgeDist:    180,
		},
		Device: Device{
			SprinklerSize:    10,
			AlarmSize:        7,
			PhaseRate:        0.008,
			ActivationChance: 0.002,
			ActiveTicks:      180,
		},
		Signal: Signal{
			Cap:         6,
			SpawnChance: 0.02,
			AlertWeight: 0.3,
			SpeedMin:    0.006,
			SpeedMax:    0.014,
		},
		Particle: Particle{
			Cap:         100,
			EvictBatch:  20,
			FrameMargin: 40,
			Spray: Spray{
				SpawnChance: 0.4,
				SpeedMin:    1.5,
				SpeedMax:    3.5,
				Spread:      0.10,
				Gravity:     0.12,
				Decay:       0.022,
				Size:        3,
			},
			Fire: Fire{
				SpawnChance: 0.85,
				RiseMin:     0.6,
				RiseMax:     1.4,
				Jitter:      0.45,
				Gravity:     0.02,
				Decay:       0.035,
				Size:        4,
				Shrink:      0.97,
				Offset:      8,
			},
			Foam: Foam{
				SpawnChance: 0.5,
				SpeedMin:    2.0,
				SpeedMax:    3.2,
				Jitter:      0.3,
				Gravity:     0.05,
				Decay:       0.03,
				Size:        2.5,
				BandMin:     50,
				BandMax:     200,
			},
		},
		Steering: Steering{
			PointerEase: 0.15,
			Restitution: 0.7,
			Evader: Evader{
				FleeRadius:  140,
				FleeGain:    1.8,
				PanicRadius: 60,
				JitterAmp:   0.6,
				JitterFreq:  0.09,
				BreathAmp:   0.18,
				BreathFreq:  0.05,
				Friction:    0.92,
				TiltFactor:  0.02,
				TiltEase:    0.2,
			},
			Pursuer: Pursuer{
				ChaseGain:  0.35,
				AvoidGain:  0.25,
				FollowDist: 90,
				Friction:   0.90,
				SpinFactor: 0.004,
			},
		},
	}
}
