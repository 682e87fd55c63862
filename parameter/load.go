package parameter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML overlay from path on top of Default. Missing keys
// keep their default values; an absent file is an error (callers decide
// whether to fall back).
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("reading params file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML bytes on top of Default and validates the result.
func Parse(data []byte) (Params, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parsing params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects tunings the systems cannot run on. Probabilities must
// sit in [0, 1], ranges must be ordered, and the pool bounds must allow
// eviction to make progress.
func (p Params) Validate() error {
	if p.Graph.DensityDivisor <= 0 {
		return fmt.Errorf("graph.density_divisor must be positive, got %v", p.Graph.DensityDivisor)
	}
	if p.Graph.MinNodes < 0 {
		return fmt.Errorf("graph.min_nodes must be non-negative, got %d", p.Graph.MinNodes)
	}
	if p.Graph.Padding < 0 {
		return fmt.Errorf("graph.padding must be non-negative, got %v", p.Graph.Padding)
	}
	if p.Graph.MaxEdgeDist <= 0 {
		return fmt.Errorf("graph.max_edge_dist must be positive, got %v", p.Graph.MaxEdgeDist)
	}

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"device.activation_chance", p.Device.ActivationChance},
		{"signal.spawn_chance", p.Signal.SpawnChance},
		{"signal.alert_weight", p.Signal.AlertWeight},
		{"particle.spray.spawn_chance", p.Particle.Spray.SpawnChance},
		{"particle.fire.spawn_chance", p.Particle.Fire.SpawnChance},
		{"particle.foam.spawn_chance", p.Particle.Foam.SpawnChance},
	} {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", c.name, c.v)
		}
	}

	if p.Device.ActiveTicks <= 0 {
		return fmt.Errorf("device.active_ticks must be positive, got %d", p.Device.ActiveTicks)
	}

	if p.Signal.Cap <= 0 {
		return fmt.Errorf("signal.cap must be positive, got %d", p.Signal.Cap)
	}
	if p.Signal.SpeedMin <= 0 || p.Signal.SpeedMax < p.Signal.SpeedMin {
		return fmt.Errorf("signal speed range must satisfy 0 < min <= max, got [%v, %v]",
			p.Signal.SpeedMin, p.Signal.SpeedMax)
	}

	if p.Particle.Cap <= 0 {
		return fmt.Errorf("particle.cap must be positive, got %d", p.Particle.Cap)
	}
	if p.Particle.EvictBatch <= 0 || p.Particle.EvictBatch > p.Particle.Cap {
		return fmt.Errorf("particle.evict_batch must be in [1, cap], got %d", p.Particle.EvictBatch)
	}
	for _, c := range []struct {
		name     string
		min, max float64
	}{
		{"particle.spray.speed", p.Particle.Spray.SpeedMin, p.Particle.Spray.SpeedMax},
		{"particle.fire.rise", p.Particle.Fire.RiseMin, p.Particle.Fire.RiseMax},
		{"particle.foam.speed", p.Particle.Foam.SpeedMin, p.Particle.Foam.SpeedMax},
		{"particle.foam.band", p.Particle.Foam.BandMin, p.Particle.Foam.BandMax},
	} {
		if c.min < 0 || c.max < c.min {
			return fmt.Errorf("%s range must satisfy 0 <= min <= max, got [%v, %v]", c.name, c.min, c.max)
		}
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"particle.spray.decay", p.Particle.Spray.Decay},
		{"particle.fire.decay", p.Particle.Fire.Decay},
		{"particle.foam.decay", p.Particle.Foam.Decay},
	} {
		if c.v <= 0 || c.v > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", c.name, c.v)
		}
	}
	if s := p.Particle.Fire.Shrink; s <= 0 || s > 1 {
		return fmt.Errorf("particle.fire.shrink must be in (0, 1], got %v", s)
	}

	if e := p.Steering.PointerEase; e <= 0 || e > 1 {
		return fmt.Errorf("steering.pointer_ease must be in (0, 1], got %v", e)
	}
	if r := p.Steering.Restitution; r < 0 || r > 1 {
		return fmt.Errorf("steering.restitution must be in [0, 1], got %v", r)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"steering.evader.friction", p.Steering.Evader.Friction},
		{"steering.pursuer.friction", p.Steering.Pursuer.Friction},
	} {
		if c.v <= 0 || c.v > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", c.name, c.v)
		}
	}
	if p.Steering.Evader.FleeRadius <= 0 {
		return fmt.Errorf("steering.evader.flee_radius must be positive, got %v", p.Steering.Evader.FleeRadius)
	}
	if p.Steering.Pursuer.FollowDist <= 0 {
		return fmt.Errorf("steering.pursuer.follow_dist must be positive, got %v", p.Steering.Pursuer.FollowDist)
	}

	return nil
}
