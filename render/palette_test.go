package render

import (
	"testing"

	"github.com/fyreone/firegrid/component"
)

func TestRampsResolved(t *testing.T) {
	for _, p := range []Palette{Dark(), Light()} {
		for _, ramp := range [][]RGB{p.SprayRamp, p.FireRamp, p.FoamRamp} {
			if len(ramp) != rampSteps {
				t.Fatalf("ramp has %d steps, want %d", len(ramp), rampSteps)
			}
			if ramp[0] == ramp[len(ramp)-1] {
				t.Errorf("ramp is flat at %v", ramp[0])
			}
		}
	}
}

func TestParticleColorSelectsRamp(t *testing.T) {
	p := Dark()

	if got := p.ParticleColor(component.ParticleFire, 1); got != p.FireRamp[rampSteps-1] {
		t.Errorf("fresh fire = %v, want top of the fire ramp", got)
	}
	if got := p.ParticleColor(component.ParticleFoam, 1); got != p.FoamRamp[rampSteps-1] {
		t.Errorf("fresh foam = %v, want top of the foam ramp", got)
	}
	if got := p.ParticleColor(component.ParticleSpray, 1); got != p.SprayRamp[rampSteps-1] {
		t.Errorf("fresh spray = %v, want top of the spray ramp", got)
	}
}

func TestParticleColorClampsLife(t *testing.T) {
	p := Light()

	if got := p.ParticleColor(component.ParticleFire, 0); got != p.FireRamp[0] {
		t.Errorf("dead fire = %v, want bottom of the ramp", got)
	}
	if got := p.ParticleColor(component.ParticleFire, -0.5); got != p.FireRamp[0] {
		t.Errorf("negative life = %v, want bottom of the ramp", got)
	}
	if got := p.ParticleColor(component.ParticleFire, 2); got != p.FireRamp[rampSteps-1] {
		t.Errorf("overfull life = %v, want top of the ramp", got)
	}
}

func TestThemesDiffer(t *testing.T) {
	if Dark().Background == Light().Background {
		t.Error("dark and light themes share a background")
	}
}
