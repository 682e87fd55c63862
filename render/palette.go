package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/fyreone/firegrid/component"
)

// rampSteps is the resolution of the particle life gradients.
const rampSteps = 16

// Palette is the full color assignment for one theme. The theme flag
// picks a palette and nothing else; the simulation never reads colors.
type Palette struct {
	Background RGB

	Edge       RGB
	Sprinkler  RGB
	Alarm      RGB
	ActiveGlow RGB

	Check RGB
	Alert RGB

	Evader  RGB
	Pursuer RGB

	// Life-indexed gradients, dying color first, fresh color last
	SprayRamp []RGB
	FireRamp  []RGB
	FoamRamp  []RGB
}

// Dark is the default theme: deep blue field, cool devices, hot fire.
func Dark() Palette {
	return Palette{
		Background: hex("#0b1020"),

		Edge:       hex("#2a3a5c"),
		Sprinkler:  hex("#4fa3d1"),
		Alarm:      hex("#d1784f"),
		ActiveGlow: hex("#9fd8ff"),

		Check: hex("#58c470"),
		Alert: hex("#e05252"),

		Evader:  hex("#ffb347"),
		Pursuer: hex("#7a9fff"),

		SprayRamp: ramp("#193c52", "#9fe3ff"),
		FireRamp:  ramp("#57150a", "#ffd93b"),
		FoamRamp:  ramp("#2e4a4f", "#eafffb"),
	}
}

// Light softens everything toward a paper background.
func Light() Palette {
	return Palette{
		Background: hex("#f2f4f8"),

		Edge:       hex("#c3cbd9"),
		Sprinkler:  hex("#2a7aa8"),
		Alarm:      hex("#b05a2e"),
		ActiveGlow: hex("#2e9fe0"),

		Check: hex("#2f9e4f"),
		Alert: hex("#c93a3a"),

		Evader:  hex("#e08a1e"),
		Pursuer: hex("#4a6fd8"),

		SprayRamp: ramp("#b8d8e8", "#1e7ab0"),
		FireRamp:  ramp("#e8c8b0", "#d84315"),
		FoamRamp:  ramp("#cfe0e2", "#247a85"),
	}
}

// ParticleColor picks the ramp color for a particle's remaining life in
// [0, 1]; fading particles slide toward the dying end.
func (p Palette) ParticleColor(kind component.ParticleKind, life float64) RGB {
	var r []RGB
	switch kind {
	case component.ParticleFire:
		r = p.FireRamp
	case component.ParticleFoam:
		r = p.FoamRamp
	default:
		r = p.SprayRamp
	}

	i := int(life * float64(len(r)-1))
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// ramp builds a perceptually even gradient between two hex endpoints.
func ramp(from, to string) []RGB {
	a, b := parse(from), parse(to)
	out := make([]RGB, rampSteps)
	for i := range out {
		t := float64(i) / float64(rampSteps-1)
		r, g, bch := a.BlendLuv(b, t).Clamped().RGB255()
		out[i] = RGB{R: r, G: g, B: bch}
	}
	return out
}

func parse(s string) colorful.Color {
	c, _ := colorful.Hex(s) // literals above, cannot fail
	return c
}

func hex(s string) RGB {
	r, g, b := parse(s).RGB255()
	return RGB{R: r, G: g, B: b}
}
