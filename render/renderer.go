package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
)

const (
	signalRadius  = 2
	haloSpread    = 3
	haloAlpha     = 0.4
	pulseWeight   = 0.35
	evaderRadius  = 4.0
	pursuerRadius = 3.0
)

// Renderer composites engine snapshots into a pixel buffer and flushes
// them to a tcell screen. One instance per screen; not safe for
// concurrent Draw calls.
type Renderer struct {
	buf   *Buffer
	dark  Palette
	light Palette
}

func NewRenderer() *Renderer {
	return &Renderer{
		buf:   NewBuffer(1, 1),
		dark:  Dark(),
		light: Light(),
	}
}

// Draw paints one snapshot back to front: edges, nodes, signals,
// particles, agents. The screen is sized here; the caller shows it.
func (r *Renderer) Draw(screen tcell.Screen, snap *engine.Snapshot) {
	cols, rows := screen.Size()
	r.buf.Resize(cols, rows)

	pal := r.light
	if snap.Dark {
		pal = r.dark
	}

	r.buf.Clear(pal.Background)

	for i := range snap.Edges {
		e := &snap.Edges[i]
		r.line(int(e.X1), int(e.Y1), int(e.X2), int(e.Y2), pal.Edge, e.Opacity)
	}
	for i := range snap.Nodes {
		r.drawNode(&snap.Nodes[i], pal)
	}
	for i := range snap.Signals {
		s := &snap.Signals[i]
		c := pal.Check
		if s.Kind == component.SignalAlert {
			c = pal.Alert
		}
		r.glow(int(s.X), int(s.Y), signalRadius, c, s.Intensity)
	}
	for i := range snap.Particles {
		r.drawParticle(&snap.Particles[i], pal)
	}
	r.drawEvader(snap.Evader, pal)
	r.drawPursuer(snap.Pursuer, pal)

	r.buf.Flush(screen)
}

func (r *Renderer) drawNode(n *engine.NodeView, pal Palette) {
	base := pal.Sprinkler
	if n.Kind == component.NodeAlarm {
		base = pal.Alarm
	}
	c := Lerp(base, pal.ActiveGlow, n.Pulse*pulseWeight)
	cx, cy := int(n.X), int(n.Y)
	rad := int(n.Size)
	r.disc(cx, cy, rad, c, 1)
	if n.Active {
		r.halo(cx, cy, rad+haloSpread, pal.ActiveGlow, haloAlpha)
	}
}

func (r *Renderer) drawParticle(p *engine.ParticleView, pal Palette) {
	c := pal.ParticleColor(p.Kind, p.Opacity)
	if p.Size >= 2 {
		r.glow(int(p.X), int(p.Y), int(p.Size)/2, c, p.Opacity)
		return
	}
	r.buf.AddAt(int(p.X), int(p.Y), c, p.Opacity)
}

func (r *Renderer) drawEvader(a engine.AgentView, pal Palette) {
	cx, cy := int(a.X), int(a.Y)
	rad := int(evaderRadius * a.Scale)
	r.disc(cx, cy, rad, pal.Evader, 1)
	r.spoke(cx, cy, rad, a.Rot, pal.ActiveGlow)
}

func (r *Renderer) drawPursuer(a engine.AgentView, pal Palette) {
	cx, cy := int(a.X), int(a.Y)
	rad := int(pursuerRadius * a.Scale)
	r.disc(cx, cy, rad, Scale(pal.Pursuer, 0.35), 1)
	r.ring(cx, cy, rad, pal.Pursuer, 1)
	r.spoke(cx, cy, rad, a.Rot, pal.Pursuer)
}

// line walks the integer Bresenham octants, blending each pixel.
func (r *Renderer) line(x0, y0, x1, y1 int, c RGB, alpha float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.buf.BlendAt(x0, y0, c, alpha)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// disc fills a circle with the squared-distance test.
func (r *Renderer) disc(cx, cy, rad int, c RGB, alpha float64) {
	if rad < 1 {
		r.buf.BlendAt(cx, cy, c, alpha)
		return
	}
	rr := rad * rad
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rr {
				r.buf.BlendAt(cx+dx, cy+dy, c, alpha)
			}
		}
	}
}

// ring traces a one-pixel midpoint circle outline.
func (r *Renderer) ring(cx, cy, rad int, c RGB, alpha float64) {
	if rad < 1 {
		r.buf.BlendAt(cx, cy, c, alpha)
		return
	}
	x, y, err := rad, 0, 1-rad
	for x >= y {
		r.buf.BlendAt(cx+x, cy+y, c, alpha)
		r.buf.BlendAt(cx+y, cy+x, c, alpha)
		r.buf.BlendAt(cx-y, cy+x, c, alpha)
		r.buf.BlendAt(cx-x, cy+y, c, alpha)
		r.buf.BlendAt(cx-x, cy-y, c, alpha)
		r.buf.BlendAt(cx-y, cy-x, c, alpha)
		r.buf.BlendAt(cx+y, cy-x, c, alpha)
		r.buf.BlendAt(cx+x, cy-y, c, alpha)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// glow adds a disc with quadratic falloff so overlapping pulses bloom
// toward white instead of overwriting each other.
func (r *Renderer) glow(cx, cy, rad int, c RGB, alpha float64) {
	if rad < 1 {
		r.buf.AddAt(cx, cy, c, alpha)
		return
	}
	rr := rad * rad
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > rr {
				continue
			}
			fade := 1 - float64(d2)/float64(rr+1)
			r.buf.AddAt(cx+dx, cy+dy, c, alpha*fade*fade)
		}
	}
}

// halo screens a soft ring over already-painted pixels, fading to the rim.
func (r *Renderer) halo(cx, cy, rad int, c RGB, alpha float64) {
	rr := rad * rad
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > rr {
				continue
			}
			fade := 1 - float64(d2)/float64(rr)
			r.buf.ScreenAt(cx+dx, cy+dy, c, alpha*fade)
		}
	}
}

// spoke draws the rotation indicator radius; rot is in turns.
func (r *Renderer) spoke(cx, cy, rad int, rot float64, c RGB) {
	if rad < 1 {
		return
	}
	a := rot * 2 * math.Pi
	x := cx + int(math.Cos(a)*float64(rad))
	y := cy + int(math.Sin(a)*float64(rad))
	r.line(cx, cy, x, y, c, 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
