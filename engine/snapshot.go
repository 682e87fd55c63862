package engine

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/vmath"
)

// Snapshot is the render-ready view of one tick, float64 at the host
// boundary, ordered back to front: edges, nodes, signals, particles,
// agents. Every slice is freshly allocated per tick; hosts may keep or
// mutate a snapshot without touching engine state.
type Snapshot struct {
	W, H float64
	Dark bool
	Tick int64

	Edges     []EdgeView
	Nodes     []NodeView
	Signals   []SignalView
	Particles []ParticleView
	Evader    AgentView
	Pursuer   AgentView
}

// EdgeView is a line between two node centers. Opacity is static per
// rebuild, 1 − dist/maxDist, so close pairs draw stronger.
type EdgeView struct {
	X1, Y1  float64
	X2, Y2  float64
	Opacity float64
}

// NodeView is one device marker.
type NodeView struct {
	X, Y float64
	Size float64
	Kind component.NodeKind

	// Active is true while a sprinkler burst runs
	Active bool

	// Pulse is the phase-derived glow intensity in [0, 1]
	Pulse float64
}

// SignalView is a pulse at its interpolated position along its edge.
// Intensity follows sin(progress·π), fading in then out over the travel.
type SignalView struct {
	X, Y      float64
	Intensity float64
	Kind      component.SignalKind
}

// ParticleView is one pool element; Opacity tracks remaining life.
type ParticleView struct {
	X, Y    float64
	Size    float64
	Opacity float64
	Kind    component.ParticleKind
}

// AgentView is one steered body. Rot is in turns, 1.0 = full revolution.
type AgentView struct {
	X, Y  float64
	Rot   float64
	Scale float64
}

func (e *Engine) snapshot() *Snapshot {
	sc := e.scene

	snap := &Snapshot{
		W:         vmath.ToFloat(sc.W),
		H:         vmath.ToFloat(sc.H),
		Dark:      sc.Dark,
		Tick:      sc.Tick,
		Edges:     make([]EdgeView, 0, len(sc.Edges)),
		Nodes:     make([]NodeView, 0, len(sc.Nodes)),
		Signals:   make([]SignalView, 0, len(sc.Signals)),
		Particles: make([]ParticleView, 0, len(sc.Particles)),
		Evader:    agentView(sc.Evader),
		Pursuer:   agentView(sc.Pursuer),
	}

	for _, ed := range sc.Edges {
		a, b := &sc.Nodes[ed.A], &sc.Nodes[ed.B]
		op := vmath.Clamp(vmath.Scale-vmath.Mul(ed.Dist, e.invMaxEdge), 0, vmath.Scale)
		snap.Edges = append(snap.Edges, EdgeView{
			X1:      vmath.ToFloat(a.Pos.X),
			Y1:      vmath.ToFloat(a.Pos.Y),
			X2:      vmath.ToFloat(b.Pos.X),
			Y2:      vmath.ToFloat(b.Pos.Y),
			Opacity: vmath.ToFloat(op),
		})
	}

	for _, n := range sc.Nodes {
		pulse := (vmath.Scale + vmath.Sin(n.Phase)) / 2
		snap.Nodes = append(snap.Nodes, NodeView{
			X:      vmath.ToFloat(n.Pos.X),
			Y:      vmath.ToFloat(n.Pos.Y),
			Size:   vmath.ToFloat(n.Size),
			Kind:   n.Kind,
			Active: n.State == component.NodeActive,
			Pulse:  vmath.ToFloat(pulse),
		})
	}

	for _, sg := range sc.Signals {
		from, to := &sc.Nodes[sg.From], &sc.Nodes[sg.To]
		pos := from.Pos.Add(to.Pos.Sub(from.Pos).MulScalar(sg.Progress))

		// sin(progress·π): half a turn over the full travel
		intensity := vmath.Sin(sg.Progress >> 1)

		snap.Signals = append(snap.Signals, SignalView{
			X:         vmath.ToFloat(pos.X),
			Y:         vmath.ToFloat(pos.Y),
			Intensity: vmath.ToFloat(intensity),
			Kind:      sg.Kind,
		})
	}

	for _, pt := range sc.Particles {
		snap.Particles = append(snap.Particles, ParticleView{
			X:       vmath.ToFloat(pt.Pos.X),
			Y:       vmath.ToFloat(pt.Pos.Y),
			Size:    vmath.ToFloat(pt.Size),
			Opacity: vmath.ToFloat(vmath.Clamp(pt.Life, 0, vmath.Scale)),
			Kind:    pt.Kind,
		})
	}

	return snap
}

func agentView(a component.Agent) AgentView {
	return AgentView{
		X:     vmath.ToFloat(a.Pos.X),
		Y:     vmath.ToFloat(a.Pos.Y),
		Rot:   vmath.ToFloat(a.Rot),
		Scale: vmath.ToFloat(a.Scale),
	}
}
