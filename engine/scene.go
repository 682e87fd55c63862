// Package engine owns the simulation scene, the tick pipeline, the
// host-to-core input ring, and the render snapshot. All simulation rules
// live in the system package; the engine only sequences them.
package engine

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/vmath"
)

// Scene is the complete mutable simulation state. Collections are owned
// by their system for the engine's lifetime: the graph system replaces
// Nodes and Edges wholesale, the signal system owns Signals, the
// particle system owns Particles, the steering system owns the two
// agents and reads Pointer without writing it. Hosts only ever see
// copies through Snapshot.
type Scene struct {
	// W, H are layout dimensions in Q32.32 px
	W, H int64

	// Dark selects the palette only; no simulation rule reads it
	Dark bool

	// Tick counts completed pipeline passes, advancing once per Step
	Tick int64

	Nodes     []component.Node
	Edges     []component.Edge
	Signals   []component.Signal
	Particles []component.Particle

	Evader  component.Agent
	Pursuer component.Agent
	Pointer component.Pointer

	// Emitters pending for the particle system. Activation appends spray
	// this tick before particles run; steering appended fire and foam at
	// the end of the previous tick. The particle system consumes and
	// clears the slice.
	Emitters []component.Emitter

	// Triggers holds node indices whose activation was requested by the
	// host since the last tick; the activation system drains it.
	Triggers []int

	// NeedRebuild asks the graph system to rebuild Nodes and Edges at the
	// start of the next tick. Set on layout changes, never per tick.
	NeedRebuild bool

	placed bool

	nextSignalID   uint64
	nextParticleID uint64
}

// NewScene returns a scene sized to the given layout in px, with the
// rebuild flag set so the first tick constructs the graph.
func NewScene(width, height float64) *Scene {
	s := &Scene{}
	s.SetLayout(width, height)
	return s
}

// SetLayout records new dimensions and marks the graph for rebuild.
// Agents are placed around the center on the first usable layout and
// keep their positions on later resizes; boundary reflection pulls them
// back inside a shrunken frame. Negative dimensions clamp to zero.
func (s *Scene) SetLayout(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.W = vmath.FromFloat(width)
	s.H = vmath.FromFloat(height)

	if !s.placed && s.W > 0 && s.H > 0 {
		// Pursuer starts offset so it has a heading on the first tick
		cx, cy := s.W/2, s.H/2
		s.Evader = component.Agent{
			Pos:   vmath.Vec{X: cx, Y: cy},
			Scale: vmath.Scale,
		}
		s.Pursuer = component.Agent{
			Pos:   vmath.Vec{X: cx - vmath.FromInt(60), Y: cy},
			Scale: vmath.Scale,
		}
		s.placed = true
	}

	s.NeedRebuild = true
}

// NextSignalID allocates a fresh signal identity.
func (s *Scene) NextSignalID() uint64 {
	s.nextSignalID++
	return s.nextSignalID
}

// NextParticleID allocates a fresh particle identity.
func (s *Scene) NextParticleID() uint64 {
	s.nextParticleID++
	return s.nextParticleID
}
