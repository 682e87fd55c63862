package engine

import (
	"fmt"

	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// Engine sequences one simulation: it drains host inputs, runs the
// registered systems in priority order, and produces a snapshot, all
// within a single Step call. The engine holds no simulation rules
// itself.
//
// Step is single-threaded; the input queue is the only surface safe for
// concurrent use.
type Engine struct {
	params parameter.Params
	scene  *Scene
	inputs *InputQueue

	systems []System

	// Precomputed Q32.32 reciprocal of MaxEdgeDist for edge opacity
	invMaxEdge int64
}

// New validates the tuning and builds an engine for the given layout in
// px. Systems are registered separately with AddSystem.
func New(p parameter.Params, width, height float64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("engine params: %w", err)
	}
	return &Engine{
		params:     p,
		scene:      NewScene(width, height),
		inputs:     NewInputQueue(),
		invMaxEdge: vmath.Div(vmath.Scale, vmath.FromFloat(p.Graph.MaxEdgeDist)),
	}, nil
}

// Params returns the engine's tuning.
func (e *Engine) Params() parameter.Params {
	return e.params
}

// Scene exposes the mutable state for systems and tests. Hosts must not
// hold or mutate it; they consume snapshots.
func (e *Engine) Scene() *Scene {
	return e.scene
}

// PushPointer queues a cursor sample. Safe from any goroutine.
func (e *Engine) PushPointer(x, y float64, phase PointerPhase) {
	e.inputs.Push(Input{Kind: InputPointer, X: x, Y: y, Phase: phase})
}

// PushLayout queues a resize. Safe from any goroutine.
func (e *Engine) PushLayout(width, height float64) {
	e.inputs.Push(Input{Kind: InputLayout, X: width, Y: height})
}

// PushTheme queues a palette flip. Safe from any goroutine.
func (e *Engine) PushTheme(dark bool) {
	e.inputs.Push(Input{Kind: InputTheme, Dark: dark})
}

// PushTrigger queues an activation request for a node index. Safe from
// any goroutine.
func (e *Engine) PushTrigger(node int) {
	e.inputs.Push(Input{Kind: InputTrigger, Node: node})
}

// Step advances the simulation exactly one tick: pending inputs first,
// then every system in priority order, then the snapshot. Not safe for
// concurrent use; a started Runner owns stepping.
func (e *Engine) Step() *Snapshot {
	for _, in := range e.inputs.Drain() {
		e.apply(in)
	}

	e.scene.Tick++
	for _, s := range e.systems {
		s.Update(e.scene)
	}

	return e.snapshot()
}

// apply folds one host message into the scene before systems run.
func (e *Engine) apply(in Input) {
	switch in.Kind {
	case InputPointer:
		p := &e.scene.Pointer
		switch in.Phase {
		case PhaseStart, PhaseMove:
			pos := vmath.Vec{X: vmath.FromFloat(in.X), Y: vmath.FromFloat(in.Y)}
			if !p.Engaged {
				// Fresh gesture: snap the smoothed trail to the sample
				// so the evader doesn't react to a stale glide
				p.Smooth = pos
			}
			p.Raw = pos
			p.Engaged = true
		case PhaseEnd:
			p.Engaged = false
		}

	case InputLayout:
		e.scene.SetLayout(in.X, in.Y)

	case InputTheme:
		e.scene.Dark = in.Dark

	case InputTrigger:
		e.scene.Triggers = append(e.scene.Triggers, in.Node)
	}
}
