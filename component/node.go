// Package component defines the plain data types the simulation systems
// operate on. No behavior lives here; systems own all mutation.
package component

import "github.com/fyreone/firegrid/vmath"

// NodeKind selects the device type a node represents.
type NodeKind uint8

const (
	NodeSprinkler NodeKind = iota
	NodeAlarm
)

func (k NodeKind) String() string {
	switch k {
	case NodeSprinkler:
		return "sprinkler"
	case NodeAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// NodeState is the activation state of a sprinkler node. Alarms never
// leave NodeIdle.
type NodeState uint8

const (
	NodeIdle NodeState = iota
	NodeActive
)

// Node is a fixed-position device in the proximity graph. Built once per
// layout, mutated every tick (phase advance, activation countdown), and
// replaced wholesale on the next rebuild.
type Node struct {
	ID   uint64
	Pos  vmath.Vec
	Kind NodeKind

	// Size is the per-kind visual radius in Q32.32 pixels
	Size int64

	// Phase is the pulse oscillator angle (Scale = full turn), seeded
	// randomly at build so node pulses stay out of sync
	Phase int64

	State NodeState

	// ActiveTimer counts remaining Active ticks; meaningful only while
	// State == NodeActive
	ActiveTimer int
}
