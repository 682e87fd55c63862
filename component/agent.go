package component

import "github.com/fyreone/firegrid/vmath"

// Agent is one of the two steered bodies. The evader flees the pointer,
// the pursuer chases the evader; both share this shape and differ only in
// the forces the steering system applies.
type Agent struct {
	Pos vmath.Vec
	Vel vmath.Vec

	// Rot in turn units, Scale = one full revolution. The evader tilts
	// with horizontal velocity, the pursuer accumulates spin with speed.
	Rot int64

	// Scale is a unitless Q32.32 size multiplier around 1.0, driven by
	// the evader's breathing oscillation. The pursuer keeps it at 1.
	Scale int64
}

// Pointer carries the most recent cursor sample and its smoothed trail.
// Smooth eases toward Raw a fixed fraction per tick so the evader reacts
// to where the cursor was heading, not where it jumped.
type Pointer struct {
	Raw    vmath.Vec
	Smooth vmath.Vec

	// Engaged is true from gesture start to gesture end; while false the
	// steering system ignores the pointer entirely.
	Engaged bool
}
