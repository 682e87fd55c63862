package parameter

import "time"

// Engine timing
const (
	// DefaultTickInterval drives the runner at ~60 ticks per second.
	// The simulation is rate-agnostic; this only sets the default pace.
	DefaultTickInterval = 16 * time.Millisecond
)

// Input ring buffer
const (
	// InputQueueSize is the fixed capacity of the input ring. Power of
	// two so masking replaces modulo.
	InputQueueSize = 256

	// InputQueueMask is InputQueueSize - 1
	InputQueueMask = 255
)
