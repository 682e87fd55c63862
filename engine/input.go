package engine

import (
	"sync/atomic"

	"github.com/fyreone/firegrid/parameter"
)

// InputKind discriminates host-to-core messages.
type InputKind uint8

const (
	// InputPointer carries a cursor sample with a gesture phase
	InputPointer InputKind = iota
	// InputLayout carries new dimensions and forces a graph rebuild
	InputLayout
	// InputTheme flips the palette flag
	InputTheme
	// InputTrigger requests activation of a specific node by index
	InputTrigger
)

// PointerPhase is the gesture stage of a pointer sample.
type PointerPhase uint8

const (
	PhaseStart PointerPhase = iota
	PhaseMove
	PhaseEnd
)

// Input is one host message. X and Y are px for pointer samples and
// dimensions for layout; Node is a node index for triggers; Dark is the
// theme flag.
type Input struct {
	Kind  InputKind
	X, Y  float64
	Phase PointerPhase
	Dark  bool
	Node  int
}

// InputQueue is a lock-free MPSC ring buffer for host messages.
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Drain: single consumer (the ticking goroutine)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest messages overwritten when full.
type InputQueue struct {
	inputs    [parameter.InputQueueSize]Input
	published [parameter.InputQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewInputQueue() *InputQueue {
	q := &InputQueue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds a message using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized.
func (q *InputQueue) Push(in Input) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.InputQueueMask

			q.inputs[idx] = in
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread messages
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.InputQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.InputQueueSize)
			}
			return
		}
	}
}

// Drain returns all pending messages in FIFO order and advances head.
// Single-consumer design. Checks published flags for safety.
func (q *InputQueue) Drain() []Input {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.InputQueueSize {
			maxAvailable = parameter.InputQueueSize
			currentHead = currentTail - parameter.InputQueueSize
		}

		result := make([]Input, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.InputQueueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.inputs[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending message count.
func (q *InputQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.InputQueueSize {
		return parameter.InputQueueSize
	}
	return diff
}
