package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fyreone/firegrid/parameter"
)

// Runner drives an engine on a fixed ticker in its own goroutine and
// hands each tick's snapshot to the sink. A runner owns stepping for its
// engine; hosts must not call Step while one is running.
type Runner struct {
	eng      *Engine
	interval time.Duration
	sink     func(*Snapshot)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	ticks    atomic.Uint64
}

// StartRunner begins ticking eng every interval. A nil sink discards
// snapshots; a non-positive interval falls back to DefaultTickInterval.
func StartRunner(eng *Engine, interval time.Duration, sink func(*Snapshot)) *Runner {
	if interval <= 0 {
		interval = parameter.DefaultTickInterval
	}
	r := &Runner{
		eng:      eng,
		interval: interval,
		sink:     sink,
		stopChan: make(chan struct{}),
	}
	r.running.Store(true)
	r.wg.Add(1)
	go r.loop()
	return r
}

// Stop halts the ticker and waits for the tick goroutine to exit, so no
// engine mutation happens after it returns. Safe to call multiple times
// and from multiple goroutines.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		if r.running.CompareAndSwap(true, false) {
			close(r.stopChan)
			r.wg.Wait()
		}
	})
}

// Running reports whether the tick goroutine is still scheduled.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

func (r *Runner) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return

		case <-ticker.C:
			// Re-check stop before mutating; both channels can be ready
			// in the same select round
			select {
			case <-r.stopChan:
				return
			default:
			}

			snap := r.eng.Step()
			r.ticks.Add(1)

			if r.sink != nil {
				r.sink(snap)
			}
		}
	}
}
