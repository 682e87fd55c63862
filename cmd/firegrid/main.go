package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/render"
	"github.com/fyreone/firegrid/system"
	"github.com/fyreone/firegrid/vmath"
)

var version = "0.1.0-dev"

const (
	// pointerIdleTimeout releases the scare pointer after the mouse
	// stops moving, so the evader settles back down.
	pointerIdleTimeout = 1200 * time.Millisecond

	// clickRadius is how close a click must land to a sprinkler, in px.
	clickRadius = 6.0
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fps    int
		seed   int64
		config string
		light  bool
	)

	cmd := &cobra.Command{
		Use:     "firegrid",
		Version: version,
		Short:   "Ambient fire-suppression grid for your terminal",
		Long: `firegrid renders a decorative simulation: a proximity graph of
sprinkler and alarm devices trading status pulses, spray and fire
particles, and a foam-carrying pursuer chasing a burning evader.

Move the mouse to scare the evader, click near a sprinkler to trigger
a burst, press t to flip the theme, q or Esc to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(fps, seed, config, light)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Simulation ticks per second")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&config, "config", "", "Path to a YAML tuning overlay")
	cmd.Flags().BoolVar(&light, "light", false, "Start with the light palette")

	return cmd
}

func run(fps int, seed int64, config string, light bool) error {
	params := parameter.Default()
	if config != "" {
		p, err := parameter.Load(config)
		if err != nil {
			return err
		}
		params = p
	}

	if fps <= 0 {
		fps = 60
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace prints, or the trace
	// lands in an unreadable raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nfiregrid crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	// Each terminal cell is two stacked pixels, so the simulation frame
	// is twice as tall as the screen reports
	cols, rows := screen.Size()
	eng, err := engine.New(params, float64(cols), float64(2*rows))
	if err != nil {
		return err
	}
	system.Register(eng, vmath.NewFastRand(uint64(seed)))
	eng.PushTheme(!light)

	h := &host{
		screen: screen,
		eng:    eng,
	}

	renderer := render.NewRenderer()
	runner := engine.StartRunner(eng, time.Second/time.Duration(fps), func(snap *engine.Snapshot) {
		h.latest.Store(snap)
		renderer.Draw(screen, snap)
		screen.Show()
	})
	defer runner.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return h.eventLoop(!light)
	})

	// The idle prodder posts interrupts so the event loop can notice a
	// stopped mouse without a poll timeout
	g.Go(func() error {
		ticker := time.NewTicker(pointerIdleTimeout / 4)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	})

	return g.Wait()
}

// host owns the tcell event loop state: gesture tracking for the scare
// pointer and the latest snapshot for click-to-trigger lookups.
type host struct {
	screen tcell.Screen
	eng    *engine.Engine
	latest atomic.Pointer[engine.Snapshot]

	engaged    bool
	buttonDown bool
	lastX      float64
	lastY      float64
	lastMove   time.Time
}

func (h *host) eventLoop(dark bool) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			h.eng.PushLayout(float64(cols), float64(2*rows))
			h.screen.Sync()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Rune() == 'q' || ev.Rune() == 'Q':
				return nil
			case ev.Rune() == 't' || ev.Rune() == 'T':
				dark = !dark
				h.eng.PushTheme(dark)
			}

		case *tcell.EventMouse:
			h.onMouse(ev)

		case *tcell.EventInterrupt:
			if h.engaged && time.Since(h.lastMove) > pointerIdleTimeout {
				h.eng.PushPointer(h.lastX, h.lastY, engine.PhaseEnd)
				h.engaged = false
			}
		}
	}
}

func (h *host) onMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx), float64(2*cy)
	h.lastX, h.lastY, h.lastMove = x, y, time.Now()

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !h.buttonDown {
		if snap := h.latest.Load(); snap != nil {
			if idx := nearestSprinkler(snap, x, y); idx >= 0 {
				h.eng.PushTrigger(idx)
			}
		}
	}
	h.buttonDown = down

	if h.engaged {
		h.eng.PushPointer(x, y, engine.PhaseMove)
	} else {
		h.eng.PushPointer(x, y, engine.PhaseStart)
		h.engaged = true
	}
}

// nearestSprinkler returns the index of the closest sprinkler within
// clickRadius of (x, y), or -1.
func nearestSprinkler(snap *engine.Snapshot, x, y float64) int {
	best := -1
	bestD2 := clickRadius * clickRadius
	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		if n.Kind != component.NodeSprinkler {
			continue
		}
		dx, dy := n.X-x, n.Y-y
		d2 := dx*dx + dy*dy
		if d2 <= bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best
}
