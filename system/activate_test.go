package system

import (
	"testing"

	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

func deviceScene(nodes ...component.Node) *engine.Scene {
	sc := engine.NewScene(400, 300)
	sc.NeedRebuild = false
	sc.Nodes = nodes
	return sc
}

// A triggered sprinkler runs Active for exactly ActiveTicks updates,
// emitting spray each of them, then returns to Idle.
func TestActivationLifecycle(t *testing.T) {
	p := parameter.Default()
	p.Device.ActivationChance = 0
	p.Device.ActiveTicks = 5
	sys := NewActivationSystem(p, &script{})

	sc := deviceScene(
		component.Node{ID: 1, Kind: component.NodeSprinkler, Pos: vmath.VecFromInt(50, 50)},
		component.Node{ID: 2, Kind: component.NodeAlarm, Pos: vmath.VecFromInt(90, 50)},
	)

	sc.Triggers = append(sc.Triggers, 0)
	for tick := 1; tick <= 5; tick++ {
		sc.Emitters = sc.Emitters[:0]
		sys.Update(sc)

		if len(sc.Emitters) != 1 {
			t.Fatalf("tick %d: expected 1 spray emitter, got %d", tick, len(sc.Emitters))
		}
		e := sc.Emitters[0]
		if e.Kind != component.ParticleSpray {
			t.Errorf("tick %d: emitter kind = %v, want spray", tick, e.Kind)
		}
		if e.Pos != sc.Nodes[0].Pos {
			t.Errorf("tick %d: emitter not anchored at the node", tick)
		}
		if e.Chance != vmath.FromFloat(p.Particle.Spray.SpawnChance) {
			t.Errorf("tick %d: emitter chance not stamped from tuning", tick)
		}

		wantState := component.NodeActive
		if tick == 5 {
			wantState = component.NodeIdle
		}
		if sc.Nodes[0].State != wantState {
			t.Fatalf("tick %d: state = %v, want %v", tick, sc.Nodes[0].State, wantState)
		}
	}

	// Burst over: no more emitters
	sc.Emitters = sc.Emitters[:0]
	sys.Update(sc)
	if len(sc.Emitters) != 0 {
		t.Errorf("expected no emitters after the burst, got %d", len(sc.Emitters))
	}
}

// Re-triggering a running burst never touches the timer.
func TestActivationRetriggerNoop(t *testing.T) {
	p := parameter.Default()
	p.Device.ActivationChance = 0
	p.Device.ActiveTicks = 5
	sys := NewActivationSystem(p, &script{})

	sc := deviceScene(component.Node{ID: 1, Kind: component.NodeSprinkler})

	sc.Triggers = append(sc.Triggers, 0)
	sys.Update(sc) // tick 1

	sc.Triggers = append(sc.Triggers, 0) // re-trigger mid-burst
	sys.Update(sc)                       // tick 2

	for tick := 3; tick <= 5; tick++ {
		sys.Update(sc)
	}
	if sc.Nodes[0].State != component.NodeIdle {
		t.Error("re-trigger extended the burst; timer should have been untouched")
	}
}

// Alarms and bad indices are activation no-ops.
func TestActivationRejectsNonSprinklers(t *testing.T) {
	p := parameter.Default()
	p.Device.ActivationChance = 0
	sys := NewActivationSystem(p, &script{})

	sc := deviceScene(component.Node{ID: 1, Kind: component.NodeAlarm})

	sc.Triggers = append(sc.Triggers, 0, -1, 99)
	sys.Update(sc)

	if sc.Nodes[0].State != component.NodeIdle {
		t.Error("alarm node must never activate")
	}
	if len(sc.Emitters) != 0 {
		t.Errorf("expected no emitters, got %d", len(sc.Emitters))
	}
}

// The ambient roll activates one uniformly chosen idle sprinkler and
// leaves running bursts alone.
func TestActivationAmbientPick(t *testing.T) {
	p := parameter.Default()
	p.Device.ActivationChance = 1 // certain, no draw consumed
	p.Device.ActiveTicks = 5
	sys := NewActivationSystem(p, &script{vals: []uint64{0}}) // idle pick draw

	sc := deviceScene(
		component.Node{ID: 1, Kind: component.NodeAlarm},
		component.Node{ID: 2, Kind: component.NodeSprinkler, State: component.NodeActive, ActiveTimer: 3},
		component.Node{ID: 3, Kind: component.NodeSprinkler},
	)
	sys.Update(sc)

	if sc.Nodes[2].State != component.NodeActive {
		t.Error("idle sprinkler should have been picked for activation")
	}
	if sc.Nodes[2].ActiveTimer != 4 {
		t.Errorf("fresh burst timer = %d after its first tick, want 4", sc.Nodes[2].ActiveTimer)
	}
	if sc.Nodes[1].ActiveTimer != 2 {
		t.Errorf("running burst timer = %d, want 2 (one countdown, no reset)", sc.Nodes[1].ActiveTimer)
	}
	if sc.Nodes[0].State != component.NodeIdle {
		t.Error("alarm must stay idle")
	}
}

// Every node's oscillator advances by the phase rate each tick.
func TestActivationPhaseAdvance(t *testing.T) {
	p := parameter.Default()
	p.Device.ActivationChance = 0
	sys := NewActivationSystem(p, &script{})

	sc := deviceScene(
		component.Node{ID: 1, Kind: component.NodeSprinkler},
		component.Node{ID: 2, Kind: component.NodeAlarm},
	)

	rate := vmath.FromFloat(p.Device.PhaseRate)
	for tick := 1; tick <= 3; tick++ {
		sys.Update(sc)
		for i := range sc.Nodes {
			if got, want := sc.Nodes[i].Phase, rate*int64(tick); got != want {
				t.Fatalf("tick %d node %d: phase = %d, want %d", tick, i, got, want)
			}
		}
	}
}
