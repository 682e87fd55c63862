package system

import (
	"github.com/fyreone/firegrid/component"
	"github.com/fyreone/firegrid/engine"
	"github.com/fyreone/firegrid/parameter"
	"github.com/fyreone/firegrid/vmath"
)

// GraphSystem places device nodes and links close pairs into the
// proximity graph. The rebuild runs only when the scene asks for one
// (first tick, resize); steady ticks are a no-op.
type GraphSystem struct {
	rng vmath.Source

	densityDivisor float64
	minNodes       int
	padding        int64
	maxDist        int64
	sprinklerSize  int64
	alarmSize      int64

	nextID uint64
}

func NewGraphSystem(p parameter.Params, rng vmath.Source) engine.System {
	return &GraphSystem{
		rng:            rng,
		densityDivisor: p.Graph.DensityDivisor,
		minNodes:       p.Graph.MinNodes,
		padding:        vmath.FromFloat(p.Graph.Padding),
		maxDist:        vmath.FromFloat(p.Graph.MaxEdgeDist),
		sprinklerSize:  vmath.FromFloat(p.Device.SprinklerSize),
		alarmSize:      vmath.FromFloat(p.Device.AlarmSize),
	}
}

func (s *GraphSystem) Priority() int {
	return parameter.PriorityGraph
}

func (s *GraphSystem) Update(sc *engine.Scene) {
	if !sc.NeedRebuild {
		return
	}
	sc.NeedRebuild = false
	s.rebuild(sc)
}

// rebuild replaces the graph wholesale. Signals and pending triggers
// index into the node slice and cannot survive; particles and emitters
// are positional and keep.
func (s *GraphSystem) rebuild(sc *engine.Scene) {
	sc.Signals = sc.Signals[:0]
	sc.Triggers = sc.Triggers[:0]
	sc.Nodes = nil
	sc.Edges = nil

	// A frame too small to hold the padding inset gets no graph at all
	if sc.W <= 2*s.padding || sc.H <= 2*s.padding {
		return
	}

	area := vmath.ToFloat(sc.W) * vmath.ToFloat(sc.H)
	count := int(area / s.densityDivisor)
	if count < s.minNodes {
		count = s.minNodes
	}

	nodes := make([]component.Node, 0, count)
	for i := 0; i < count; i++ {
		kind, size := component.NodeSprinkler, s.sprinklerSize
		if s.rng.Uint64()&1 == 1 {
			kind, size = component.NodeAlarm, s.alarmSize
		}
		s.nextID++
		nodes = append(nodes, component.Node{
			ID: s.nextID,
			Pos: vmath.Vec{
				X: vmath.RandRange(s.rng, s.padding, sc.W-s.padding),
				Y: vmath.RandRange(s.rng, s.padding, sc.H-s.padding),
			},
			Kind: kind,
			Size: size,
			// Random phase so node pulses never sync up
			Phase: vmath.Rand01(s.rng),
		})
	}

	var edges []component.Edge
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			// O(n²) pair scan; node counts stay in the tens
			d := nodes[i].Pos.Dist(nodes[j].Pos)
			if d < s.maxDist {
				edges = append(edges, component.Edge{A: i, B: j, Dist: d})
			}
		}
	}

	sc.Nodes = nodes
	sc.Edges = edges
}
