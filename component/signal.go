package component

// SignalKind distinguishes the two pulse flavors traveling the graph.
type SignalKind uint8

const (
	// SignalCheck is the routine heartbeat pulse (majority)
	SignalCheck SignalKind = iota
	// SignalAlert is the urgent pulse (minority weight)
	SignalAlert
)

func (k SignalKind) String() string {
	if k == SignalAlert {
		return "alert"
	}
	return "check"
}

// Signal is a transient pulse traveling one edge. From and To are node
// indices; the scheduler picks the direction at spawn. Retired when
// Progress reaches 1.
type Signal struct {
	ID       uint64
	From, To int

	// Progress in [0, 1) Q32.32 along the From->To segment
	Progress int64

	// Speed is the per-tick progress increment, always > 0
	Speed int64

	Kind SignalKind
}
