package component

// Edge links two nodes whose separation is under the proximity threshold.
// A and B index into the scene's node slice with A < B, which makes the
// pair unordered and duplicates impossible by construction. Immutable
// between graph rebuilds.
type Edge struct {
	A, B int

	// Dist is the Euclidean separation in Q32.32 pixels, always below the
	// configured maximum
	Dist int64
}
