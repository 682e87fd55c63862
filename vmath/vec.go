package vmath

import "math"

// Vec is a 2D vector in Q32.32. Value semantics throughout: operations return
// new vectors, never mutate the receiver.
type Vec struct {
	X, Y int64
}

// VecFromInt builds a vector from integer pixel coordinates.
func VecFromInt(x, y int) Vec {
	return Vec{FromInt(x), FromInt(y)}
}

// VecFromFloat builds a vector from float pixel coordinates.
func VecFromFloat(x, y float64) Vec {
	return Vec{FromFloat(x), FromFloat(y)}
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// MulScalar scales both components by the Q32.32 factor k.
func (v Vec) MulScalar(k int64) Vec {
	return Vec{Mul(v.X, k), Mul(v.Y, k)}
}

// Mag returns the exact Euclidean length through a float bridge.
// Coordinates stay in pixel range (thousands), so the conversion loses no
// precision that matters; approximate magnitudes are not worth their error
// at the entity counts this engine runs (tens of nodes, two agents).
func (v Vec) Mag() int64 {
	return FromFloat(math.Hypot(ToFloat(v.X), ToFloat(v.Y)))
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) int64 {
	return v.Sub(o).Mag()
}

// Unit returns the unit vector, zero-safe: a zero vector normalizes to zero.
func (v Vec) Unit() Vec {
	m := v.Mag()
	if m == 0 {
		return Vec{}
	}
	return Vec{Div(v.X, m), Div(v.Y, m)}
}

// Heading builds a unit-ish vector from an angle ([0, Scale) = full turn),
// with Y pointing down to match screen coordinates.
func Heading(angle int64) Vec {
	return Vec{Cos(angle), Sin(angle)}
}

// Floats unpacks the vector to float64 pixel coordinates for snapshots.
func (v Vec) Floats() (x, y float64) {
	return ToFloat(v.X), ToFloat(v.Y)
}
