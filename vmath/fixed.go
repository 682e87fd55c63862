// Package vmath provides Q32.32 fixed-point scalar and vector math for the
// simulation core. All engine state lives in this representation so that a
// given seed and input sequence replays identically on every platform; floats
// appear only at the snapshot boundary and in LUT construction.
package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 layout: high 32 bits integer part, low 32 bits fraction.
const (
	Shift = 32
	Scale = int64(1) << Shift // 1.0
	Half  = Scale >> 1        // 0.5
	// ScaleF mirrors Scale for float conversion without repeated casts
	ScaleF = float64(Scale)
)

// Angles use the full Q32.32 unit range: Scale = one full turn (2π radians).
// A uniform draw in [0, Scale) is therefore a uniform random heading.
const (
	HalfTurn    = Scale >> 1
	QuarterTurn = Scale >> 2
)

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// Mul multiplies two Q32.32 values through a 128-bit intermediate.
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(Abs(a)), uint64(Abs(b))
	hi, lo := bits.Mul64(ua, ub)
	r := int64(hi<<32 | lo>>32)
	if neg {
		return -r
	}
	return r
}

// Div divides two Q32.32 values, saturating instead of overflowing.
// Division by zero returns 0; callers in the simulation skip zero-distance
// force terms before ever reaching this, so 0 is a safety net, not a contract.
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(Abs(a)), uint64(Abs(b))
	hi, lo := ua>>32, ua<<32
	if hi >= ub {
		// Quotient would not fit in 64 bits
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns the absolute value.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates from a toward b by fraction t (Q32.32, Scale = 1).
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}

// sine lookup, quarter-degree-ish resolution
const (
	lutSize = 1024
	lutMask = lutSize - 1
)

var sinLUT [lutSize]int64

func init() {
	for i := 0; i < lutSize; i++ {
		sinLUT[i] = int64(math.Sin(2*math.Pi*float64(i)/lutSize) * ScaleF)
	}
}

// Sin returns the sine of an angle where [0, Scale) spans one full turn.
func Sin(angle int64) int64 {
	return sinLUT[(angle>>(Shift-10))&lutMask]
}

// Cos is Sin shifted by a quarter turn.
func Cos(angle int64) int64 {
	return sinLUT[((angle>>(Shift-10))+lutSize/4)&lutMask]
}
