package vmath

// Source is the random stream every stochastic simulation decision draws
// from. Injecting it keeps spawn placement, signal scheduling, and particle
// velocities reproducible: tests feed a scripted sequence, the demo feeds a
// seeded FastRand.
type Source interface {
	Uint64() uint64
}

// FastRand is a xorshift64 generator. Not cryptographic, allocation-free,
// good enough distribution for visual randomness.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator. A zero seed is remapped: xorshift has a
// fixed point at zero state.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Rand01 draws a uniform Q32.32 value in [0, 1). Because one full turn is
// also Scale, the same draw doubles as a uniform random heading.
func Rand01(s Source) int64 {
	return int64(s.Uint64() & uint64(Scale-1))
}

// RandRange draws uniformly from [lo, hi) in Q32.32.
func RandRange(s Source, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + Mul(hi-lo, Rand01(s))
}

// RandIntn draws a uniform int in [0, n). Returns 0 for n <= 0.
func RandIntn(s Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Uint64() % uint64(n))
}

// Chance returns true with probability p (Q32.32, Scale = certain).
func Chance(s Source, p int64) bool {
	if p <= 0 {
		return false
	}
	if p >= Scale {
		return true
	}
	return Rand01(s) < p
}
