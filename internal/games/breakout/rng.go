package breakout

// rng is a deterministic pseudo-random number generator (64-bit LCG).
// Brick colors come from it so equal seeds replay identical sessions.
type rng struct {
	state uint64
}

// newRNG creates a generator from a seed. Zero is remapped so the
// sequence never starts from the all-zero state.
func newRNG(seed int64) *rng {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

// next advances the generator.
func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// intn returns a value in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}
