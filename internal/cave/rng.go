package cave

// RNG is the deterministic linear-congruential generator that drives the
// random fill pass of the cave decoder. Cave layouts are reproduced
// bit-exactly from a header seed, so the multiplier, increment and modulus
// must never change.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Seed resets the generator state.
func (r *RNG) Seed(v uint32) {
	r.state = v
}

// Next advances the state and returns it.
// state = (1664525*state + 1013904223) mod 2^32.
func (r *RNG) Next() uint32 {
	r.state = 1664525*r.state + 1013904223
	return r.state
}

// NextByte returns the low byte of the next state.
func (r *RNG) NextByte() uint8 {
	return uint8(r.Next() % 256)
}
