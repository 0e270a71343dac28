// Package xrand provides the pseudorandom number generator used for
// shuffling suites and tests. It implements the xoshiro256** generator by
// David Blackman and Sebastiano Vigna (https://prng.di.unimi.it/), seeded
// through a splitmix64 pass so that any 64-bit seed yields a well-mixed
// initial state. Draws are deterministic for a given seed and the generator
// may be reseeded at any time.
package xrand

import "time"

// Random is a seeded xoshiro256** generator. It is not safe for concurrent
// use.
type Random struct {
	seed  uint64
	state [4]uint64
}

// New returns a generator seeded from the current time.
func New() *Random {
	return NewWithSeed(uint64(time.Now().UnixNano()))
}

// NewWithSeed returns a generator with the given seed.
func NewWithSeed(seed uint64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Seed returns the seed the generator state was last initialized with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// SetSeed reinitializes the generator state from the given seed.
func (r *Random) SetSeed(seed uint64) {
	r.seed = seed
	for i := range r.state {
		seed += 0x9E3779B97F4A7C15
		mixed := seed
		mixed = (mixed ^ (mixed >> 30)) * 0xBF58476D1CE4E5B9
		mixed = (mixed ^ (mixed >> 27)) * 0x94D049BB133111EB
		r.state[i] = mixed ^ (mixed >> 31)
	}
}

func rotateLeft(value uint64, bits int) uint64 {
	return (value << bits) | (value >> (64 - bits))
}

// next advances the state and returns a pseudorandom float64 in [0.0, 1.0).
func (r *Random) next() float64 {
	result := rotateLeft(r.state[1]*5, 7) * 9
	temp := r.state[1] << 17
	r.state[2] ^= r.state[0]
	r.state[3] ^= r.state[1]
	r.state[1] ^= r.state[2]
	r.state[0] ^= r.state[3]
	r.state[2] ^= temp
	r.state[3] = rotateLeft(r.state[3], 45)
	return float64(result>>11) * (1.0 / (1 << 53))
}

// Uint32 returns a pseudorandom number in [min, max], both ends inclusive.
func (r *Random) Uint32(min, max uint32) uint32 {
	return min + uint32(r.next()*float64(max-min+1))
}

// Int32 returns a pseudorandom number in [min, max], both ends inclusive.
func (r *Random) Int32(min, max int32) int32 {
	return min + int32(r.next()*float64(max-min+1))
}

// Uint64 returns a pseudorandom number in [min, max], both ends inclusive.
func (r *Random) Uint64(min, max uint64) uint64 {
	return min + uint64(r.next()*float64(max-min+1))
}

// Int64 returns a pseudorandom number in [min, max], both ends inclusive.
func (r *Random) Int64(min, max int64) int64 {
	return min + int64(r.next()*float64(max-min+1))
}

// Float32 returns a pseudorandom number in [min, max).
func (r *Random) Float32(min, max float32) float32 {
	return min + float32(r.next()*float64(max-min))
}

// Float64 returns a pseudorandom number in [min, max).
func (r *Random) Float64(min, max float64) float64 {
	return min + r.next()*(max-min)
}
