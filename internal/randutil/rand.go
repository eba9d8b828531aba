package randutil

import (
	"time"

	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The helper centralises how the two 64-bit seeds required by
// rand/v2's PCG source are derived, so every call site shuffling a deck
// from the same seed sees the same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns a *rand.Rand seeded from the current time, for
// interactive play where reproducibility is not wanted.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// mix is the splitmix64 finalizer, used to spread low-entropy seeds
// (small integers, timestamps) across the full 64-bit state space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
