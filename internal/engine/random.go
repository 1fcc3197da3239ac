package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Linear congruential generator parameters. The small modulus keeps the
// full sequence exactly representable as float64, so two instances built
// from the same seed produce byte-identical output on every platform.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom is a deterministic pseudo-random generator. Every
// consumer constructs its own instance; there is no shared RNG state
// anywhere in the engine.
type SeededRandom struct {
	state int64
}

// NewSeededRandom builds a generator from an integer seed. Negative
// seeds are normalized into the generator's state space.
func NewSeededRandom(seed int64) *SeededRandom {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &SeededRandom{state: s}
}

// Next returns the next float in [0, 1), advancing the internal state.
func (r *SeededRandom) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// NextRange returns a float in [min, max).
func (r *SeededRandom) NextRange(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// NewBattleSeed generates a non-deterministic seed using crypto/rand.
// Used when the caller does not supply one; callers that need
// reproducible battles pass their own seed instead.
func NewBattleSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
