// Package random provides the bot's single source of randomness.
// Every game service takes a Source so tests can fix outcomes.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// Source generates uniform random values.
type Source interface {
	// Float64 returns a uniform draw from [0, 1).
	Float64() float64
	// IntN returns a uniform draw from [0, n). Panics if n <= 0.
	IntN(n int) int
}

// IntRange returns a uniform draw from [min, max] inclusive.
func IntRange(src Source, min, max int) int {
	return min + src.IntN(max-min+1)
}

// secureSource backs Source with crypto/rand seeded ChaCha8 state.
type secureSource struct {
	rng *mathrand.Rand
}

// NewSecureSource returns a Source seeded from the OS entropy pool.
func NewSecureSource() Source {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// Entropy pool failure is unrecoverable for a gambling bot.
		panic("random: failed to read entropy: " + err.Error())
	}
	return &secureSource{rng: mathrand.New(mathrand.NewChaCha8(seed))}
}

func (s *secureSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *secureSource) IntN(n int) int {
	return s.rng.IntN(n)
}

// NewSeededSource returns a deterministic Source for tests.
func NewSeededSource(seed uint64) Source {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], seed)
	return &secureSource{rng: mathrand.New(mathrand.NewChaCha8(b))}
}
