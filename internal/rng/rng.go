package rng

import (
	"math/rand"
)

// Generator provides a simple random number
// It is the only thing a deck needs to shuffle.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic generator, so the same seed always deals
// the same cards
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
