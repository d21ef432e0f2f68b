package pkg

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// NewRand returns a generator seeded with seed, or with the clock when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}

// Argmax returns the index of the highest score. Ties go to the lowest index.
func Argmax(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}

	return floats.MaxIdx(scores)
}

// Pick returns a uniformly random element of items.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
