package session

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a uniformly random permutation of items.
// The input slice is not modified.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, rand.IntN)
}

// ShuffleWith is Shuffle with an explicit source: intn(n) must return a
// value in [0, n).
func ShuffleWith[T any](items []T, intn func(n int) int) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
