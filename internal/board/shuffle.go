package board

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a uniformly random permutation of a copy of s.
func Shuffle[T any](r *rand.Rand, s []T) []T {
	out := slices.Clone(s)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
