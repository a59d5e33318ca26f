package internal

import (
	"iter"
	"slices"
)

// Permutations iterates over every ordering of items, using Heap's algorithm.
// Each yielded slice is a fresh copy that the consumer may keep.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := slices.Clone(items)
		count := make([]int, len(work))

		if !yield(slices.Clone(work)) {
			return
		}

		for n := 1; n < len(work); {
			if count[n] < n {
				if n%2 == 0 {
					work[0], work[n] = work[n], work[0]
				} else {
					work[count[n]], work[n] = work[n], work[count[n]]
				}
				if !yield(slices.Clone(work)) {
					return // Stop if the consumer stops
				}
				count[n]++
				n = 1
			} else {
				count[n] = 0
				n++
			}
		}
	}
}
