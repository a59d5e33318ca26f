package internal

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]bool{}
	for perm := range Permutations([]int{1, 2, 3, 4}) {
		assert.Len(perm, 4)
		sorted := slices.Sorted(slices.Values(perm))
		assert.Equal([]int{1, 2, 3, 4}, sorted)
		seen[fmt.Sprint(perm)] = true
	}
	assert.Len(seen, 24)

	assert.Equal([][]int{{}}, slices.Collect(Permutations([]int{})))
	assert.Equal([][]string{{"a"}}, slices.Collect(Permutations([]string{"a"})))
}

func TestPermutations_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	items := []int{5, 6, 7}
	var count int
	for perm := range Permutations(items) {
		perm[0] = -1
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
	assert.Equal([]int{5, 6, 7}, items)
}
