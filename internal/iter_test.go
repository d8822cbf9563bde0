package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	// Early stop.
	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(slices.All([]string{"a", "b"}), slices.All([]string{"c"}))

	var keys []int
	var vals []string
	for k, v := range seq {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, vals)

	assert.Equal(map[string]int{"x": 1}, maps.Collect(IterSeq2Concat(maps.All(map[string]int{"x": 1}))))
}
