package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"a", "b"})
	b := slices.All([]string{"c"})

	var got []string
	for _, val := range IterSeq2Concat(a, b) {
		got = append(got, val)
	}
	assert.Equal([]string{"a", "b", "c"}, got)

	got = nil
	for _, val := range IterSeq2Concat(a, b) {
		got = append(got, val)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal([]string{"a", "b"}, got)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	first := maps.All(map[string]int{"z": 1, "m": 2})
	second := maps.All(map[string]int{"a": 3, "z": 4})

	var keys []string
	var vals []int
	for key, val := range IterSeq2Sorted(IterSeq2Concat(first, second)) {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]string{"a", "m", "z"}, keys)
	assert.Equal([]int{3, 2, 1}, vals)

	keys = nil
	for key := range IterSeq2Sorted(second) {
		keys = append(keys, key)
		break
	}
	assert.Equal([]string{"a"}, keys)
}
