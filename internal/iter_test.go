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
	for n, val := range IterSeq2Concat(a, b) {
		got = append(got, val)
		assert.Less(n, 2)
	}
	assert.Equal([]string{"a", "b", "c"}, got)

	// Early stop.
	got = got[:0]
	for _, val := range IterSeq2Concat(a, b) {
		got = append(got, val)
		break
	}
	assert.Equal([]string{"a"}, got)

	assert.Equal(map[string]int{"x": 1, "y": 2},
		maps.Collect(IterSeq2Concat(maps.All(map[string]int{"x": 1}), maps.All(map[string]int{"y": 2}))))

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
