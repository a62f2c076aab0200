package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysAndEntries(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}

	assert.Equal(t, []string{"a", "b", "c"}, Keys(m))
	assert.Equal(t, []Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, Entries(m))

	assert.Empty(t, Keys(map[int]bool{}))
}

func TestPick(t *testing.T) {
	var nilMap map[string]any
	m := map[string]any{"a": 1, "b": nil, "c": "x", "d": nilMap}

	assert.Equal(t, map[string]any{"a": 1, "b": nil}, Pick(m, []string{"a", "b", "missing"}, false))
	assert.Equal(t, map[string]any{"a": 1, "c": "x"}, Pick(m, []string{"a", "b", "c", "d"}, true))
	assert.Empty(t, Pick(m, nil, false))
}

func TestIsNil(t *testing.T) {
	var p *int
	var s []int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(s))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
}
