//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSet(t *testing.T) {
	s := ToSet([]string{"a", "b", "a"})
	assert.Len(t, s, 2)
	_, ok := s["a"]
	assert.True(t, ok)
}

func TestUnique(t *testing.T) {
	assert.ElementsMatch(t, []int{1, 2, 3}, Unique([]int{1, 2, 2, 3, 1}))
}

func TestSetSubtraction(t *testing.T) {
	left := SetSubtraction([]string{"a", "b", "c"}, []string{"b"})
	assert.ElementsMatch(t, []string{"a", "c"}, left)

	// subtracting nothing changes nothing
	assert.ElementsMatch(t, []string{"a"}, SetSubtraction([]string{"a"}, nil))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	m := map[string]struct{}{"x": {}, "y": {}}
	assert.ElementsMatch(t, []string{"x", "y"}, StringMapKeysIntoSlice(m))
}

func TestSortedIntKeys(t *testing.T) {
	m := map[int]string{1700: "a", 1500: "b", 1600: "c"}
	assert.Equal(t, []int{1500, 1600, 1700}, SortedIntKeys(m))
	assert.Empty(t, SortedIntKeys(map[int]string{}))
}
