//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{}, len(sl))
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks at consecutive repeats: [a, a, b, a] -> [a, b, a]
	set := ToSet(s)

	var result []T
	for k := range set {
		result = append(result, k)
	}

	return result
}

// SetSubtraction - remove from aa every item that appears in bb
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	bb = Unique(bb)

	// DeleteFunc edits in place; the caller keeps its slice
	out := slices.Clone(aa)
	out = slices.DeleteFunc(out, func(c T) bool {
		return slices.Contains(bb, c)
	})

	return out
}

// StringMapKeysIntoSlice - convert map[string]T to []string
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	sl := make([]string, len(mp))
	i := 0
	for k := range mp {
		sl[i] = k
		i += 1
	}
	return sl
}

// SortedIntKeys - the keys of map[int]T, ascending
func SortedIntKeys[T any](mp map[int]T) []int {
	kk := make([]int, 0, len(mp))
	for k := range mp {
		kk = append(kk, k)
	}
	slices.Sort(kk)
	return kk
}
