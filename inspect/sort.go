package inspect

import (
	"cmp"
	"slices"
)

// SortKeys orders keys for display: all numeric keys first in ascending
// numeric order, then all other keys in ascending lexical order of their
// string form. Keys are never compared cross-type beyond the
// numeric-first rule. The slice is sorted in place and returned.
func SortKeys(keys []Key) []Key {
	slices.SortStableFunc(keys, func(a, b Key) int {
		switch {
		case a.IsNum && b.IsNum:
			return cmp.Compare(a.Num, b.Num)
		case a.IsNum:
			return -1
		case b.IsNum:
			return 1
		default:
			return cmp.Compare(a.Str, b.Str)
		}
	})

	return keys
}
