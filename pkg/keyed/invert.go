package keyed

import (
	"cmp"
	"fmt"
)

// AsComparableInvert wraps a key and reverses its natural order. Sorting
// ascending by AsComparableInvert sorts the keys descending.
type AsComparableInvert[K cmp.Ordered] struct {
	key K
}

func NewComparableInvert[K cmp.Ordered](key K) AsComparableInvert[K] {
	return AsComparableInvert[K]{key: key}
}

// Invert wraps every key.
func Invert[K cmp.Ordered](keys []K) []AsComparableInvert[K] {
	out := make([]AsComparableInvert[K], len(keys))
	for i, k := range keys {
		out[i] = NewComparableInvert(k)
	}
	return out
}

func (a AsComparableInvert[K]) Key() K {
	return a.key
}

// Compare is cmp.Compare with its arguments swapped.
func (a AsComparableInvert[K]) Compare(b AsComparableInvert[K]) int {
	return cmp.Compare(b.key, a.key)
}

// Less reports whether a's key is greater than b's key.
func (a AsComparableInvert[K]) Less(b AsComparableInvert[K]) bool {
	return cmp.Less(b.key, a.key)
}

func (a AsComparableInvert[K]) Equal(b AsComparableInvert[K]) bool {
	return cmp.Compare(a.key, b.key) == 0
}

func (a AsComparableInvert[K]) String() string {
	return fmt.Sprintf("AsComparableInvert(%v)", a.key)
}
