package keyed

import (
	"cmp"
	"fmt"
)

// AsComparable is ordered by its key, whatever its item.
//
// Keys are compared with cmp.Compare, so a NaN key sorts before any other
// float and is equal to another NaN. Equal therefore intentionally differs
// from Go's == on NaN keys, so that it agrees with Compare and sorting.
type AsComparable[K cmp.Ordered, Item any] struct {
	key  K
	item Item
}

func NewComparable[K cmp.Ordered, Item any](key K, item Item) AsComparable[K, Item] {
	return AsComparable[K, Item]{key: key, item: item}
}

// ComparableBy keys item by toKey(item).
func ComparableBy[K cmp.Ordered, Item any](item Item, toKey func(Item) K) AsComparable[K, Item] {
	return NewComparable(toKey(item), item)
}

// ComparableBuilder returns a function keying items by toKey.
//
//	byAge := keyed.ComparableBuilder(func(p Person) int { return p.Age })
//	adapters := []keyed.AsComparable[int, Person]{byAge(zack), byAge(zoey)}
func ComparableBuilder[K cmp.Ordered, Item any](toKey func(Item) K) func(Item) AsComparable[K, Item] {
	return func(item Item) AsComparable[K, Item] {
		return ComparableBy(item, toKey)
	}
}

func (a AsComparable[K, Item]) Key() K {
	return a.key
}

func (a AsComparable[K, Item]) Item() Item {
	return a.item
}

// Compare returns -1, 0 or +1 as a's key is less than, equal to or greater
// than b's key.
func (a AsComparable[K, Item]) Compare(b AsComparable[K, Item]) int {
	return cmp.Compare(a.key, b.key)
}

func (a AsComparable[K, Item]) Less(b AsComparable[K, Item]) bool {
	return cmp.Less(a.key, b.key)
}

func (a AsComparable[K, Item]) Equal(b AsComparable[K, Item]) bool {
	return cmp.Compare(a.key, b.key) == 0
}

func (a AsComparable[K, Item]) String() string {
	return fmt.Sprintf("AsComparable(%v: %v)", a.key, a.item)
}
