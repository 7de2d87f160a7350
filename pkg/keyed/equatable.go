package keyed

import "fmt"

// AsEquatable is equatable by its key, whatever its item.
type AsEquatable[K comparable, Item any] struct {
	key  K
	item Item
}

func NewEquatable[K comparable, Item any](key K, item Item) AsEquatable[K, Item] {
	return AsEquatable[K, Item]{key: key, item: item}
}

// EquatableBy keys item by toKey(item).
func EquatableBy[K comparable, Item any](item Item, toKey func(Item) K) AsEquatable[K, Item] {
	return NewEquatable(toKey(item), item)
}

// EquatableBuilder returns a function keying items by toKey.
func EquatableBuilder[K comparable, Item any](toKey func(Item) K) func(Item) AsEquatable[K, Item] {
	return func(item Item) AsEquatable[K, Item] {
		return EquatableBy(item, toKey)
	}
}

func (a AsEquatable[K, Item]) Key() K {
	return a.key
}

func (a AsEquatable[K, Item]) Item() Item {
	return a.item
}

// Equal reports whether a and b have equal keys.
func (a AsEquatable[K, Item]) Equal(b AsEquatable[K, Item]) bool {
	return a.key == b.key
}

func (a AsEquatable[K, Item]) String() string {
	return fmt.Sprintf("AsEquatable(%v: %v)", a.key, a.item)
}
