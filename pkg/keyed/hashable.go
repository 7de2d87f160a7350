package keyed

import (
	"fmt"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// AsHashable is equatable and hashable by its key, whatever its item.
type AsHashable[K comparable, Item any] struct {
	key  K
	item Item
}

func NewHashable[K comparable, Item any](key K, item Item) AsHashable[K, Item] {
	return AsHashable[K, Item]{key: key, item: item}
}

// HashableBy keys item by toKey(item).
func HashableBy[K comparable, Item any](item Item, toKey func(Item) K) AsHashable[K, Item] {
	return NewHashable(toKey(item), item)
}

// HashableBuilder returns a function keying items by toKey.
func HashableBuilder[K comparable, Item any](toKey func(Item) K) func(Item) AsHashable[K, Item] {
	return func(item Item) AsHashable[K, Item] {
		return HashableBy(item, toKey)
	}
}

func (a AsHashable[K, Item]) Key() K {
	return a.key
}

func (a AsHashable[K, Item]) Item() Item {
	return a.item
}

func (a AsHashable[K, Item]) Equal(b AsHashable[K, Item]) bool {
	return a.key == b.key
}

// Hash returns the hash of the key. It is stable for the life of the
// process only.
func (a AsHashable[K, Item]) Hash() uint64 {
	return maphash.Comparable(seed, a.key)
}

func (a AsHashable[K, Item]) String() string {
	return fmt.Sprintf("AsHashable(%v: %v)", a.key, a.item)
}
