package keyed

import (
	"cmp"
	"slices"
)

// Comparer is implemented by AsComparable and AsComparableInvert.
type Comparer[T any] interface {
	Compare(T) int
}

func compare[T Comparer[T]](a, b T) int {
	return a.Compare(b)
}

// Sort sorts s in ascending order. The sort is not guaranteed to be stable.
func Sort[T Comparer[T]](s []T) {
	slices.SortFunc(s, compare[T])
}

// SortStable sorts s in ascending order keeping equal elements in their
// original order.
func SortStable[T Comparer[T]](s []T) {
	slices.SortStableFunc(s, compare[T])
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[T Comparer[T]](s []T) bool {
	return slices.IsSortedFunc(s, compare[T])
}

// Min returns the smaller of a and b, or a when they are equal.
func Min[T Comparer[T]](a, b T) T {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b, or a when they are equal.
func Max[T Comparer[T]](a, b T) T {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

// Items returns the items of s in order.
func Items[K cmp.Ordered, Item any](s []AsComparable[K, Item]) []Item {
	out := make([]Item, len(s))
	for i, a := range s {
		out[i] = a.item
	}
	return out
}

// Keys returns the keys of s in order.
func Keys[K cmp.Ordered](s []AsComparableInvert[K]) []K {
	out := make([]K, len(s))
	for i, a := range s {
		out[i] = a.key
	}
	return out
}

// SortBy returns a copy of items sorted ascending by toKey. toKey runs once
// per item and items with equal keys keep their relative order.
func SortBy[Item any, K cmp.Ordered](items []Item, toKey func(Item) K) []Item {
	return sortBy(items, toKey, compare[AsComparable[K, Item]])
}

// SortByDesc is SortBy in descending key order.
func SortByDesc[Item any, K cmp.Ordered](items []Item, toKey func(Item) K) []Item {
	return sortBy(items, toKey, func(a, b AsComparable[K, Item]) int { return b.Compare(a) })
}

func sortBy[Item any, K cmp.Ordered](items []Item, toKey func(Item) K,
	order func(a, b AsComparable[K, Item]) int) []Item {

	build := ComparableBuilder(toKey)
	adapters := make([]AsComparable[K, Item], len(items))
	for i, item := range items {
		adapters[i] = build(item)
	}
	slices.SortStableFunc(adapters, order)
	return Items(adapters)
}
