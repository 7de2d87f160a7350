// Package keyed attaches an equatable, orderable or hashable key to an
// arbitrary item so that collections of otherwise incomparable items can be
// sorted, deduplicated or used as map keys by a derived key.
//
// Adapters:
// - AsEquatable: equality by key
// - AsComparable: equality and order by key
// - AsComparableInvert: a key with its order reversed
// - AsHashable: equality and hash by key
//
// Equality, order and hash are computed from the key only; the item is
// carried through and never inspected. Two adapters with equal keys and
// different items are equal. Adapters are immutable values.
//
// Each adapter is built either from a precomputed key (NewX) or from an item
// and a projection (XBy), in which case the projection runs exactly once.
// XBuilder returns the projection-based constructor as a function, handy
// for mapping over a slice.
//
// Containers built on the adapters (Heap, Map, Set) are mutable and, like Go
// maps, must not be mutated concurrently.
package keyed
