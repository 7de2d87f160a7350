package keyed

import "github.com/ib-77/commons/pkg/optional"

// Set is a membership set of AsHashable adapters, deduplicated by key. The
// zero value is an empty Set ready to use.
type Set[K comparable, Item any] struct {
	m *Map[K, Item, struct{}]
}

func NewSet[K comparable, Item any](opts ...Option) *Set[K, Item] {
	return &Set[K, Item]{m: NewMap[K, Item, struct{}](opts...)}
}

func (s *Set[K, Item]) inner() *Map[K, Item, struct{}] {
	if s.m == nil {
		s.m = &Map[K, Item, struct{}]{}
	}
	return s.m
}

// SetOf builds a set from items keyed by toKey. Later items replace earlier
// ones with the same key.
func SetOf[K comparable, Item any](toKey func(Item) K, items ...Item) *Set[K, Item] {
	s := NewSet[K, Item](WithCapacity(len(items)))
	build := HashableBuilder(toKey)
	for _, item := range items {
		s.Add(build(item))
	}
	return s
}

// Add inserts a and reports whether its key was new. An existing member
// with the same key is replaced by a.
func (s *Set[K, Item]) Add(a AsHashable[K, Item]) bool {
	return !s.inner().Set(a, struct{}{})
}

func (s *Set[K, Item]) Contains(a AsHashable[K, Item]) bool {
	return s.inner().Contains(a)
}

// Find returns the member equal to a.
func (s *Set[K, Item]) Find(a AsHashable[K, Item]) optional.Value[AsHashable[K, Item]] {
	found, ok := s.inner().Lookup(a)
	if !ok {
		return optional.None[AsHashable[K, Item]]()
	}
	return optional.Some(found)
}

func (s *Set[K, Item]) Remove(a AsHashable[K, Item]) bool {
	return s.inner().Delete(a)
}

func (s *Set[K, Item]) Len() int {
	return s.inner().Len()
}

// Items returns the members' items in unspecified order.
func (s *Set[K, Item]) Items() []Item {
	out := make([]Item, 0, s.inner().Len())
	for a := range s.inner().All() {
		out = append(out, a.item)
	}
	return out
}
