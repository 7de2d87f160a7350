package keyed

import "iter"

type mapEntry[K comparable, Item, V any] struct {
	key   AsHashable[K, Item]
	value V
}

// Map is a hash map whose keys are AsHashable adapters. Lookup is by the
// adapter key only, so setting an entry whose key collides with an existing
// one replaces it. The zero value is an empty Map ready to use.
type Map[K comparable, Item, V any] struct {
	entries map[K]mapEntry[K, Item, V]
	options *Options
}

func NewMap[K comparable, Item, V any](opts ...Option) *Map[K, Item, V] {
	options := NewOptions(opts...)
	return &Map[K, Item, V]{
		entries: make(map[K]mapEntry[K, Item, V], options.Capacity),
		options: options,
	}
}

// Set stores value under key, replacing both the stored adapter and its value
// when an equal key is present. It reports whether a previous entry was
// replaced.
func (m *Map[K, Item, V]) Set(key AsHashable[K, Item], value V) (replaced bool) {
	if m.options == nil {
		m.options = NewOptions()
	}
	if m.entries == nil {
		m.entries = make(map[K]mapEntry[K, Item, V], m.options.Capacity)
	}
	prev, replaced := m.entries[key.key]
	if replaced {
		m.options.Logger.Debugf("keyed: replacing %v with %v", prev.key, key)
	}
	m.entries[key.key] = mapEntry[K, Item, V]{key: key, value: value}
	return replaced
}

func (m *Map[K, Item, V]) Get(key AsHashable[K, Item]) (V, bool) {
	e, ok := m.entries[key.key]
	return e.value, ok
}

// Lookup returns the stored adapter equal to key, which carries the item
// that was stored rather than key's item.
func (m *Map[K, Item, V]) Lookup(key AsHashable[K, Item]) (AsHashable[K, Item], bool) {
	e, ok := m.entries[key.key]
	return e.key, ok
}

func (m *Map[K, Item, V]) Contains(key AsHashable[K, Item]) bool {
	_, ok := m.entries[key.key]
	return ok
}

// Delete removes the entry equal to key and reports whether there was one.
func (m *Map[K, Item, V]) Delete(key AsHashable[K, Item]) bool {
	_, ok := m.entries[key.key]
	delete(m.entries, key.key)
	return ok
}

func (m *Map[K, Item, V]) Len() int {
	return len(m.entries)
}

// All iterates over the entries in unspecified order.
func (m *Map[K, Item, V]) All() iter.Seq2[AsHashable[K, Item], V] {
	return func(yield func(AsHashable[K, Item], V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
