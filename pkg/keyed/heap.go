package keyed

import "container/heap"

// Heap is a min-heap of adapters. Use AsComparableInvert keys, or an
// AsComparable over inverted keys, for a max-heap.
type Heap[T Comparer[T]] struct {
	s heapSlice[T]
}

// NewHeap returns a heap holding items.
func NewHeap[T Comparer[T]](items ...T) *Heap[T] {
	h := &Heap[T]{s: append(heapSlice[T](nil), items...)}
	heap.Init(&h.s)
	return h
}

func (h *Heap[T]) Len() int {
	return len(h.s)
}

func (h *Heap[T]) Push(v T) {
	heap.Push(&h.s, v)
}

// Pop removes and returns the smallest element. ok is false on an empty heap.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if len(h.s) == 0 {
		return v, false
	}
	return heap.Pop(&h.s).(T), true
}

// Peek returns the smallest element without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.s) == 0 {
		return v, false
	}
	return h.s[0], true
}

type heapSlice[T Comparer[T]] []T

func (s heapSlice[T]) Len() int           { return len(s) }
func (s heapSlice[T]) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }
func (s heapSlice[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *heapSlice[T]) Push(x any) {
	*s = append(*s, x.(T))
}

func (s *heapSlice[T]) Pop() any {
	old := *s
	n := len(old)
	v := old[n-1]
	var zero T
	old[n-1] = zero
	*s = old[:n-1]
	return v
}
