package container

import (
	"cmp"
	"container/heap"
)

// Entry pairs a priority key with its payload.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// entryHeap is a min-heap of entries ordered by Key ascending.
type entryHeap[K cmp.Ordered, V any] []Entry[K, V]

// Len returns the number of entries in the heap.
func (h entryHeap[K, V]) Len() int { return len(h) }

// Less orders by key; equal keys keep whatever order the heap produces.
func (h entryHeap[K, V]) Less(i, j int) bool { return h[i].Key < h[j].Key }

// Swap swaps two entries.
func (h entryHeap[K, V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entryHeap[K, V]) Push(x any) { *h = append(*h, x.(Entry[K, V])) }

// Pop removes the last entry; called by heap.Pop only.
func (h *entryHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = Entry[K, V]{}
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-priority queue over an array-backed binary heap.
// Duplicate keys are allowed.
type PriorityQueue[K cmp.Ordered, V any] struct {
	h entryHeap[K, V]
}

// NewPriorityQueue returns an empty priority queue.
func NewPriorityQueue[K cmp.Ordered, V any]() *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{}
}

// Insert adds item with priority key. O(log n).
func (pq *PriorityQueue[K, V]) Insert(key K, item V) {
	heap.Push(&pq.h, Entry[K, V]{Key: key, Value: item})
}

// RemoveMin removes and returns the entry with the smallest key. O(log n).
// Returns ErrEmptyContainer if the queue is empty.
func (pq *PriorityQueue[K, V]) RemoveMin() (Entry[K, V], error) {
	if len(pq.h) == 0 {
		return Entry[K, V]{}, emptyError("PriorityQueue.RemoveMin")
	}

	return heap.Pop(&pq.h).(Entry[K, V]), nil
}

// Min returns the entry with the smallest key without removing it.
// Returns ErrEmptyContainer if the queue is empty.
func (pq *PriorityQueue[K, V]) Min() (Entry[K, V], error) {
	if len(pq.h) == 0 {
		return Entry[K, V]{}, emptyError("PriorityQueue.Min")
	}

	return pq.h[0], nil
}

// IsEmpty reports whether the queue holds no entries.
func (pq *PriorityQueue[K, V]) IsEmpty() bool { return len(pq.h) == 0 }

// Len returns the number of entries.
func (pq *PriorityQueue[K, V]) Len() int { return len(pq.h) }
