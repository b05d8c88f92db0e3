// Package container provides the frontier containers used by the maze
// searches: a LIFO Stack, a FIFO Queue and a min-PriorityQueue.
//
// What
//
//   - Stack[T]:            Push, Pop, Top, IsEmpty, Len.
//   - Queue[T]:            Push (tail), Pop (head), Front, IsEmpty, Len.
//   - PriorityQueue[K, V]: Insert(key, item), RemoveMin, Min, IsEmpty, Len.
//
// All three are generic and not safe for concurrent use.
//
// Complexity
//
//   - Stack:         O(1) push/pop.
//   - Queue:         amortised O(1) push/pop.
//   - PriorityQueue: O(log n) Insert and RemoveMin over an array-backed binary heap.
//
// Ties in the PriorityQueue are resolved by heap order. Two entries with an
// equal key come out in an unspecified order; callers must not rely on
// insertion order.
//
// Errors
//
//   - ErrEmptyContainer  returned (wrapped with the method name) by Pop, Top,
//     Front, RemoveMin and Min on an empty container.
package container
