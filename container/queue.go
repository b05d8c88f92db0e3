package container

// Queue is a FIFO container. Items are appended at the tail and consumed
// from head; the consumed prefix is reclaimed once it outgrows the live part.
type Queue[T any] struct {
	data []T
	head int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push enqueues item at the tail.
func (q *Queue[T]) Push(item T) {
	q.data = append(q.data, item)
}

// Pop dequeues the item at the head.
// Returns ErrEmptyContainer if the queue is empty.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, emptyError("Queue.Pop")
	}
	item := q.data[q.head]
	q.data[q.head] = zero
	q.head++
	q.compact()

	return item, nil
}

// Front returns the item at the head without removing it.
// Returns ErrEmptyContainer if the queue is empty.
func (q *Queue[T]) Front() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, emptyError("Queue.Front")
	}

	return q.data[q.head], nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head == len(q.data) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.data) - q.head }

// compact drops the consumed prefix when it is at least half of the backing slice.
func (q *Queue[T]) compact() {
	if q.head == len(q.data) {
		q.data = q.data[:0]
		q.head = 0
		return
	}
	if q.head < 32 || q.head*2 < len(q.data) {
		return
	}
	n := copy(q.data, q.data[q.head:])
	var zero T
	for i := n; i < len(q.data); i++ {
		q.data[i] = zero
	}
	q.data = q.data[:n]
	q.head = 0
}
