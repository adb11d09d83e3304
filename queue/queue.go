package queue

import (
	"code.hybscloud.com/atomix"

	"pkt.systems/kstdio/spinlock"
)

type node[T any] struct {
	next  *node[T]
	value T
}

// Queue is a bounded FIFO of linked nodes. Elements enter at the tail
// and leave at the head. One spinlock guards both ends; all mutating
// operations are try-acquire only.
type Queue[T any] struct {
	mu       spinlock.Mutex
	head     *node[T]
	tail     *node[T]
	capacity int
	size     atomix.Int64
}

// New creates a queue holding at most capacity elements. Panics if
// capacity < 1.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("queue: capacity must be >= 1")
	}
	return &Queue[T]{capacity: capacity}
}

// Enqueue appends v. Returns ErrFull at capacity and ErrBusy when
// another caller holds the queue. The capacity check runs before the
// lock attempt, so a full queue reports full even under contention.
func (q *Queue[T]) Enqueue(v T) error {
	if q.size.Load() >= int64(q.capacity) {
		return ErrFull
	}
	if !q.mu.TryLock() {
		return ErrBusy
	}
	if q.size.Load() >= int64(q.capacity) {
		q.mu.Unlock()
		return ErrFull
	}
	n := &node[T]{value: v}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.size.Add(1)
	q.mu.Unlock()
	return nil
}

// Dequeue removes and returns the oldest element. Returns ErrEmpty when
// the queue holds nothing and ErrBusy when another caller holds it.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if !q.mu.TryLock() {
		return zero, ErrBusy
	}
	n := q.head
	if n == nil {
		q.mu.Unlock()
		return zero, ErrEmpty
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size.Add(-1)
	q.mu.Unlock()
	return n.value, nil
}

// Peek returns the oldest element without removing it. Returns ErrEmpty
// when the queue holds nothing and ErrBusy when another caller holds it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if !q.mu.TryLock() {
		return zero, ErrBusy
	}
	if q.head == nil {
		q.mu.Unlock()
		return zero, ErrEmpty
	}
	v := q.head.value
	q.mu.Unlock()
	return v, nil
}

// Len returns the element count. The read is atomic and lock-free, safe
// from any context; the value may be stale by the time it is used.
func (q *Queue[T]) Len() int {
	return int(q.size.Load())
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Free returns the remaining space, Cap minus Len.
func (q *Queue[T]) Free() int {
	return q.capacity - q.Len()
}
