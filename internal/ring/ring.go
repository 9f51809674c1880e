// Package ring provides a bounded first-in first-out queue
// backed by a circular buffer, with constant time membership checks.
package ring

import "iter"

type (
	// A Queue is a fixed capacity ring of distinct values.
	// Values leave the queue in the order they were pushed.
	// The membership index is updated together with the ring,
	// so the two can not disagree.
	// The zero value is a queue with no capacity.
	Queue[Value comparable] struct {
		slots       []Value
		index       map[Value]struct{}
		head, count int
	}
)

// New creates a queue that can hold up to capacity values.
func New[Value comparable](capacity int) *Queue[Value] {
	capacity = max(capacity, 0)
	return &Queue[Value]{
		slots: make([]Value, capacity),
		index: make(map[Value]struct{}, capacity),
	}
}

// Push appends value to the tail of the queue.
// It returns false if the queue is full
// or already contains value.
func (q *Queue[Value]) Push(value Value) bool {
	if q.count == len(q.slots) {
		return false
	}
	if _, present := q.index[value]; present {
		return false
	}
	tail := (q.head + q.count) % len(q.slots)
	q.slots[tail] = value
	q.index[value] = struct{}{}
	q.count++
	return true
}

// Pop removes and returns the value at the head of the queue.
// If the queue is empty it returns the zero value and false.
func (q *Queue[Value]) Pop() (Value, bool) {
	var zero Value
	if q.count == 0 {
		return zero, false
	}
	value := q.slots[q.head]
	q.slots[q.head] = zero
	delete(q.index, value)
	q.head = (q.head + 1) % len(q.slots)
	q.count--
	return value, true
}

// Peek returns the value at the head of the queue without removing it.
func (q *Queue[Value]) Peek() (Value, bool) {
	if q.count == 0 {
		var zero Value
		return zero, false
	}
	return q.slots[q.head], true
}

// Contains reports whether value is queued.
func (q *Queue[Value]) Contains(value Value) bool {
	_, present := q.index[value]
	return present
}

// Len returns the number of queued values.
func (q *Queue[_]) Len() int { return q.count }

// Cap returns the maximum number of values the queue can hold.
func (q *Queue[_]) Cap() int { return len(q.slots) }

// All returns an iterator over the queued values, head first.
// The behavior of the iterator is undefined if the queue
// is modified during iteration.
func (q *Queue[Value]) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := range q.count {
			if !yield(q.slots[(q.head+i)%len(q.slots)]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the queue.
func (q *Queue[Value]) Clone() *Queue[Value] {
	clone := New[Value](len(q.slots))
	for value := range q.All() {
		clone.Push(value)
	}
	return clone
}
