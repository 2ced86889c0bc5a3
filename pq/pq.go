// Package pq exposes a stable generic priority queue implemented using a binary heap with a replaceable ordering
// function.
package pq

// PriorityQueue is a min-heap of Ts: 'Dequeue' returns the value ordering before all others under the active
// comparator, and values the comparator reports as equal are dequeued in the order they were enqueued.
//
// NOTE: A 'PriorityQueue' is not safe for concurrent use, callers requiring concurrent mutation must supply their own
// synchronization.
type PriorityQueue[T any] struct {
	inner heap[T]
}

// NewPriorityQueue creates an empty priority queue ordered by the given comparator.
//
// NOTE: Passing a <nil> comparator installs the default ordering, which supports numeric values and strings only and
// fails for any other pairing at the point of comparison.
func NewPriorityQueue[T any](comparator Comparator[T]) *PriorityQueue[T] {
	if comparator == nil {
		comparator = defaultComparator[T]()
	}

	return &PriorityQueue[T]{inner: heap[T]{items: make([]item[T], 0), cmp: comparator}}
}

// NewPriorityQueueFrom creates a priority queue ordered by the given comparator, seeded by enqueueing the initial
// values in the order given.
func NewPriorityQueueFrom[T any](comparator Comparator[T], initial ...T) (*PriorityQueue[T], error) {
	queue := NewPriorityQueue(comparator)

	for _, value := range initial {
		if err := queue.Enqueue(value); err != nil {
			return nil, err
		}
	}

	return queue, nil
}

// Len returns the number of values currently in the queue.
func (p *PriorityQueue[T]) Len() int {
	return len(p.inner.items)
}

// Empty returns a boolean indicating whether the queue currently holds no values.
func (p *PriorityQueue[T]) Empty() bool {
	return p.Len() == 0
}

// Peek returns the minimal value under the active ordering without removing it, and a boolean indicating whether the
// queue was non-empty; peeking performs no comparisons and cannot fail.
func (p *PriorityQueue[T]) Peek() (T, bool) {
	if p.Empty() {
		var zero T
		return zero, false
	}

	return p.inner.items[0].value, true
}

// Enqueue adds the given value to the queue.
//
// NOTE: Values are never validated on the way in; the returned error is non-<nil> only when a comparison performed
// whilst restoring the heap property fails.
func (p *PriorityQueue[T]) Enqueue(value T) error {
	return p.inner.push(value)
}

// Dequeue removes and returns the minimal value under the active ordering, with a boolean indicating whether the
// queue was non-empty; dequeuing from an empty queue is not an error.
func (p *PriorityQueue[T]) Dequeue() (T, bool, error) {
	var zero T

	if p.Empty() {
		return zero, false, nil
	}

	popped, err := p.inner.pop()
	if err != nil {
		return zero, false, err
	}

	return popped.value, true, nil
}

// Clear removes all values from the queue and resets the sequence numbering used for tie-breaking; values enqueued
// after a clear begin a fresh insertion order.
func (p *PriorityQueue[T]) Clear() {
	p.inner.items = make([]item[T], 0)
	p.inner.seq = 0
}

// Slice returns the queued values in internal heap order, which is not fully sorted. The returned slice is an
// independent copy, mutating it cannot corrupt the queue.
func (p *PriorityQueue[T]) Slice() []T {
	values := make([]T, 0, p.Len())

	for _, it := range p.inner.items {
		values = append(values, it.value)
	}

	return values
}

// SortedSlice returns the queued values in ascending order under the active ordering without mutating the queue.
// Ties are broken exactly as draining the queue would break them, since the copy retains the original insertion
// sequence numbers.
func (p *PriorityQueue[T]) SortedSlice() ([]T, error) {
	cloned := p.inner.clone()

	if err := cloned.init(); err != nil {
		return nil, err
	}

	values := make([]T, 0, len(cloned.items))

	for len(cloned.items) > 0 {
		popped, err := cloned.pop()
		if err != nil {
			return nil, err
		}

		values = append(values, popped.value)
	}

	return values, nil
}

// SetComparator replaces the active ordering then re-establishes the heap property over the existing values in linear
// time; the next 'Dequeue' returns the minimal value under the new ordering. Passing a <nil> comparator restores the
// default ordering.
func (p *PriorityQueue[T]) SetComparator(comparator Comparator[T]) error {
	if comparator == nil {
		comparator = defaultComparator[T]()
	}

	p.inner.cmp = comparator

	return p.inner.init()
}
