// Package pqueue provides a min-priority queue keyed by distance, built on
// binheap in Min mode. It is the queue Dijkstra's algorithm needs: insert,
// extract-min, strict decrease-key and membership lookup.
//
// Each item appears at most once. The queue keeps an item → handle table, so
// DecreaseKey re-sifts the existing heap slot in O(log n) instead of pushing a
// duplicate entry.
//
// Errors:
//
//	ErrEmptyQueue       - ExtractMin/PeekMin on an empty queue.
//	ErrDuplicateItem    - Insert of an item that is already queued.
//	ErrNotInQueue       - DecreaseKey of an item that is not queued.
//	ErrInvalidOperation - DecreaseKey whose priority is not strictly smaller.
//	ErrInvalidPriority  - NaN priority.
package pqueue

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/heapath/binheap"
)

// Sentinel errors returned by Queue methods.
var (
	ErrEmptyQueue       = errors.New("pqueue: queue is empty")
	ErrDuplicateItem    = errors.New("pqueue: item already in queue")
	ErrNotInQueue       = errors.New("pqueue: item not in queue")
	ErrInvalidOperation = errors.New("pqueue: new priority is not smaller than current")
	ErrInvalidPriority  = errors.New("pqueue: priority is NaN")
)

// Queue is a min-priority queue of distinct items. Equal priorities are
// served in insertion order. The zero value is not usable; call New.
type Queue[T comparable] struct {
	heap    *binheap.Heap[float64, T]
	handles map[T]binheap.Handle
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		heap:    binheap.New[float64, T](binheap.Min),
		handles: make(map[T]binheap.Handle),
	}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.heap.Len() }

// Contains reports whether item is currently queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.handles[item]
	return ok
}

// Priority returns the tracked priority of a queued item.
func (q *Queue[T]) Priority(item T) (float64, bool) {
	hd, ok := q.handles[item]
	if !ok {
		return 0, false
	}
	e, err := q.heap.Get(hd)
	if err != nil {
		return 0, false
	}

	return e.Key, true
}

// Insert queues item with priority dist.
// Complexity: O(log n).
func (q *Queue[T]) Insert(item T, dist float64) error {
	if math.IsNaN(dist) {
		return fmt.Errorf("%w: item %v", ErrInvalidPriority, item)
	}
	if _, ok := q.handles[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.handles[item] = q.heap.Insert(dist, item)

	return nil
}

// PeekMin returns the item with the smallest priority without removing it.
func (q *Queue[T]) PeekMin() (T, float64, error) {
	e, err := q.heap.PeekRoot()
	if err != nil {
		var zero T
		return zero, 0, ErrEmptyQueue
	}

	return e.Value, e.Key, nil
}

// ExtractMin removes and returns the item with the smallest priority.
// Complexity: O(log n).
func (q *Queue[T]) ExtractMin() (T, float64, error) {
	e, err := q.heap.ExtractRoot()
	if err != nil {
		var zero T
		return zero, 0, ErrEmptyQueue
	}
	delete(q.handles, e.Value)

	return e.Value, e.Key, nil
}

// DecreaseKey lowers the priority of a queued item to dist. dist must be
// strictly smaller than the current priority; increasing or repeating a key
// is rejected with ErrInvalidOperation and leaves the queue unchanged.
// Complexity: O(log n).
func (q *Queue[T]) DecreaseKey(item T, dist float64) error {
	if math.IsNaN(dist) {
		return fmt.Errorf("%w: item %v", ErrInvalidPriority, item)
	}
	hd, ok := q.handles[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotInQueue, item)
	}
	cur, err := q.heap.Get(hd)
	if err != nil {
		return fmt.Errorf("pqueue: lost handle for %v: %w", item, err)
	}
	if !(dist < cur.Key) {
		return fmt.Errorf("%w: item %v current=%g new=%g", ErrInvalidOperation, item, cur.Key, dist)
	}

	return q.heap.UpdateKey(hd, dist)
}
