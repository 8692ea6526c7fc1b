// Package binheap defines the ordering modes, element shape, handles and
// sentinel errors shared by the array-backed binary heap and heap sort.
package binheap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by heap operations.
var (
	// ErrEmptyHeap indicates ExtractRoot or PeekRoot was called on a heap with no elements.
	ErrEmptyHeap = errors.New("binheap: heap is empty")

	// ErrUnknownHandle indicates the handle was never issued by this heap
	// or its element has already been extracted or removed.
	ErrUnknownHandle = errors.New("binheap: unknown handle")

	// ErrBadMode indicates a Mode other than Min or Max.
	ErrBadMode = errors.New("binheap: invalid ordering mode")

	// ErrNilLess indicates a nil comparison function was passed to NewFunc or BuildFunc.
	ErrNilLess = errors.New("binheap: comparison function is nil")
)

// Mode selects which element sits at the root.
type Mode int

const (
	// Min keeps the smallest key at the root: key(parent) <= key(child).
	Min Mode = iota

	// Max keeps the largest key at the root: key(parent) >= key(child).
	Max
)

// String returns "min" or "max".
func (m Mode) String() string {
	switch m {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Min or Max.
func (m Mode) Valid() bool { return m == Min || m == Max }

// Element is a (key, payload) pair stored in the heap.
type Element[K any, V any] struct {
	Key   K // priority used for ordering
	Value V // payload carried along with the key
}

// Handle identifies one inserted element for the lifetime of that element.
// The zero Handle is never issued.
type Handle uint64

// node is the slot stored in the backing array. seq is the insertion sequence
// used to break ties between equal keys; it doubles as the element's Handle.
type node[K any, V any] struct {
	elem Element[K, V]
	seq  uint64
}

// parent, left and right map array positions to tree positions.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
