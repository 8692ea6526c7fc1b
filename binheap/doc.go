// Package binheap implements an array-backed binary heap that can be ordered
// as a min-heap or a max-heap, plus heap sort built on the same structure.
//
// The heap stores Element[K,V] pairs in a slice. Tree positions are pure
// index arithmetic:
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
//
// and the invariant is that every parent comes before both children under the
// configured Mode (key(parent) <= key(child) for Min, >= for Max).
//
// Handles:
//
//	Insert and Build return a Handle per element. The heap keeps a
//	handle → index table that is maintained on every swap, so UpdateKey and
//	Remove locate an element in O(1) and restore the invariant in O(log n).
//	This is the decrease-key strategy used by pqueue and dijkstra.
//
// Ties:
//
//	Equal keys are ordered by insertion sequence. Extraction among equal keys
//	is therefore first-in, first-out, for both modes.
//
// Complexity:
//
//	Insert, ExtractRoot, UpdateKey, Remove  O(log n)
//	PeekRoot, Len, Contains, Get            O(1)
//	Build                                   O(n)
//	SortAscending / SortDescending          O(n log n)
//
// Errors:
//
//	ErrEmptyHeap     - ExtractRoot/PeekRoot on an empty heap.
//	ErrUnknownHandle - handle not issued here, or its element already left.
//	ErrBadMode       - construction with a Mode other than Min/Max (panics).
//	ErrNilLess       - construction with a nil comparison (panics).
package binheap
