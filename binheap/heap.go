// File: heap.go
// Role: Array-backed binary heap with handle tracking.
//
// Determinism:
//   - Equal keys are ordered by insertion sequence, so extraction order is
//     fully determined by the sequence of calls.
//
// Concurrency:
//   - A Heap is not safe for concurrent use. Callers own it exclusively.
package binheap

import (
	"cmp"
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Heap is a binary heap over Element[K,V] ordered by Mode.
//
// The backing array satisfies, for every index i > 0, that nodes[parent(i)]
// comes before nodes[i] under the configured ordering. pos maps every live
// Handle to its current index so that UpdateKey and Remove run in O(log n).
type Heap[K any, V any] struct {
	mode    Mode
	less    func(a, b K) bool
	nodes   []node[K, V]
	pos     map[Handle]int
	nextSeq uint64
}

// New returns an empty heap ordered by cmp.Less on K, which places NaN
// before every other float.
func New[K constraints.Ordered, V any](mode Mode) *Heap[K, V] {
	return NewFunc[K, V](mode, cmp.Less[K])
}

// NewFunc returns an empty heap ordered by less. less must be a strict weak
// ordering; for Max mode the heap still uses less and inverts its sense.
//
// NewFunc panics with ErrBadMode or ErrNilLess on invalid configuration,
// the same way option constructors reject programmer errors.
func NewFunc[K any, V any](mode Mode, less func(a, b K) bool) *Heap[K, V] {
	if !mode.Valid() {
		panic(fmt.Errorf("%w: %d", ErrBadMode, int(mode)))
	}
	if less == nil {
		panic(ErrNilLess)
	}

	return &Heap[K, V]{
		mode:    mode,
		less:    less,
		nodes:   make([]node[K, V], 0),
		pos:     make(map[Handle]int),
		nextSeq: 1,
	}
}

// Build bulk-loads elems into a new heap using natural ordering.
// See BuildFunc.
func Build[K constraints.Ordered, V any](mode Mode, elems []Element[K, V]) (*Heap[K, V], []Handle) {
	return BuildFunc(mode, elems, cmp.Less[K])
}

// BuildFunc bulk-loads elems into a new heap and restores the invariant by
// sifting down every internal node from the last one (n/2-1) to the root.
// The returned handles are parallel to elems. elems itself is not retained.
//
// Complexity: O(n).
func BuildFunc[K any, V any](mode Mode, elems []Element[K, V], less func(a, b K) bool) (*Heap[K, V], []Handle) {
	h := NewFunc[K, V](mode, less)
	h.nodes = make([]node[K, V], len(elems))
	handles := make([]Handle, len(elems))
	for i, e := range elems {
		seq := h.nextSeq
		h.nextSeq++
		h.nodes[i] = node[K, V]{elem: e, seq: seq}
		h.pos[Handle(seq)] = i
		handles[i] = Handle(seq)
	}
	for i := len(h.nodes)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, handles
}

// Mode returns the ordering mode fixed at construction.
func (h *Heap[K, V]) Mode() Mode { return h.mode }

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int { return len(h.nodes) }

// Levels returns the number of levels of the complete tree (0 when empty).
func (h *Heap[K, V]) Levels() int { return bits.Len(uint(len(h.nodes))) }

// Height returns ceil(log2(n)), or 0 for an empty heap. It differs from
// Levels()-1 whenever n is not a power of two.
func (h *Heap[K, V]) Height() int {
	if len(h.nodes) < 2 {
		return 0
	}
	return bits.Len(uint(len(h.nodes) - 1))
}

// Insert appends an element and sifts it up until its parent no longer
// comes after it. The returned Handle stays valid until the element leaves
// the heap.
//
// Complexity: O(log n).
func (h *Heap[K, V]) Insert(key K, value V) Handle {
	seq := h.nextSeq
	h.nextSeq++
	h.nodes = append(h.nodes, node[K, V]{elem: Element[K, V]{Key: key, Value: value}, seq: seq})
	i := len(h.nodes) - 1
	h.pos[Handle(seq)] = i
	h.siftUp(i)

	return Handle(seq)
}

// PeekRoot returns the root element without removing it.
func (h *Heap[K, V]) PeekRoot() (Element[K, V], error) {
	if len(h.nodes) == 0 {
		var zero Element[K, V]
		return zero, ErrEmptyHeap
	}

	return h.nodes[0].elem, nil
}

// ExtractRoot removes and returns the root. The last element takes its
// place and is sifted down toward the leaves.
//
// Complexity: O(log n).
func (h *Heap[K, V]) ExtractRoot() (Element[K, V], error) {
	if len(h.nodes) == 0 {
		var zero Element[K, V]
		return zero, ErrEmptyHeap
	}

	return h.removeAt(0), nil
}

// Get returns the element behind handle.
func (h *Heap[K, V]) Get(handle Handle) (Element[K, V], error) {
	i, ok := h.pos[handle]
	if !ok {
		var zero Element[K, V]
		return zero, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}

	return h.nodes[i].elem, nil
}

// Contains reports whether handle refers to an element still in the heap.
func (h *Heap[K, V]) Contains(handle Handle) bool {
	_, ok := h.pos[handle]
	return ok
}

// UpdateKey changes the key of the element behind handle in place and sifts
// it up or down, whichever direction restores the invariant. The element keeps
// its insertion sequence, so ties against it resolve as before.
//
// Complexity: O(log n).
func (h *Heap[K, V]) UpdateKey(handle Handle, key K) error {
	i, ok := h.pos[handle]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}
	h.nodes[i].elem.Key = key
	h.fix(i)

	return nil
}

// Remove deletes the element behind handle from anywhere in the heap.
//
// Complexity: O(log n).
func (h *Heap[K, V]) Remove(handle Handle) (Element[K, V], error) {
	i, ok := h.pos[handle]
	if !ok {
		var zero Element[K, V]
		return zero, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}

	return h.removeAt(i), nil
}

// Elements returns a copy of the elements in backing-array order.
// Index 0 is the root; children of i are at 2i+1 and 2i+2.
func (h *Heap[K, V]) Elements() []Element[K, V] {
	out := make([]Element[K, V], len(h.nodes))
	for i := range h.nodes {
		out[i] = h.nodes[i].elem
	}

	return out
}

// Valid reports whether every non-root node is ordered after its parent.
// It is an O(n) check intended for tests and debugging.
func (h *Heap[K, V]) Valid() bool {
	for i := 1; i < len(h.nodes); i++ {
		if h.before(i, parent(i)) {
			return false
		}
	}
	for handle, i := range h.pos {
		if i < 0 || i >= len(h.nodes) || Handle(h.nodes[i].seq) != handle {
			return false
		}
	}

	return len(h.pos) == len(h.nodes)
}

// String renders the keys in backing-array order, e.g. "min[1 3 2]".
func (h *Heap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString(h.mode.String())
	sb.WriteByte('[')
	for i := range h.nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, h.nodes[i].elem.Key)
	}
	sb.WriteByte(']')

	return sb.String()
}

// before reports whether nodes[i] must sit above nodes[j].
func (h *Heap[K, V]) before(i, j int) bool {
	a, b := &h.nodes[i], &h.nodes[j]
	if h.mode == Min {
		if h.less(a.elem.Key, b.elem.Key) {
			return true
		}
		if h.less(b.elem.Key, a.elem.Key) {
			return false
		}
	} else {
		if h.less(b.elem.Key, a.elem.Key) {
			return true
		}
		if h.less(a.elem.Key, b.elem.Key) {
			return false
		}
	}

	// equal keys: earlier insertion wins
	return a.seq < b.seq
}

func (h *Heap[K, V]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[Handle(h.nodes[i].seq)] = i
	h.pos[Handle(h.nodes[j].seq)] = j
}

// siftUp swaps i with its parent while it belongs above the parent.
// It reports whether the node moved.
func (h *Heap[K, V]) siftUp(i int) bool {
	start := i
	for i > 0 {
		p := parent(i)
		if !h.before(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}

	return i != start
}

// siftDown swaps i with its more extreme child until neither child belongs
// above it or i becomes a leaf. It reports whether the node moved.
func (h *Heap[K, V]) siftDown(i int) bool {
	start := i
	n := len(h.nodes)
	for {
		top := i
		l, r := left(i), right(i)
		if l < n && h.before(l, top) {
			top = l
		}
		if r < n && h.before(r, top) {
			top = r
		}
		if top == i {
			break
		}
		h.swap(i, top)
		i = top
	}

	return i != start
}

func (h *Heap[K, V]) fix(i int) {
	if !h.siftDown(i) {
		h.siftUp(i)
	}
}

// removeAt detaches nodes[i], moves the last node into the gap and re-sifts it.
func (h *Heap[K, V]) removeAt(i int) Element[K, V] {
	last := len(h.nodes) - 1
	if i != last {
		h.swap(i, last)
	}
	out := h.nodes[last]
	h.nodes[last] = node[K, V]{}
	h.nodes = h.nodes[:last]
	delete(h.pos, Handle(out.seq))
	if i < len(h.nodes) {
		h.fix(i)
	}

	return out.elem
}
