package binheap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// SortAscending returns a new slice holding the values of s in ascending
// order. It builds a Min heap from a copy of s and extracts the root until the
// heap is empty. s is not modified.
//
// Stability is not part of the contract: heap sort is not a stable sort in
// general. This implementation happens to keep equal values in input order
// because ties are broken by insertion sequence, but callers should not
// rely on it.
//
// Keys compare as cmp.Less does, so a NaN float key sorts before every
// other value and the result is a total order.
//
// Complexity: O(n log n) time, O(n) extra space.
func SortAscending[K constraints.Ordered](s []K) []K {
	return SortFunc(s, Min, cmp.Less[K])
}

// SortDescending is SortAscending with a Max heap. NaN keys come last.
func SortDescending[K constraints.Ordered](s []K) []K {
	return SortFunc(s, Max, cmp.Less[K])
}

// SortFunc sorts a copy of s with a heap in the given mode: Min yields
// ascending order under less, Max yields descending order.
func SortFunc[K any](s []K, mode Mode, less func(a, b K) bool) []K {
	elems := make([]Element[K, struct{}], len(s))
	for i, k := range s {
		elems[i] = Element[K, struct{}]{Key: k}
	}
	sorted := SortElementsFunc(elems, mode, less)
	out := make([]K, len(sorted))
	for i, e := range sorted {
		out[i] = e.Key
	}

	return out
}

// SortElements sorts keyed payloads by Key with natural ordering.
func SortElements[K constraints.Ordered, V any](elems []Element[K, V], mode Mode) []Element[K, V] {
	return SortElementsFunc(elems, mode, cmp.Less[K])
}

// SortElementsFunc sorts keyed payloads by Key using less. The result is a
// new slice; elems keeps its original order.
func SortElementsFunc[K any, V any](elems []Element[K, V], mode Mode, less func(a, b K) bool) []Element[K, V] {
	h, _ := BuildFunc(mode, elems, less)
	out := make([]Element[K, V], 0, len(elems))
	for h.Len() > 0 {
		e, _ := h.ExtractRoot() // cannot fail while Len() > 0
		out = append(out, e)
	}

	return out
}
