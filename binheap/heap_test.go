package binheap_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapath/binheap"
)

func TestHeap_EmptyOperations(t *testing.T) {
	h := binheap.New[int, string](binheap.Min)

	_, err := h.ExtractRoot()
	require.ErrorIs(t, err, binheap.ErrEmptyHeap)

	_, err = h.PeekRoot()
	require.ErrorIs(t, err, binheap.ErrEmptyHeap)

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Levels())
	assert.Equal(t, 0, h.Height())
	assert.True(t, h.Valid())
}

func TestHeap_SingleElement(t *testing.T) {
	h := binheap.New[int, string](binheap.Max)
	hd := h.Insert(7, "seven")
	require.True(t, h.Valid())
	require.Equal(t, 1, h.Levels())
	require.Equal(t, 0, h.Height())

	top, err := h.PeekRoot()
	require.NoError(t, err)
	assert.Equal(t, binheap.Element[int, string]{Key: 7, Value: "seven"}, top)

	got, err := h.ExtractRoot()
	require.NoError(t, err)
	assert.Equal(t, "seven", got.Value)
	assert.False(t, h.Contains(hd))
	assert.Equal(t, 0, h.Len())
}

func TestHeap_MinOrder(t *testing.T) {
	h := binheap.New[int, int](binheap.Min)
	for _, k := range []int{5, 3, 8, 1, 9, 2, 7} {
		h.Insert(k, k*10)
		require.True(t, h.Valid(), "invariant after insert %d", k)
	}

	var keys []int
	for h.Len() > 0 {
		e, err := h.ExtractRoot()
		require.NoError(t, err)
		require.True(t, h.Valid())
		require.Equal(t, e.Key*10, e.Value)
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, keys)
}

func TestHeap_MaxOrder(t *testing.T) {
	h := binheap.New[float64, struct{}](binheap.Max)
	for _, k := range []float64{0.5, -1, 3.25, 3.25, 0} {
		h.Insert(k, struct{}{})
	}

	var keys []float64
	for h.Len() > 0 {
		e, err := h.ExtractRoot()
		require.NoError(t, err)
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []float64{3.25, 3.25, 0.5, 0, -1}, keys)
}

func TestHeap_TiesExtractInInsertionOrder(t *testing.T) {
	for _, mode := range []binheap.Mode{binheap.Min, binheap.Max} {
		h := binheap.New[int, string](mode)
		h.Insert(1, "a")
		h.Insert(1, "b")
		h.Insert(1, "c")
		h.Insert(1, "d")

		var got []string
		for h.Len() > 0 {
			e, _ := h.ExtractRoot()
			got = append(got, e.Value)
		}
		assert.Equal(t, []string{"a", "b", "c", "d"}, got, "mode %s", mode)
	}
}

func TestHeap_UpdateKey(t *testing.T) {
	h := binheap.New[int, string](binheap.Min)
	ha := h.Insert(10, "a")
	hb := h.Insert(20, "b")
	hc := h.Insert(30, "c")

	// decrease c below everything
	require.NoError(t, h.UpdateKey(hc, 1))
	require.True(t, h.Valid())
	top, _ := h.PeekRoot()
	assert.Equal(t, "c", top.Value)

	// increase a above everything
	require.NoError(t, h.UpdateKey(ha, 50))
	require.True(t, h.Valid())

	got, err := h.Get(hb)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Key)

	var order []string
	for h.Len() > 0 {
		e, _ := h.ExtractRoot()
		order = append(order, e.Value)
	}
	assert.Equal(t, []string{"c", "b", "a"}, order)

	err = h.UpdateKey(ha, 0)
	require.True(t, errors.Is(err, binheap.ErrUnknownHandle))
}

func TestHeap_Remove(t *testing.T) {
	h := binheap.New[int, int](binheap.Max)
	handles := make([]binheap.Handle, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, h.Insert(i, i))
	}

	e, err := h.Remove(handles[4])
	require.NoError(t, err)
	assert.Equal(t, 4, e.Key)
	assert.True(t, h.Valid())
	assert.Equal(t, 9, h.Len())

	_, err = h.Remove(handles[4])
	require.ErrorIs(t, err, binheap.ErrUnknownHandle)

	// removing the last array slot must not disturb anything
	elems := h.Elements()
	last := elems[len(elems)-1].Key
	_, err = h.Remove(handles[last])
	require.NoError(t, err)
	assert.True(t, h.Valid())
}

func TestHeap_BuildFromSequence(t *testing.T) {
	in := []binheap.Element[int, string]{
		{Key: 4, Value: "d"}, {Key: 1, Value: "a"}, {Key: 3, Value: "c"},
		{Key: 2, Value: "b"}, {Key: 16, Value: "p"}, {Key: 9, Value: "i"},
		{Key: 10, Value: "j"}, {Key: 14, Value: "n"}, {Key: 8, Value: "h"}, {Key: 7, Value: "g"},
	}
	h, handles := binheap.Build(binheap.Max, in)
	require.Len(t, handles, len(in))
	require.True(t, h.Valid())
	require.Equal(t, 4, h.Levels())
	require.Equal(t, 4, h.Height())

	for i, hd := range handles {
		e, err := h.Get(hd)
		require.NoError(t, err)
		assert.Equal(t, in[i], e, "handle %d maps back to its input element", i)
	}

	top, _ := h.PeekRoot()
	assert.Equal(t, 16, top.Key)
	// input untouched
	assert.Equal(t, 4, in[0].Key)
}

func TestHeap_CustomComparison(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	byAge := func(a, b person) bool { return a.age < b.age }
	h := binheap.NewFunc[person, struct{}](binheap.Min, byAge)
	h.Insert(person{"Ana", 40}, struct{}{})
	h.Insert(person{"Luis", 19}, struct{}{})
	h.Insert(person{"Eva", 33}, struct{}{})

	e, err := h.ExtractRoot()
	require.NoError(t, err)
	assert.Equal(t, "Luis", e.Key.name)
}

func TestHeap_BadConfigurationPanics(t *testing.T) {
	assert.Panics(t, func() { binheap.New[int, int](binheap.Mode(7)) })
	assert.Panics(t, func() { binheap.NewFunc[int, int](binheap.Min, nil) })
}

func TestHeap_String(t *testing.T) {
	h := binheap.New[int, int](binheap.Min)
	h.Insert(3, 0)
	h.Insert(1, 0)
	h.Insert(2, 0)
	assert.Equal(t, "min[1 3 2]", h.String())
}

func TestHeap_RandomizedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, mode := range []binheap.Mode{binheap.Min, binheap.Max} {
		h := binheap.New[int, int](mode)
		live := make([]binheap.Handle, 0)
		for step := 0; step < 2000; step++ {
			switch op := rng.Intn(4); {
			case op == 0 || len(live) == 0:
				live = append(live, h.Insert(rng.Intn(100), step))
			case op == 1:
				_, err := h.ExtractRoot()
				require.NoError(t, err)
				kept := live[:0]
				for _, hd := range live {
					if h.Contains(hd) {
						kept = append(kept, hd)
					}
				}
				live = kept
			case op == 2:
				i := rng.Intn(len(live))
				if h.Contains(live[i]) {
					require.NoError(t, h.UpdateKey(live[i], rng.Intn(100)))
				}
			default:
				i := rng.Intn(len(live))
				if h.Contains(live[i]) {
					_, err := h.Remove(live[i])
					require.NoError(t, err)
				}
				live = append(live[:i], live[i+1:]...)
			}
			require.True(t, h.Valid(), "mode %s step %d", mode, step)
		}
	}
}

func TestHeap_LevelsAndHeight(t *testing.T) {
	cases := []struct {
		n, levels, height int
	}{
		{0, 0, 0}, {1, 1, 0}, {2, 2, 1}, {3, 2, 2}, {4, 3, 2}, {5, 3, 3}, {8, 4, 3}, {9, 4, 4},
	}
	for _, tc := range cases {
		h := binheap.New[int, struct{}](binheap.Min)
		for i := 0; i < tc.n; i++ {
			h.Insert(i, struct{}{})
		}
		assert.Equal(t, tc.levels, h.Levels(), "levels for n=%d", tc.n)
		assert.Equal(t, tc.height, h.Height(), "height for n=%d", tc.n)
	}
}
