package narrowband

import (
	"math/rand"
	"testing"

	"github.com/jvgomez/eikonal/grid"
	"github.com/stretchr/testify/require"
)

func TestFibHeap_PopOrder(t *testing.T) {
	values := []float64{5, 1, 9, 3, 7, 2, 8, 0, 6, 4}
	h := NewFibHeap(len(values))
	for _, c := range cellsFor(values) {
		h.Push(c)
	}
	require.Equal(t, len(values), h.Size())

	var got []int
	for !h.Empty() {
		got = append(got, h.PopMin())
	}
	want := []int{7, 1, 5, 3, 9, 0, 8, 4, 6, 2}
	require.Equal(t, want, got)
	require.True(t, h.Empty())
}

func TestFibHeap_Increase(t *testing.T) {
	h := NewFibHeap(4)
	cells := cellsFor([]float64{10, 20, 30, 40})
	for _, c := range cells {
		h.Push(c)
	}
	cells[3].Value = 1
	h.Increase(cells[3])
	require.Equal(t, cells[3].Index, h.PopMin())
}

func TestFibHeap_IncreaseWithoutParentChange(t *testing.T) {
	h := NewFibHeap(2)
	cells := cellsFor([]float64{1, 2})
	for _, c := range cells {
		h.Push(c)
	}
	cells[0].Value = 0.5
	h.Increase(cells[0])
	require.Equal(t, cells[0].Index, h.PopMin())
	require.Equal(t, cells[1].Index, h.PopMin())
}

func TestFibHeap_Clear(t *testing.T) {
	h := NewFibHeap(4)
	for _, c := range cellsFor([]float64{1, 2, 3}) {
		h.Push(c)
	}
	h.Clear()
	require.True(t, h.Empty())
	require.Equal(t, 0, h.Size())
	for _, n := range h.lookup {
		require.Nil(t, n)
	}
}

func TestFibHeap_RandomMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 500
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64() * 1000
	}
	h := NewFibHeap(n)
	for _, c := range cellsFor(values) {
		h.Push(c)
	}
	prev := -1.0
	count := 0
	for !h.Empty() {
		idx := h.PopMin()
		require.GreaterOrEqual(t, values[idx], prev)
		prev = values[idx]
		count++
	}
	require.Equal(t, n, count)
}

func TestFibHeap_RandomDecreaseKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n := 100
	values := make([]float64, n)
	for i := range values {
		values[i] = 1000 + rng.Float64()*1000
	}
	cells := cellsFor(values)
	h := NewFibHeap(n)
	for _, c := range cells {
		h.Push(c)
	}
	// Decrease a random subset of keys, recording the expected new minimum.
	for i := 0; i < n/2; i++ {
		idx := rng.Intn(n)
		cells[idx].Value = rng.Float64()
		h.Increase(cells[idx])
	}
	prev := -1.0
	var out []*grid.Cell
	for !h.Empty() {
		idx := h.PopMin()
		out = append(out, cells[idx])
	}
	require.Len(t, out, n)
	for _, c := range out {
		require.GreaterOrEqual(t, c.Value, prev)
		prev = c.Value
	}
}
