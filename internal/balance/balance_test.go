package balance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/internal/segment"
)

func newHeader(t *testing.T, capacity, first, last int, fill ...int) segment.Header[int] {
	t.Helper()
	pool, err := arena.NewPool[int](arena.Config{Capacity: capacity, ChunkSegments: 4, ReserveChunks: 1})
	require.NoError(t, err)
	area, err := pool.Allocate()
	require.NoError(t, err)
	for i, v := range fill {
		area.Slice()[first+i] = v
		_ = v
	}
	return segment.NewBigHeader[int](area, first, last)
}

func TestMoveToLeftBackAvailable(t *testing.T) {
	left := newHeader(t, 10, 0, 2, 1, 2)
	curr := newHeader(t, 10, 2, 6, 3, 4, 5, 6)

	MoveToLeftBackAvailable(curr, left, 2)

	require.Equal(t, 4, left.Size())
	require.Equal(t, 2, curr.Size())
	require.Equal(t, []int{1, 2, 3, 4}, left.Data()[left.First():left.Last()])
	require.Equal(t, []int{5, 6}, curr.Data()[curr.First():curr.Last()])
}

func TestMoveToRight(t *testing.T) {
	curr := newHeader(t, 10, 0, 4, 1, 2, 3, 4)
	right := newHeader(t, 10, 8, 10, 9, 10)

	MoveToRight(curr, right, 2)

	require.Equal(t, 2, curr.Size())
	require.Equal(t, 4, right.Size())
	require.Equal(t, []int{1, 2}, curr.Data()[curr.First():curr.Last()])
	require.Equal(t, []int{3, 4, 9, 10}, right.Data()[right.First():right.Last()])
}

func TestMoveToLeftBackAvailableGapReservesStablePosition(t *testing.T) {
	left := newHeader(t, 10, 4, 6, 1, 2)
	curr := newHeader(t, 10, 0, 4, 10, 20, 30, 40)

	gf, gl := MoveToLeftBackAvailableGap(curr, left, 2, 1, 1)

	require.Equal(t, 1, gl-gf)
	require.Equal(t, 6, left.Size()) // 2 existing + n0(2) + gap(1) + n1(1): the gap sits inside [First,Last)
	require.Equal(t, 1, curr.Size())
	require.Equal(t, 40, curr.Data()[curr.First()])
	require.Equal(t, 10, left.Data()[gf-2])
	require.Equal(t, 20, left.Data()[gf-1])
	require.Equal(t, 30, left.Data()[gl])
}

func TestMoveToRightFrontAvailableGapReservesStablePosition(t *testing.T) {
	curr := newHeader(t, 10, 0, 4, 10, 20, 30, 40)
	right := newHeader(t, 10, 6, 8, 100, 200)

	gf, gl := MoveToRightFrontAvailableGap(curr, right, 1, 1, 1)

	require.Equal(t, 1, gl-gf)
	require.Equal(t, 2, curr.Size())
	require.Equal(t, []int{10, 20}, curr.Data()[curr.First():curr.Last()])
	require.Equal(t, 30, right.Data()[gf-1])
	require.Equal(t, 40, right.Data()[gl])
	require.Equal(t, 100, right.Data()[gl+1])
}

func TestMoveToRightEmpty(t *testing.T) {
	curr := newHeader(t, 10, 0, 4, 1, 2, 3, 4)
	right := newHeader(t, 10, 0, 0)

	MoveToRightEmpty(curr, right, 4, 2)

	require.Equal(t, 2, curr.Size())
	require.Equal(t, 2, right.Size())
	require.Equal(t, []int{3, 4}, right.Data()[right.First():right.Last()])
}
