package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/pkg/options"
)

func newArea(t *testing.T, capacity int) *arena.Area[int] {
	t.Helper()
	pool, err := arena.NewPool[int](arena.Config{Capacity: capacity, ChunkSegments: 2, ReserveChunks: 1})
	require.NoError(t, err)
	a, err := pool.Allocate()
	require.NoError(t, err)
	return a
}

func TestBigHeaderAccessors(t *testing.T) {
	area := newArea(t, 10)
	h := NewBigHeader[int](area, 2, 6)

	require.Equal(t, 10, h.Capacity())
	require.Equal(t, 4, h.Size())
	require.Equal(t, 2, h.FrontFree())
	require.Equal(t, 4, h.BackFree())
	require.Equal(t, 6, h.Available())

	h.SetFirst(1)
	h.SetLast(7)
	require.Equal(t, 1, h.First())
	require.Equal(t, 7, h.Last())
	require.Equal(t, 6, h.Size())
}

func TestBigHeaderRebind(t *testing.T) {
	area1 := newArea(t, 10)
	h := NewBigHeader[int](area1, 0, 4)

	area2 := newArea(t, 10)
	h.Rebind(area2, 1, 3)

	require.Same(t, area2, h.Area())
	require.Equal(t, 1, h.First())
	require.Equal(t, 3, h.Last())
	require.Equal(t, 2, h.Size())
}

func TestSmallHeaderAccessorsMatchBigHeader(t *testing.T) {
	area := newArea(t, 10)
	h := NewSmallHeader[int](area, 2, 6)

	require.Equal(t, 10, h.Capacity())
	require.Equal(t, 4, h.Size())
	require.Equal(t, 2, h.FrontFree())
	require.Equal(t, 4, h.BackFree())
	require.Equal(t, 6, h.Available())

	h.SetFirst(0)
	h.SetLast(10)
	require.Equal(t, 0, h.First())
	require.Equal(t, 10, h.Last())
	require.Equal(t, 0, h.Available())
}

func TestSmallHeaderRebind(t *testing.T) {
	area1 := newArea(t, 6)
	h := NewSmallHeader[int](area1, 0, 2)

	area2 := newArea(t, 6)
	h.Rebind(area2, 3, 5)

	require.Same(t, area2, h.Area())
	require.Equal(t, 3, h.First())
	require.Equal(t, 5, h.Last())
}

func TestLimitIsHalfCapacityFloored(t *testing.T) {
	require.Equal(t, 2, Limit(4))
	require.Equal(t, 2, Limit(5))
	require.Equal(t, 50, Limit(100))
	require.Equal(t, 0, Limit(0))
}

func TestNewHeaderForLayoutSelectsSmall(t *testing.T) {
	area := newArea(t, 4)
	h := NewHeaderForLayout[int](options.HeaderLayoutSmall, area, 0, 2)
	_, ok := h.(*smallHeader[int])
	require.True(t, ok)
}

func TestNewHeaderForLayoutDefaultsToBig(t *testing.T) {
	area := newArea(t, 4)
	h := NewHeaderForLayout[int](options.HeaderLayoutBig, area, 0, 2)
	_, ok := h.(*bigHeader[int])
	require.True(t, ok)
}
