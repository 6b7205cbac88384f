package segindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/pkg/options"
)

func newTestIndex(t *testing.T, capacity int) *Index[int] {
	t.Helper()
	pool, err := arena.NewPool[int](arena.Config{Capacity: capacity, ChunkSegments: 8, ReserveChunks: 1})
	require.NoError(t, err)
	return New(Config[int]{Pool: pool, Layout: options.HeaderLayoutBig})
}

func TestNewIndexStartsEmptyWithDereferenceableSentinel(t *testing.T) {
	idx := newTestIndex(t, 4)
	require.Equal(t, 0, idx.Len())
	require.Equal(t, 0, idx.Size())
	require.Equal(t, 0, idx.At(0).Size())
	require.Same(t, idx.Sentinel(), idx.At(0))
}

func TestInsertHeadersSingle(t *testing.T) {
	idx := newTestIndex(t, 4)
	fresh, err := idx.InsertHeaders(0, 1)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	require.Equal(t, 1, idx.Len())
	require.Equal(t, 0, idx.At(0).Size())
}

// Regression test for a bug where InsertHeaders only grew the backing
// slice by one element regardless of n, corrupting any insertion of more
// than one header at once.
func TestInsertHeadersMultipleGrowsSliceByN(t *testing.T) {
	idx := newTestIndex(t, 4)

	first, err := idx.InsertHeaders(0, 1)
	require.NoError(t, err)
	first[0].SetFirst(0)
	first[0].SetLast(2)
	first[0].Data()[0] = 100
	first[0].Data()[1] = 200

	fresh, err := idx.InsertHeaders(1, 3)
	require.NoError(t, err)
	require.Len(t, fresh, 3)
	require.Equal(t, 4, idx.Len())

	// The pre-existing header at position 0 must be untouched by the
	// shift, and every newly inserted header must be distinct and empty.
	require.Equal(t, 2, idx.At(0).Size())
	require.Equal(t, 100, idx.At(0).Data()[0])
	require.Equal(t, 200, idx.At(0).Data()[1])
	for pos := 1; pos <= 3; pos++ {
		require.Equal(t, 0, idx.At(pos).Size())
	}
	require.NotSame(t, idx.At(1), idx.At(2))
	require.NotSame(t, idx.At(2), idx.At(3))
}

func TestInsertHeadersAtMiddlePreservesOrder(t *testing.T) {
	idx := newTestIndex(t, 4)
	a, err := idx.InsertHeaders(0, 1)
	require.NoError(t, err)
	a[0].SetFirst(0)
	a[0].SetLast(1)
	a[0].Data()[0] = 1

	b, err := idx.InsertHeaders(1, 1)
	require.NoError(t, err)
	b[0].SetFirst(0)
	b[0].SetLast(1)
	b[0].Data()[0] = 3

	mid, err := idx.InsertHeaders(1, 1)
	require.NoError(t, err)
	mid[0].SetFirst(0)
	mid[0].SetLast(1)
	mid[0].Data()[0] = 2

	require.Equal(t, 1, idx.At(0).Data()[0])
	require.Equal(t, 2, idx.At(1).Data()[0])
	require.Equal(t, 3, idx.At(2).Data()[0])
}

func TestInsertHeadersZeroIsNoop(t *testing.T) {
	idx := newTestIndex(t, 4)
	fresh, err := idx.InsertHeaders(0, 0)
	require.NoError(t, err)
	require.Nil(t, fresh)
	require.Equal(t, 0, idx.Len())
}

func TestEraseHeadersRemovesRangeAndFreesAreas(t *testing.T) {
	idx := newTestIndex(t, 4)
	_, err := idx.InsertHeaders(0, 3)
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	idx.EraseHeaders(1, 2)
	require.Equal(t, 2, idx.Len())
}

func TestEraseHeadersNoopWhenFromGreaterOrEqualTo(t *testing.T) {
	idx := newTestIndex(t, 4)
	_, err := idx.InsertHeaders(0, 2)
	require.NoError(t, err)

	idx.EraseHeaders(1, 1)
	require.Equal(t, 2, idx.Len())
	idx.EraseHeaders(2, 1)
	require.Equal(t, 2, idx.Len())
}

func TestAdjustSizeTracksRunningTotal(t *testing.T) {
	idx := newTestIndex(t, 4)
	idx.AdjustSize(5)
	idx.AdjustSize(-2)
	require.Equal(t, 3, idx.Size())
}

func TestCapacityAndLimitDeriveFromPool(t *testing.T) {
	idx := newTestIndex(t, 100)
	require.Equal(t, 100, idx.Capacity())
	require.Equal(t, 50, idx.Limit())
}

func TestValidateCoordinateAcceptsRealSegmentsAndSentinel(t *testing.T) {
	idx := newTestIndex(t, 4)
	_, err := idx.InsertHeaders(0, 2)
	require.NoError(t, err)

	require.NoError(t, idx.ValidateCoordinate(0))
	require.NoError(t, idx.ValidateCoordinate(1))
	require.NoError(t, idx.ValidateCoordinate(2)) // sentinel position
	require.Error(t, idx.ValidateCoordinate(3))
	require.Error(t, idx.ValidateCoordinate(-1))
}
