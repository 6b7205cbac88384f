package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/pkg/options"
)

func intLess(a, b int) bool { return a < b }

func newSet(t *testing.T, capacity int) *Multiset[int] {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.Capacity = capacity
	set, err := NewMultiset(Config[int]{Options: &opts, Less: intLess})
	require.NoError(t, err)
	return set
}

func collect(s *Multiset[int]) []int {
	var out []int
	s.ForEach(func(v int) { out = append(out, v) })
	return out
}

func TestMultisetInsertMaintainsOrder(t *testing.T) {
	s := newSet(t, 4)
	for _, v := range []int{5, 1, 4, 2, 3, 2, 5} {
		s.Insert(v)
	}
	require.Equal(t, []int{1, 2, 2, 3, 4, 5, 5}, collect(s))
	require.Equal(t, 7, s.Len())
}

func TestMultisetDuplicatesOrderedAfterExisting(t *testing.T) {
	s := newSet(t, 4)
	s.Insert(3)
	s.Insert(3)
	s.Insert(1)
	s.Insert(3)
	require.Equal(t, []int{1, 3, 3, 3}, collect(s))
	require.Equal(t, 3, s.Count(3))
}

func TestMultisetEqualRangeAndContains(t *testing.T) {
	s := newSet(t, 6)
	for _, v := range []int{10, 20, 20, 20, 30} {
		s.Insert(v)
	}
	require.True(t, s.Contains(20))
	require.False(t, s.Contains(25))
	require.Equal(t, 3, s.Count(20))
}

func TestMultisetEraseValue(t *testing.T) {
	s := newSet(t, 4)
	for _, v := range []int{1, 2, 2, 2, 3, 4} {
		s.Insert(v)
	}
	removed := s.EraseValue(2)
	require.Equal(t, 3, removed)
	require.Equal(t, []int{1, 3, 4}, collect(s))
}

func TestMultisetEraseSingleCursor(t *testing.T) {
	s := newSet(t, 4)
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Insert(v)
	}
	lo, _ := s.EqualRange(3)
	s.Erase(lo)
	require.Equal(t, []int{1, 2, 4, 5}, collect(s))
}

func TestMultisetInsertSortedUnguardedBulkLoad(t *testing.T) {
	s := newSet(t, 4)
	values := make([]int, 20)
	for i := range values {
		values[i] = i + 1
	}

	at := s.InsertSortedUnguarded(s.End(), values)
	require.Equal(t, 20, s.Len())
	require.Equal(t, 1, at.Get())

	got := collect(s)
	for i, v := range got {
		require.Equal(t, i+1, v)
	}
}

func TestMultisetInsertSortedUnguardedMoveZeroesSource(t *testing.T) {
	s := newSet(t, 4)
	values := []int{1, 2, 3, 4, 5}

	s.InsertSortedUnguardedMove(s.End(), values)
	require.Equal(t, 5, s.Len())
	require.Equal(t, []int{0, 0, 0, 0, 0}, values)
	require.Equal(t, []int{1, 2, 3, 4, 5}, collect(s))
}

func TestMultisetInsertSortedUnguardedBulkLoadIntoNonEmptySet(t *testing.T) {
	s := newSet(t, 4)
	for _, v := range []int{1, 2, 9, 10} {
		s.Insert(v)
	}

	at := s.InsertSortedUnguarded(s.End(), []int{11, 12, 13})
	require.Equal(t, 7, s.Len())
	require.Equal(t, 11, at.Get())
	require.Equal(t, []int{1, 2, 9, 10, 11, 12, 13}, collect(s))
}

func TestMultisetLargeRandomizedAgainstReference(t *testing.T) {
	s := newSet(t, 8)
	input := []int{42, 7, 19, 3, 88, 56, 1, 99, 23, 60, 7, 3, 45, 71, 12, 8, 33, 90, 2, 66}
	for _, v := range input {
		s.Insert(v)
	}
	got := collect(s)
	require.Equal(t, len(input), len(got))
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1], got[i])
	}
	for _, v := range input {
		require.True(t, s.Contains(v))
	}
}

func TestNewMultisetRejectsNilComparator(t *testing.T) {
	_, err := NewMultiset(Config[int]{})
	require.Error(t, err)
}
