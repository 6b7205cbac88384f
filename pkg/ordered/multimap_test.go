package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/pkg/options"
)

func newMap(t *testing.T, capacity int) *Multimap[string, int] {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.Capacity = capacity
	m, err := NewMultimap(MultimapConfig[string, int]{Options: &opts, Less: func(a, b string) bool { return a < b }})
	require.NoError(t, err)
	return m
}

func TestMultimapInsertAndLookup(t *testing.T) {
	m := newMap(t, 4)
	m.Insert("b", 2)
	m.Insert("a", 1)
	m.Insert("c", 3)
	m.Insert("b", 20)

	require.Equal(t, 4, m.Len())
	require.True(t, m.ContainsKey("b"))
	require.Equal(t, 2, m.CountKey("b"))
	require.False(t, m.ContainsKey("z"))

	var keys []string
	m.ForEach(func(p Pair[string, int]) { keys = append(keys, p.Key) })
	require.Equal(t, []string{"a", "b", "b", "c"}, keys)
}

func TestMultimapEraseKey(t *testing.T) {
	m := newMap(t, 4)
	m.Insert("x", 1)
	m.Insert("x", 2)
	m.Insert("y", 3)

	removed := m.EraseKey("x")
	require.Equal(t, 2, removed)
	require.Equal(t, 1, m.Len())
	require.False(t, m.ContainsKey("x"))
}
