package segtree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/segtree/pkg/options"
)

func TestNewAppliesFunctionalOptions(t *testing.T) {
	inst, err := New(context.Background(), "segtree-test", options.WithCapacity(16))
	require.NoError(t, err)
	require.Equal(t, 16, inst.options.Capacity)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := New(context.Background(), "segtree-test", options.WithCapacity(0))
	require.Error(t, err)
}

func TestNewMultisetAndMultimapOpenFromInstance(t *testing.T) {
	inst, err := New(context.Background(), "segtree-test", options.WithCapacity(8))
	require.NoError(t, err)

	set, err := NewMultiset(inst, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	set.Insert(3)
	set.Insert(1)
	require.Equal(t, 2, set.Len())

	m, err := NewMultimap[string, int](inst, func(a, b string) bool { return a < b })
	require.NoError(t, err)
	m.Insert("a", 1)
	require.Equal(t, 1, m.Len())
}

func TestInstanceCloseIsIdempotentErrorAfterFirst(t *testing.T) {
	inst, err := New(context.Background(), "segtree-test")
	require.NoError(t, err)

	require.NoError(t, inst.Close(context.Background()))
	require.Error(t, inst.Close(context.Background()))
}
