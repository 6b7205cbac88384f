package ordered

import (
	"go.uber.org/zap"

	"github.com/iamNilotpal/segtree/internal/cursor"
	segerrors "github.com/iamNilotpal/segtree/pkg/errors"
	"github.com/iamNilotpal/segtree/pkg/options"
)

// Pair is one key/value entry stored by a Multimap. Ordering compares only
// Key; Value rides along.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MultimapConfig holds the parameters needed to construct a Multimap.
type MultimapConfig[K, V any] struct {
	Options *options.Options
	Less    Less[K]
	Logger  *zap.SugaredLogger
}

// Multimap is a sorted, duplicate-key-permitting map of K to V, built
// directly on Multiset[Pair[K, V]] with a key-only comparator.
type Multimap[K, V any] struct {
	set *Multiset[Pair[K, V]]
}

// NewMultimap constructs an empty Multimap.
func NewMultimap[K, V any](cfg MultimapConfig[K, V]) (*Multimap[K, V], error) {
	if cfg.Less == nil {
		return nil, segerrors.NewConfigurationError(
			segerrors.ErrorCodeInvalidInput, "Less comparator must not be nil",
		).WithField("Less")
	}
	pairLess := func(a, b Pair[K, V]) bool { return cfg.Less(a.Key, b.Key) }
	set, err := NewMultiset(Config[Pair[K, V]]{Options: cfg.Options, Less: pairLess, Logger: cfg.Logger})
	if err != nil {
		return nil, err
	}
	return &Multimap[K, V]{set: set}, nil
}

// Len returns the number of key/value entries.
func (m *Multimap[K, V]) Len() int { return m.set.Len() }

// Insert inserts (key, value) and returns a cursor addressing it. Multiple
// entries with the same key coexist, ordered by insertion among equal keys.
func (m *Multimap[K, V]) Insert(key K, value V) cursor.Cursor[Pair[K, V]] {
	return m.set.Insert(Pair[K, V]{Key: key, Value: value})
}

// LowerBound returns a cursor at the first entry whose key is not less than key.
func (m *Multimap[K, V]) LowerBound(key K) cursor.Cursor[Pair[K, V]] {
	var zero V
	return m.set.LowerBound(Pair[K, V]{Key: key, Value: zero})
}

// UpperBound returns a cursor at the first entry whose key is greater than key.
func (m *Multimap[K, V]) UpperBound(key K) cursor.Cursor[Pair[K, V]] {
	var zero V
	return m.set.UpperBound(Pair[K, V]{Key: key, Value: zero})
}

// EqualRange returns cursors bounding every entry with a key equivalent to key.
func (m *Multimap[K, V]) EqualRange(key K) (lower, upper cursor.Cursor[Pair[K, V]]) {
	var zero V
	return m.set.EqualRange(Pair[K, V]{Key: key, Value: zero})
}

// ContainsKey reports whether any entry has a key equivalent to key.
func (m *Multimap[K, V]) ContainsKey(key K) bool {
	var zero V
	return m.set.Contains(Pair[K, V]{Key: key, Value: zero})
}

// CountKey returns the number of entries with a key equivalent to key.
func (m *Multimap[K, V]) CountKey(key K) int {
	var zero V
	return m.set.Count(Pair[K, V]{Key: key, Value: zero})
}

// EraseKey removes every entry with a key equivalent to key and returns the
// count removed.
func (m *Multimap[K, V]) EraseKey(key K) int {
	var zero V
	return m.set.EraseValue(Pair[K, V]{Key: key, Value: zero})
}

// Erase removes the single entry c addresses.
func (m *Multimap[K, V]) Erase(c cursor.Cursor[Pair[K, V]]) cursor.Cursor[Pair[K, V]] {
	return m.set.Erase(c)
}

// ForEach calls f on every entry in ascending key order.
func (m *Multimap[K, V]) ForEach(f func(Pair[K, V])) {
	m.set.ForEach(f)
}
