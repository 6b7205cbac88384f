// Package ordered implements the ordered-container facade: Multiset and
// Multimap, thin shells over the segmented index, insertion/erasure
// planners, and cursor algorithms that expose a sorted-container API
// without flattening storage into a single slice.
package ordered

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/internal/cursor"
	"github.com/iamNilotpal/segtree/internal/planner"
	"github.com/iamNilotpal/segtree/internal/segindex"
	segerrors "github.com/iamNilotpal/segtree/pkg/errors"
	"github.com/iamNilotpal/segtree/pkg/options"
)

// Less reports whether a sorts strictly before b.
type Less[T any] func(a, b T) bool

// Config holds the parameters needed to construct a Multiset.
type Config[T any] struct {
	Options *options.Options
	Less    Less[T]
	Logger  *zap.SugaredLogger
}

// Multiset is a sorted, duplicate-permitting container of T, backed by a
// segmented index. Lookups and range queries run in O(log segments +
// log segment-capacity); a point insertion or erasure moves a number of
// elements bounded by the segment capacity, independent of the total size.
type Multiset[T any] struct {
	idx  *segindex.Index[T]
	less Less[T]
	log  *zap.SugaredLogger
}

// NewMultiset constructs an empty Multiset.
func NewMultiset[T any](cfg Config[T]) (*Multiset[T], error) {
	if cfg.Less == nil {
		return nil, segerrors.NewConfigurationError(
			segerrors.ErrorCodeInvalidInput, "Less comparator must not be nil",
		).WithField("Less")
	}

	opts := cfg.Options
	if opts == nil {
		d := options.NewDefaultOptions()
		opts = &d
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	alloc := opts.AllocatorOptions
	pool, err := arena.NewPool[T](arena.Config{
		Capacity:      opts.Capacity,
		ChunkSegments: alloc.ChunkSegments,
		ReserveChunks: alloc.ReserveChunks,
		Logger:        cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	idx := segindex.New(segindex.Config[T]{Pool: pool, Layout: opts.HeaderLayout, Logger: cfg.Logger})
	return &Multiset[T]{idx: idx, less: cfg.Less, log: cfg.Logger}, nil
}

// Len returns the total number of elements in the set.
func (s *Multiset[T]) Len() int { return s.idx.Size() }

// Begin returns a cursor at the first element.
func (s *Multiset[T]) Begin() cursor.Cursor[T] { return cursor.Begin(s.idx) }

// End returns a cursor one past the last element.
func (s *Multiset[T]) End() cursor.Cursor[T] { return cursor.End(s.idx) }

// LowerBound returns a cursor at the first element not less than v.
func (s *Multiset[T]) LowerBound(v T) cursor.Cursor[T] {
	at := cursor.LowerBound(s.idx, begin(s.idx), end(s.idx), v, s.less)
	return cursor.New(s.idx, at)
}

// UpperBound returns a cursor at the first element greater than v.
func (s *Multiset[T]) UpperBound(v T) cursor.Cursor[T] {
	at := cursor.UpperBound(s.idx, begin(s.idx), end(s.idx), v, s.less)
	return cursor.New(s.idx, at)
}

// EqualRange returns cursors bounding the run of elements equivalent to v.
func (s *Multiset[T]) EqualRange(v T) (lower, upper cursor.Cursor[T]) {
	lo, hi := cursor.EqualRange(s.idx, begin(s.idx), end(s.idx), v, s.less)
	return cursor.New(s.idx, lo), cursor.New(s.idx, hi)
}

// Contains reports whether any element equivalent to v is present.
func (s *Multiset[T]) Contains(v T) bool {
	lo, hi := s.EqualRange(v)
	return lo.Coordinate() != hi.Coordinate()
}

// Count returns the number of elements equivalent to v.
func (s *Multiset[T]) Count(v T) int {
	lo, hi := s.EqualRange(v)
	return cursor.Distance(s.idx, lo.Coordinate(), hi.Coordinate())
}

// ForEach calls f on every element in ascending order.
func (s *Multiset[T]) ForEach(f func(T)) {
	cursor.ForEach(s.idx, begin(s.idx), end(s.idx), f)
}

// Insert inserts v in its sorted position and returns a cursor addressing
// it. Equal elements are inserted after any existing equivalent run, per
// multiset ordering semantics (stable with respect to insertion order
// among equal keys).
func (s *Multiset[T]) Insert(v T) cursor.Cursor[T] {
	at := cursor.UpperBound(s.idx, begin(s.idx), end(s.idx), v, s.less)
	return s.insertAt(at, v)
}

// InsertSortedUnguarded bulk-inserts values, in order, at hint without
// verifying the ordering invariant still holds. The caller must guarantee
// hint is a valid insertion point for an already-sorted run — typically
// s.End() when appending a batch known to sort after every existing
// element; violating this corrupts ordering silently. It opens a single
// gap of len(values) slots via the planner and fills it by copy, the Go
// analogue of the original's bulk insert-by-copy path.
func (s *Multiset[T]) InsertSortedUnguarded(hint cursor.Cursor[T], values []T) cursor.Cursor[T] {
	return s.insertManyAt(hint.Coordinate(), values, false)
}

// InsertSortedUnguardedMove is InsertSortedUnguarded, but also zeroes each
// element of values once it has been transferred into the gap — the
// closest Go analogue of a destructive move, for callers handing off
// ownership of a large already-sorted batch rather than copying it.
func (s *Multiset[T]) InsertSortedUnguardedMove(hint cursor.Cursor[T], values []T) cursor.Cursor[T] {
	return s.insertManyAt(hint.Coordinate(), values, true)
}

func (s *Multiset[T]) insertAt(at segindex.Coordinate, v T) cursor.Cursor[T] {
	gapBegin, ok := s.openGap(at, 1)
	if !ok {
		return cursor.End(s.idx)
	}
	c := cursor.New(s.idx, gapBegin)
	c.Set(v)
	return c
}

func (s *Multiset[T]) insertManyAt(at segindex.Coordinate, values []T, move bool) cursor.Cursor[T] {
	n := len(values)
	if n == 0 {
		return cursor.New(s.idx, at)
	}

	gapBegin, ok := s.openGap(at, n)
	if !ok {
		return cursor.End(s.idx)
	}

	var zero T
	c := cursor.New(s.idx, gapBegin)
	for k, v := range values {
		c.Set(v)
		if move {
			values[k] = zero
		}
		if k < n-1 {
			c = c.Next()
		}
	}
	return cursor.New(s.idx, gapBegin)
}

// openGap resolves the segment-relative (pos, i) target for coordinate at
// and asks the planner to open a gap of n uninitialized slots there,
// logging and reporting failure rather than returning a zero coordinate
// the caller might mistake for a valid one.
func (s *Multiset[T]) openGap(at segindex.Coordinate, n int) (segindex.Coordinate, bool) {
	pos, i := at.Pos, at.Offset
	if pos == s.idx.Len() {
		pos = lastRealSegment(s.idx)
		i = s.idx.At(pos).Size()
	} else {
		i -= s.idx.At(pos).First()
	}

	gapBegin, _, err := planner.Insert(s.idx, pos, i, n)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("multiset: insert failed", "error", err, "count", n)
		}
		return segindex.Coordinate{}, false
	}
	return gapBegin, true
}

// Erase removes the single element c addresses and returns a cursor at the
// position that followed it.
func (s *Multiset[T]) Erase(c cursor.Cursor[T]) cursor.Cursor[T] {
	at := c.Coordinate()
	pos := at.Pos
	i := at.Offset - s.idx.At(pos).First()
	next, err := planner.Erase(s.idx, pos, i, pos, i+1)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("multiset: erase failed", "error", err)
		}
		return cursor.End(s.idx)
	}
	return cursor.New(s.idx, next)
}

// EraseRange removes every element in [lo, hi) and returns a cursor at the
// position the range collapsed to.
func (s *Multiset[T]) EraseRange(lo, hi cursor.Cursor[T]) cursor.Cursor[T] {
	loC, hiC := lo.Coordinate(), hi.Coordinate()
	loI := loC.Offset - s.idx.At(loC.Pos).First()
	hiI := hiC.Offset - s.idx.At(hiC.Pos).First()
	next, err := planner.Erase(s.idx, loC.Pos, loI, hiC.Pos, hiI)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("multiset: range erase failed", "error", err)
		}
		return cursor.End(s.idx)
	}
	return cursor.New(s.idx, next)
}

// EraseValue removes every element equivalent to v and returns the count
// removed.
func (s *Multiset[T]) EraseValue(v T) int {
	lo, hi := s.EqualRange(v)
	n := cursor.Distance(s.idx, lo.Coordinate(), hi.Coordinate())
	if n == 0 {
		return 0
	}
	s.EraseRange(lo, hi)
	return n
}

// InsertAll inserts every value in vs, collecting (rather than
// short-circuiting on) any allocation failures so a caller can report every
// rejected value from one bulk call.
func (s *Multiset[T]) InsertAll(vs []T) error {
	var errs error
	for _, v := range vs {
		before := s.Len()
		s.Insert(v)
		if s.Len() == before {
			errs = multierr.Append(errs, segerrors.NewConfigurationError(
				segerrors.ErrorCodeInternal, "insert did not grow the set",
			))
		}
	}
	return errs
}

func begin[T any](idx *segindex.Index[T]) segindex.Coordinate { return cursor.Begin(idx).Coordinate() }
func end[T any](idx *segindex.Index[T]) segindex.Coordinate   { return cursor.End(idx).Coordinate() }

func lastRealSegment[T any](idx *segindex.Index[T]) int {
	if idx.Len() == 0 {
		return 0
	}
	return idx.Len() - 1
}
