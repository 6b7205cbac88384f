// Package cursor implements the segmented iterator and the search
// algorithms built on top of it: lower/upper bound, equal range, for-each,
// partition point, and the comparisons a container needs to implement
// value-based lookup without flattening segments into a single slice.
package cursor

import (
	"github.com/iamNilotpal/segtree/internal/segindex"
)

// Cursor is a dereferenceable position inside a segmented sequence: it
// pairs a Coordinate with the Index it walks, and knows how to step across
// segment boundaries in either direction.
type Cursor[T any] struct {
	idx *segindex.Index[T]
	at  segindex.Coordinate
}

// New wraps a coordinate as a cursor over idx.
func New[T any](idx *segindex.Index[T], at segindex.Coordinate) Cursor[T] {
	return Cursor[T]{idx: idx, at: at}
}

// Coordinate returns the cursor's current position.
func (c Cursor[T]) Coordinate() segindex.Coordinate { return c.at }

// Get returns the element the cursor addresses. The caller must ensure the
// cursor isn't at End.
func (c Cursor[T]) Get() T {
	h := c.idx.At(c.at.Pos)
	return h.Data()[c.at.Offset]
}

// Set overwrites the element the cursor addresses.
func (c Cursor[T]) Set(v T) {
	h := c.idx.At(c.at.Pos)
	h.Data()[c.at.Offset] = v
}

// AtEnd reports whether the cursor addresses the sentinel (one-past-end).
func (c Cursor[T]) AtEnd() bool { return c.at.Pos == c.idx.Len() }

// Next advances the cursor by one element, crossing into the next
// segment (or the sentinel) when it runs off the end of the current one.
func (c Cursor[T]) Next() Cursor[T] {
	h := c.idx.At(c.at.Pos)
	if c.at.Offset+1 < h.Last() {
		return Cursor[T]{idx: c.idx, at: segindex.Coordinate{Pos: c.at.Pos, Offset: c.at.Offset + 1}}
	}
	next := c.at.Pos + 1
	if next >= c.idx.Len() {
		return Cursor[T]{idx: c.idx, at: segindex.Coordinate{Pos: c.idx.Len(), Offset: 0}}
	}
	return Cursor[T]{idx: c.idx, at: segindex.Coordinate{Pos: next, Offset: c.idx.At(next).First()}}
}

// Prev steps the cursor back by one element, crossing into the previous
// segment when it runs off the front of the current one. Prev on Begin is
// undefined, matching the one-past-end/one-before-begin convention of the
// algorithms built on it.
func (c Cursor[T]) Prev() Cursor[T] {
	h := c.idx.At(c.at.Pos)
	if c.at.Offset > h.First() {
		return Cursor[T]{idx: c.idx, at: segindex.Coordinate{Pos: c.at.Pos, Offset: c.at.Offset - 1}}
	}
	prev := c.at.Pos - 1
	ph := c.idx.At(prev)
	return Cursor[T]{idx: c.idx, at: segindex.Coordinate{Pos: prev, Offset: ph.Last() - 1}}
}

// Begin returns a cursor at the first element, or at End if idx is empty.
func Begin[T any](idx *segindex.Index[T]) Cursor[T] {
	if idx.Len() == 0 {
		return End(idx)
	}
	return Cursor[T]{idx: idx, at: segindex.Coordinate{Pos: 0, Offset: idx.At(0).First()}}
}

// End returns a cursor at the sentinel, one past the last element.
func End[T any](idx *segindex.Index[T]) Cursor[T] {
	return Cursor[T]{idx: idx, at: segindex.Coordinate{Pos: idx.Len(), Offset: 0}}
}

// ForEach walks every element from begin (inclusive) to end (exclusive) in
// order, calling f on each.
func ForEach[T any](idx *segindex.Index[T], begin, end segindex.Coordinate, f func(T)) {
	for c := (Cursor[T]{idx: idx, at: begin}); c.at != end; c = c.Next() {
		f(c.Get())
	}
}

// Distance counts the elements between begin (inclusive) and end
// (exclusive), walking segment by segment rather than element by element.
func Distance[T any](idx *segindex.Index[T], begin, end segindex.Coordinate) int {
	if begin.Pos == end.Pos {
		return end.Offset - begin.Offset
	}
	n := idx.At(begin.Pos).Last() - begin.Offset
	for p := begin.Pos + 1; p < end.Pos; p++ {
		n += idx.At(p).Size()
	}
	n += end.Offset - idx.At(end.Pos).First()
	return n
}

// PartitionPoint returns the first coordinate in [begin, end) for which
// pred is false, assuming pred is true on a prefix and false on the
// remainder. It bisects over segments first, testing pred on each
// candidate segment's last element to find the first segment where pred
// turns false, then bisects within that segment.
func PartitionPoint[T any](idx *segindex.Index[T], begin, end segindex.Coordinate, pred func(T) bool) segindex.Coordinate {
	lo, hi := begin.Pos, end.Pos
	for lo < hi {
		mid := lo + (hi-lo)/2
		h := idx.At(mid)
		lastOffset := h.Last() - 1
		if mid == begin.Pos {
			if h.First() >= h.Last() {
				lo = mid + 1
				continue
			}
		}
		if pred(h.Data()[lastOffset]) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	segBegin, segEnd := begin, end
	if lo != begin.Pos {
		segBegin = segindex.Coordinate{Pos: lo, Offset: idx.At(lo).First()}
	}
	if lo != end.Pos {
		segEnd = segindex.Coordinate{Pos: lo, Offset: idx.At(lo).Last()}
	}

	h := idx.At(lo)
	loOff, hiOff := segBegin.Offset, segEnd.Offset
	for loOff < hiOff {
		mid := loOff + (hiOff-loOff)/2
		if pred(h.Data()[mid]) {
			loOff = mid + 1
		} else {
			hiOff = mid
		}
	}
	return segindex.Coordinate{Pos: lo, Offset: loOff}
}

// LowerBound returns the first coordinate whose element is not less than v
// under less.
func LowerBound[T any](idx *segindex.Index[T], begin, end segindex.Coordinate, v T, less func(a, b T) bool) segindex.Coordinate {
	return PartitionPoint(idx, begin, end, func(x T) bool { return less(x, v) })
}

// UpperBound returns the first coordinate whose element is greater than v
// under less.
func UpperBound[T any](idx *segindex.Index[T], begin, end segindex.Coordinate, v T, less func(a, b T) bool) segindex.Coordinate {
	return PartitionPoint(idx, begin, end, func(x T) bool { return !less(v, x) })
}

// EqualRange returns [lower, upper) bounding every element equivalent to v
// under less. It computes the lower bound once, then searches only
// [lower, end) for the upper bound — equal runs that spill across a
// segment boundary are handled by PartitionPoint's ordinary segment
// bisection, not as a special case.
func EqualRange[T any](idx *segindex.Index[T], begin, end segindex.Coordinate, v T, less func(a, b T) bool) (lower, upper segindex.Coordinate) {
	lower = LowerBound(idx, begin, end, v, less)
	upper = UpperBound(idx, lower, end, v, less)
	return lower, upper
}

// Equal reports whether the two ranges contain the same elements in the
// same order.
func Equal[T comparable](idxA *segindex.Index[T], aBegin, aEnd segindex.Coordinate, idxB *segindex.Index[T], bBegin, bEnd segindex.Coordinate) bool {
	ca, cb := Cursor[T]{idx: idxA, at: aBegin}, Cursor[T]{idx: idxB, at: bBegin}
	for ca.at != aEnd && cb.at != bEnd {
		if ca.Get() != cb.Get() {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}
	return ca.at == aEnd && cb.at == bEnd
}

// Compare performs a three-way lexicographic comparison of two ranges,
// returning -1, 0, or 1.
func Compare[T any](idxA *segindex.Index[T], aBegin, aEnd segindex.Coordinate, idxB *segindex.Index[T], bBegin, bEnd segindex.Coordinate, less func(a, b T) bool) int {
	ca, cb := Cursor[T]{idx: idxA, at: aBegin}, Cursor[T]{idx: idxB, at: bBegin}
	for ca.at != aEnd && cb.at != bEnd {
		av, bv := ca.Get(), cb.Get()
		switch {
		case less(av, bv):
			return -1
		case less(bv, av):
			return 1
		}
		ca, cb = ca.Next(), cb.Next()
	}
	switch {
	case ca.at == aEnd && cb.at != bEnd:
		return -1
	case ca.at != aEnd && cb.at == bEnd:
		return 1
	default:
		return 0
	}
}
