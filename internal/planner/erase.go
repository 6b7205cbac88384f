package planner

import (
	"github.com/iamNilotpal/segtree/internal/balance"
	"github.com/iamNilotpal/segtree/internal/flat"
	"github.com/iamNilotpal/segtree/internal/segindex"
)

// Erase is the entry point for erasure: it removes the n elements at offset
// i within segment leftPos (when leftPos == rightPos, the whole range sits
// in one segment) through offset j within rightPos, re-establishing the
// minimum-occupancy invariant on any segment left under-full, and returns
// the coordinate the gap collapsed to.
//
// leftPos and rightPos are validated as real segment positions or the
// sentinel before anything else runs. The caller is responsible for having
// already read out or destructed whatever values it needed from the erased
// range; Erase only moves and zeroes slots.
func Erase[T any](idx *segindex.Index[T], leftPos, i, rightPos, j int) (segindex.Coordinate, error) {
	if err := idx.ValidateCoordinate(leftPos); err != nil {
		return segindex.Coordinate{}, err
	}
	if err := idx.ValidateCoordinate(rightPos); err != nil {
		return segindex.Coordinate{}, err
	}

	// A range ending at the sentinel ends at the back of the last real
	// segment.
	if rightPos == idx.Len() && rightPos > 0 {
		rightPos--
		j = idx.At(rightPos).Size()
		if leftPos > rightPos {
			leftPos, i = rightPos, j
		}
	}

	if leftPos == rightPos {
		return eraseCurrent(idx, leftPos, i, j)
	}
	return eraseAcrossSegments(idx, leftPos, i, rightPos, j)
}

// eraseCurrent removes [i, j) from a single segment and, if that leaves the
// segment under the occupancy limit, rebalances it against its neighbors.
func eraseCurrent[T any](idx *segindex.Index[T], pos, i, j int) (segindex.Coordinate, error) {
	h := idx.At(pos)
	nf, nl, gapPos := flat.EraseFlat(h.Data(), h.First(), h.Last(), h.First()+i, h.First()+j)
	h.SetFirst(nf)
	h.SetLast(nl)
	idx.AdjustSize(-(j - i))

	result := segindex.Coordinate{Pos: pos, Offset: gapPos}
	if pos == 0 && h.Size() == 0 && idx.Len() > 0 {
		// An emptied first segment is dropped rather than kept as an
		// empty header.
		idx.EraseHeaders(0, 1)
		return segindex.Coordinate{Pos: 0, Offset: idx.At(0).First()}, nil
	}
	if pos == 0 || h.Size() >= idx.Limit() {
		return result, nil
	}
	return eraseBalanceCurrent(idx, pos, result)
}

// eraseBalanceCurrent restores the occupancy limit on an under-full,
// non-first segment by donating from (or merging with) its left neighbor:
// if the left neighbor can spare enough to bring curr back up to the
// limit, elements slide across; otherwise curr's remaining elements are
// absorbed entirely into left and curr's header is dropped.
func eraseBalanceCurrent[T any](idx *segindex.Index[T], pos int, at segindex.Coordinate) (segindex.Coordinate, error) {
	curr := idx.At(pos)
	left := idx.At(pos - 1)
	limit := idx.Limit()
	needed := limit - curr.Size()

	if left.Size()-needed >= limit || pos-1 == 0 {
		// Left can spare `needed` elements without itself dropping under
		// the limit (or left is the first segment, which has no floor).
		donate := min(needed, left.Size())
		if donate <= 0 {
			return at, nil
		}
		oldFirst := curr.First()
		balance.MoveToRight(left, curr, donate)
		// MoveToRight may first slide curr's run toward the back of its
		// area to make room at the front; shift at by the same amount.
		if at.Pos == pos {
			at.Offset += curr.First() + donate - oldFirst
		}
		return at, nil
	}

	// Left can't spare enough: merge curr entirely into left.
	remaining := curr.Size()
	oldCurrFirst := curr.First()
	if remaining > 0 {
		if shortfall := remaining - left.BackFree(); shortfall > 0 {
			balance.SlideSegment(left, shortfall)
		}
	}
	oldLeftLast := left.Last()
	if remaining > 0 {
		balance.MoveToLeftBackAvailable(curr, left, remaining)
	}

	var merged segindex.Coordinate
	if at.Pos == pos {
		merged = segindex.Coordinate{Pos: pos - 1, Offset: oldLeftLast + (at.Offset - oldCurrFirst)}
	} else {
		merged = at
	}

	idx.EraseHeaders(pos, pos+1)
	if merged.Pos > pos {
		merged.Pos--
	}
	return merged, nil
}

// eraseAcrossSegments removes [i, size(leftPos)) from leftPos, the whole of
// every segment strictly between leftPos and rightPos, and [0, j) from
// rightPos, then reconciles whatever remains of leftPos and rightPos.
func eraseAcrossSegments[T any](idx *segindex.Index[T], leftPos, i, rightPos, j int) (segindex.Coordinate, error) {
	left := idx.At(leftPos)
	right := idx.At(rightPos)

	removed := (left.Size() - i) + j
	for p := leftPos + 1; p < rightPos; p++ {
		removed += idx.At(p).Size()
	}

	left.SetLast(left.First() + i)
	right.SetFirst(right.First() + j)

	idx.EraseHeaders(leftPos+1, rightPos)
	rightPos = leftPos + 1
	right = idx.At(rightPos)

	idx.AdjustSize(-removed)
	return eraseBalanceLeftRight(idx, leftPos, rightPos)
}

// eraseBalanceLeftRight reconciles two now-adjacent segments after a
// cross-segment erase: if together they fit in one segment, they're
// merged (a merged segment left empty is dropped, and a merged non-first
// segment under the limit is then rebalanced against its own left neighbor
// as eraseBalanceCurrent does); if both already meet the limit, nothing
// further is needed; otherwise they're split evenly between the two, each
// ending up with floor(size(left)+size(right))/2 elements (and ceil for the
// other), which satisfies the limit on both sides at once.
func eraseBalanceLeftRight[T any](idx *segindex.Index[T], leftPos, rightPos int) (segindex.Coordinate, error) {
	left := idx.At(leftPos)
	right := idx.At(rightPos)
	total := left.Size() + right.Size()
	limit := idx.Limit()

	if total <= idx.Capacity() {
		if shortfall := right.Size() - left.BackFree(); shortfall > 0 {
			balance.SlideSegment(left, shortfall)
		}
		gap := left.Last()
		balance.MoveToLeftBackAvailable(right, left, right.Size())
		idx.EraseHeaders(rightPos, rightPos+1)
		merged := segindex.Coordinate{Pos: leftPos, Offset: gap}
		if left.Size() == 0 {
			idx.EraseHeaders(leftPos, leftPos+1)
			return segindex.Coordinate{Pos: leftPos, Offset: idx.At(leftPos).First()}, nil
		}
		if leftPos > 0 && left.Size() < limit {
			return eraseBalanceCurrent(idx, leftPos, merged)
		}
		return merged, nil
	}

	if (leftPos == 0 || left.Size() >= limit) && right.Size() >= limit {
		return segindex.Coordinate{Pos: rightPos, Offset: right.First()}, nil
	}

	return eraseBalanceLeftRightEqually(idx, leftPos, rightPos)
}

// eraseBalanceLeftRightEqually splits total = size(left)+size(right) as
// evenly as possible between the two segments by sliding the boundary, and
// returns the coordinate of the element that was right's first before the
// move.
func eraseBalanceLeftRightEqually[T any](idx *segindex.Index[T], leftPos, rightPos int) (segindex.Coordinate, error) {
	left := idx.At(leftPos)
	right := idx.At(rightPos)
	total := left.Size() + right.Size()
	newLeftSize := total / 2
	delta := newLeftSize - left.Size()

	switch {
	case delta > 0:
		balance.MoveToLeft(right, left, delta)
		// right's old first element is now delta slots before left's end.
		return segindex.Coordinate{Pos: leftPos, Offset: left.Last() - delta}, nil
	case delta < 0:
		balance.MoveToRight(left, right, -delta)
		// right's old first element is now -delta slots past right's first.
		return segindex.Coordinate{Pos: rightPos, Offset: right.First() - delta}, nil
	}

	return segindex.Coordinate{Pos: rightPos, Offset: right.First()}, nil
}
