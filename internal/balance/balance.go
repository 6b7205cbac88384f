// Package balance implements the segment balancing primitives: slide-in-
// area and move-to-neighbor operations, including the gap-reserving
// variants the insertion planner uses. These are the building blocks the
// insertion and erasure planners (internal/planner) compose.
package balance

import (
	"github.com/iamNilotpal/segtree/internal/flat"
	"github.com/iamNilotpal/segtree/internal/segment"
)

// SlideSegment moves h's live run backward by k positions inside its area
// (first -= k, last -= k). Precondition: h.FrontFree() >= k.
func SlideSegment[T any](h segment.Header[T], k int) {
	if k <= 0 {
		return
	}
	flat.SlideCutN(h.Data(), h.First(), h.Size(), k)
	h.SetFirst(h.First() - k)
	h.SetLast(h.Last() - k)
}

// SlideSegmentBackward moves h's live run forward by k positions inside its
// area (first += k, last += k). Precondition: h.BackFree() >= k.
func SlideSegmentBackward[T any](h segment.Header[T], k int) {
	if k <= 0 {
		return
	}
	flat.SlideCutBackwardN(h.Data(), h.First(), h.Size(), k)
	h.SetFirst(h.First() + k)
	h.SetLast(h.Last() + k)
}

// MoveToLeftBackAvailable moves n elements from the front of curr into the
// back of left. Precondition: left.BackFree() >= n; no re-centering is
// attempted.
func MoveToLeftBackAvailable[T any](curr, left segment.Header[T], n int) {
	if n <= 0 {
		return
	}
	flat.CrossMoveN(left.Data(), left.Last(), curr.Data(), curr.First(), n)
	left.SetLast(left.Last() + n)
	curr.SetFirst(curr.First() + n)
}

// MoveToLeftBackAvailableGap is the "reserve a gap" variant used by the
// insertion planner: it moves n0 elements from curr's front into left's
// back, reserves an uninitialized gap of size e immediately after them, then
// moves n1 more elements from curr's front past the gap. It returns the
// [gapFirst, gapLast) bounds of the reserved gap inside left's area, for the
// caller to fill. The whole n0+e+n1 span is reserved against left's back-free
// space up front, so the gap's position is stable once computed.
func MoveToLeftBackAvailableGap[T any](curr, left segment.Header[T], n0, e, n1 int) (gapFirst, gapLast int) {
	total := n0 + e + n1
	if shortfall := total - left.BackFree(); shortfall > 0 {
		SlideSegment(left, shortfall)
	}

	base := left.Last()
	flat.CrossMoveN(left.Data(), base, curr.Data(), curr.First(), n0)
	curr.SetFirst(curr.First() + n0)

	gapFirst = base + n0
	gapLast = gapFirst + e

	flat.CrossMoveN(left.Data(), gapLast, curr.Data(), curr.First(), n1)
	curr.SetFirst(curr.First() + n1)

	left.SetLast(base + total)
	return gapFirst, gapLast
}

// MoveToLeft moves n elements from the front of curr into the back of
// left, first sliding left forward inside its area to make room if its
// current back-free space is insufficient.
func MoveToLeft[T any](curr, left segment.Header[T], n int) {
	if shortfall := n - left.BackFree(); shortfall > 0 {
		SlideSegment(left, shortfall)
	}
	MoveToLeftBackAvailable(curr, left, n)
}

// MoveToRightFrontAvailable moves the last n elements of curr into the
// front of right. Precondition: right.FrontFree() >= n.
func MoveToRightFrontAvailable[T any](curr, right segment.Header[T], n int) {
	if n <= 0 {
		return
	}
	flat.CrossMoveN(right.Data(), right.First()-n, curr.Data(), curr.Last()-n, n)
	right.SetFirst(right.First() - n)
	curr.SetLast(curr.Last() - n)
}

// MoveToRight moves the last n elements of curr into the front of right,
// first sliding right backward inside its area to make room if its current
// front-free space is insufficient.
func MoveToRight[T any](curr, right segment.Header[T], n int) {
	if shortfall := n - right.FrontFree(); shortfall > 0 {
		SlideSegmentBackward(right, shortfall)
	}
	MoveToRightFrontAvailable(curr, right, n)
}

// MoveToRightFrontAvailableGap is the mirror of MoveToLeftBackAvailableGap:
// it moves n1 elements (the block of curr adjacent to the insertion point)
// and tailCount elements (curr's trailing, already-displaced block) into the
// front of right, with an uninitialized gap of size e reserved between them
// in the order [n1][gap][tailCount], and returns the gap's bounds.
func MoveToRightFrontAvailableGap[T any](curr, right segment.Header[T], n1, e, tailCount int) (gapFirst, gapLast int) {
	total := n1 + e + tailCount
	if shortfall := total - right.FrontFree(); shortfall > 0 {
		SlideSegmentBackward(right, shortfall)
	}

	front := right.First() - total

	flat.CrossMoveN(right.Data(), front+n1+e, curr.Data(), curr.Last()-tailCount, tailCount)
	curr.SetLast(curr.Last() - tailCount)

	flat.CrossMoveN(right.Data(), front, curr.Data(), curr.Last()-n1, n1)
	curr.SetLast(curr.Last() - n1)

	right.SetFirst(front)
	return front + n1, front + n1 + e
}

// MoveToRightEmpty moves the last n elements of curr into right, which is
// currently empty, placing them starting at the explicit index firstIndex
// inside right's area, so the caller chooses how the new right segment is
// centered. No planner path calls it.
func MoveToRightEmpty[T any](curr, right segment.Header[T], firstIndex, n int) {
	right.SetFirst(firstIndex)
	right.SetLast(firstIndex)
	flat.CrossMoveN(right.Data(), firstIndex, curr.Data(), curr.Last()-n, n)
	right.SetLast(firstIndex + n)
	curr.SetLast(curr.Last() - n)
}
