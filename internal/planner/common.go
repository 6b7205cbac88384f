// Package planner implements the insertion and erasure planners: given a
// target position and an element count, they decide which segment
// balancing and flat primitives to apply, allocating new segments when
// neighbors don't have enough slack, and return the coordinates bracketing
// the affected range. Neither planner constructs or destructs elements
// itself beyond zeroing vacated slots — insertion returns an uninitialized
// gap for the caller to fill, erasure's caller is responsible for having
// already read out whatever it needed before calling.
package planner

import (
	"github.com/iamNilotpal/segtree/internal/segment"
)

// divisionWithRemainder is the small helper the original calls
// division_with_remainder: a/b with its remainder, named distinctly so the
// segment-distribution math below reads the same shape as its source.
func divisionWithRemainder(a, b int) (quotient, remainder int) {
	return a / b, a % b
}

// segmentRangeInfo computes how many segments are needed to hold
// leftSize+currSize+n elements without exceeding capacity, and how those
// elements distribute: the first `remainder` segments get baseSize+1
// elements, the rest get baseSize.
func segmentRangeInfo(capacity, leftSize, currSize, n int) (nmSegments, remainder, baseSize int) {
	s := leftSize + currSize + n
	q, r := divisionWithRemainder(s, capacity)
	nmSegments = q
	if r > 0 {
		nmSegments++
	}
	baseSize, remainder = divisionWithRemainder(s, nmSegments)
	return nmSegments, remainder, baseSize
}

// centerHeader sets h's live range to size elements, centered within its
// area so that front-free and back-free differ by at most one.
func centerHeader[T any](h segment.Header[T], size int) {
	front := (h.Capacity() - size) / 2
	h.SetFirst(front)
	h.SetLast(front + size)
}
