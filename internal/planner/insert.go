package planner

import (
	"github.com/iamNilotpal/segtree/internal/balance"
	"github.com/iamNilotpal/segtree/internal/flat"
	"github.com/iamNilotpal/segtree/internal/segindex"
)

// Insert is the entry point for insertion: given a target segment position
// curr (segindex.Coordinate.Pos), an in-segment offset i, and an element
// count n, it opens an uninitialized gap of n slots and returns the
// coordinates bracketing it. The caller fills the gap; Insert never
// constructs elements itself.
//
// Decision tree, in order: zero elements is a no-op; curr is validated as a
// real segment position or the sentinel; an empty index allocates the
// minimal centered segment run; a target segment with enough slack inserts
// in place; otherwise the left neighbor is tried, then the right neighbor
// (left-first on equal slack, per the documented tie-break), and failing
// both, fresh segments are allocated to hold curr's own content plus the
// new elements.
func Insert[T any](idx *segindex.Index[T], curr, i, n int) (begin, end segindex.Coordinate, err error) {
	if n == 0 {
		c := segindex.Coordinate{Pos: curr, Offset: i}
		return c, c, nil
	}

	if err := idx.ValidateCoordinate(curr); err != nil {
		return segindex.Coordinate{}, segindex.Coordinate{}, err
	}

	// A target at the sentinel inserts at the back of the last real segment.
	if curr == idx.Len() && curr > 0 {
		curr--
		i = idx.At(curr).Size()
	}

	if idx.Len() == 0 {
		return insertEmpty(idx, n)
	}

	if idx.At(curr).Available() >= n {
		return insertCurrentAvailable(idx, curr, i, n)
	}

	hasLeft := curr > 0
	hasRight := curr+1 < idx.Len()

	if hasLeft && idx.At(curr-1).Available()+idx.At(curr).Available() >= n {
		return balanceLeftSimple(idx, curr, curr-1, i, n)
	}
	if hasRight && idx.At(curr).Available()+idx.At(curr+1).Available() >= n {
		return balanceRightSimple(idx, curr, curr+1, i, n)
	}
	return insertNewSegmentsAtCurr(idx, curr, i, n)
}

// insertEmpty handles insertion into a container with no segments: it
// allocates the minimal number of segments needed to hold n elements,
// honoring the occupancy limit, and centers each one.
func insertEmpty[T any](idx *segindex.Index[T], n int) (begin, end segindex.Coordinate, err error) {
	nmSegments, m, s := segmentRangeInfo(idx.Capacity(), 0, 0, n)
	headers, err := idx.InsertHeaders(0, nmSegments)
	if err != nil {
		return segindex.Coordinate{}, segindex.Coordinate{}, err
	}

	for k, h := range headers {
		size := s
		if k < m {
			size = s + 1
		}
		centerHeader(h, size)
	}

	idx.AdjustSize(n)
	first := headers[0]
	last := headers[len(headers)-1]
	begin = segindex.Coordinate{Pos: 0, Offset: first.First()}
	end = segindex.Coordinate{Pos: nmSegments - 1, Offset: last.Last()}
	return begin, end, nil
}

// insertCurrentAvailable applies a flat insert inside curr, which already
// has enough slack to hold all n new elements.
func insertCurrentAvailable[T any](idx *segindex.Index[T], curr, i, n int) (begin, end segindex.Coordinate, err error) {
	h := idx.At(curr)
	nf, nl, gf, gl := flat.InsertFlat(h.Data(), h.First(), h.Last(), h.First()+i, n)
	h.SetFirst(nf)
	h.SetLast(nl)
	idx.AdjustSize(n)
	return segindex.Coordinate{Pos: curr, Offset: gf}, segindex.Coordinate{Pos: curr, Offset: gl}, nil
}

// balanceLeftSimple rebalances curr and its left neighbor so that curr ends
// up with newCurrSize = floor((size(curr)+size(left)+n)/2) elements,
// donating whatever doesn't fit to left, and inserts n new elements at the
// resulting position — entirely inside curr, entirely inside left, or
// straddling the boundary.
func balanceLeftSimple[T any](idx *segindex.Index[T], currPos, leftPos, i, n int) (begin, end segindex.Coordinate, err error) {
	curr := idx.At(currPos)
	left := idx.At(leftPos)

	oldCurrSize := curr.Size()
	newCurrSize := (oldCurrSize + left.Size() + n) / 2
	moveCount := clamp(oldCurrSize+n-newCurrSize, 0, oldCurrSize+n)

	if moveCount <= i {
		if moveCount > 0 {
			balance.MoveToLeft(curr, left, moveCount)
		}
		splitPoint := curr.First() + (i - moveCount)
		nf, nl, gf, gl := flat.InsertFlat(curr.Data(), curr.First(), curr.Last(), splitPoint, n)
		curr.SetFirst(nf)
		curr.SetLast(nl)
		idx.AdjustSize(n)
		return segindex.Coordinate{Pos: currPos, Offset: gf}, segindex.Coordinate{Pos: currPos, Offset: gl}, nil
	}

	n0 := i
	overflow := moveCount - i
	e := min(overflow, n)
	n1 := overflow - e

	gf, gl := balance.MoveToLeftBackAvailableGap(curr, left, n0, e, n1)
	begin = segindex.Coordinate{Pos: leftPos, Offset: gf}
	end = segindex.Coordinate{Pos: leftPos, Offset: gl}

	if e < n {
		remaining := n - e
		splitPoint := curr.First()
		nf, nl, _, gl2 := flat.InsertFlat(curr.Data(), curr.First(), curr.Last(), splitPoint, remaining)
		curr.SetFirst(nf)
		curr.SetLast(nl)
		end = segindex.Coordinate{Pos: currPos, Offset: gl2}
	}

	idx.AdjustSize(n)
	return begin, end, nil
}

// balanceRightSimple mirrors balanceLeftSimple against the right neighbor.
func balanceRightSimple[T any](idx *segindex.Index[T], currPos, rightPos, i, n int) (begin, end segindex.Coordinate, err error) {
	curr := idx.At(currPos)
	right := idx.At(rightPos)

	oldCurrSize := curr.Size()
	newCurrSize := (oldCurrSize + right.Size() + n) / 2
	moveCount := clamp(oldCurrSize+n-newCurrSize, 0, oldCurrSize+n)
	tailCount := oldCurrSize - i

	if moveCount <= tailCount {
		if moveCount > 0 {
			balance.MoveToRight(curr, right, moveCount)
		}
		splitPoint := curr.First() + i
		nf, nl, gf, gl := flat.InsertFlat(curr.Data(), curr.First(), curr.Last(), splitPoint, n)
		curr.SetFirst(nf)
		curr.SetLast(nl)
		idx.AdjustSize(n)
		return segindex.Coordinate{Pos: currPos, Offset: gf}, segindex.Coordinate{Pos: currPos, Offset: gl}, nil
	}

	overflow := moveCount - tailCount
	e := min(overflow, n)
	n1 := overflow - e

	gf, gl := balance.MoveToRightFrontAvailableGap(curr, right, n1, e, tailCount)
	begin = segindex.Coordinate{Pos: rightPos, Offset: gf}
	end = segindex.Coordinate{Pos: rightPos, Offset: gl}

	if e < n {
		remaining := n - e
		splitPoint := curr.Last()
		nf, nl, gf2, _ := flat.InsertFlat(curr.Data(), curr.First(), curr.Last(), splitPoint, remaining)
		curr.SetFirst(nf)
		curr.SetLast(nl)
		begin = segindex.Coordinate{Pos: currPos, Offset: gf2}
	}

	idx.AdjustSize(n)
	return begin, end, nil
}

// insertNewSegmentsAtCurr handles the case where neither neighbor has
// enough combined slack: it allocates a fresh, minimally-sized, centered
// run of segments to hold curr's own content plus the n new elements, and
// replaces curr with that run. Unlike the source's incremental
// balance-left-increase pass, this never reaches into an existing neighbor
// while redistributing — only curr's own elements are ever moved here,
// which costs at most one extra segment in rare cases but keeps the
// redistribution a single local pass over curr's content.
func insertNewSegmentsAtCurr[T any](idx *segindex.Index[T], currPos, i, n int) (begin, end segindex.Coordinate, err error) {
	old := idx.At(currPos)
	oldSize := old.Size()
	oldData := old.Data()
	oldBase := old.First()

	nmSegments, m, s := segmentRangeInfo(idx.Capacity(), 0, oldSize, n)
	headers, err := idx.InsertHeaders(currPos+1, nmSegments)
	if err != nil {
		return segindex.Coordinate{}, segindex.Coordinate{}, err
	}

	logicalPos := 0
	oldPos := 0
	for k, h := range headers {
		size := s
		if k < m {
			size = s + 1
		}
		centerHeader(h, size)
		dst := h.Data()
		base := h.First()
		for w := 0; w < size; w++ {
			if logicalPos >= i && logicalPos < i+n {
				if logicalPos == i {
					begin = segindex.Coordinate{Pos: currPos + 1 + k, Offset: base + w}
				}
				if logicalPos == i+n-1 {
					end = segindex.Coordinate{Pos: currPos + 1 + k, Offset: base + w + 1}
				}
			} else {
				dst[base+w] = oldData[oldBase+oldPos]
				oldPos++
			}
			logicalPos++
		}
	}

	idx.EraseHeaders(currPos, currPos+1)
	begin.Pos--
	end.Pos--
	idx.AdjustSize(n)
	return begin, end, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
