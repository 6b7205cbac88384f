package flat

// InsertFlat makes a gap of size n at splitPoint inside the live range
// [first, last) of area, choosing whichever of (a) slide the left part
// backward, (b) slide the right part forward, (c) split the shift between
// both sides, minimizes total element moves while fitting inside area's
// capacity. It returns the new (first, last) bounding the widened live
// range and the [gapFirst, gapLast) bounds of the opened, uninitialized gap
// for the caller to fill.
//
// Preferability: move the smaller side; ties are broken toward the side
// with more free space to consume.
func InsertFlat[T any](area []T, first, last, splitPoint, n int) (newFirst, newLast, gapFirst, gapLast int) {
	if n <= 0 {
		return first, last, splitPoint, splitPoint
	}

	leftCount := splitPoint - first
	rightCount := last - splitPoint
	frontFree := first
	backFree := len(area) - last

	canLeft := frontFree >= n
	canRight := backFree >= n
	preferLeft := leftCount < rightCount || (leftCount == rightCount && frontFree >= backFree)

	var n0, n1 int
	switch {
	case canLeft && (preferLeft || !canRight):
		n0, n1 = n, 0
	case canRight:
		n0, n1 = 0, n
	default:
		// Neither side alone has room; split the shift between both,
		// consuming all front slack first.
		n0, n1 = frontFree, n-frontFree
	}

	SlideCutN(area, first, leftCount, n0)
	SlideCutBackwardN(area, splitPoint, rightCount, n1)
	return first - n0, last + n1, splitPoint - n0, splitPoint + n1
}

// EraseFlat closes the hole [eraseBegin, eraseEnd) inside the live range
// [first, last) of area by moving whichever adjacent sub-range is smaller.
// It returns the new (first, last) bounding the narrowed live range and the
// index just past the now-closed erasure point.
func EraseFlat[T any](area []T, first, last, eraseBegin, eraseEnd int) (newFirst, newLast, gapPos int) {
	k := eraseEnd - eraseBegin
	if k <= 0 {
		return first, last, eraseBegin
	}

	leftCount := eraseBegin - first
	rightCount := last - eraseEnd

	if leftCount <= rightCount {
		CutN(area, first+k, first, leftCount)
		return first + k, last, eraseEnd
	}
	CutN(area, eraseBegin, eraseEnd, rightCount)
	return first, last - k, eraseBegin
}
