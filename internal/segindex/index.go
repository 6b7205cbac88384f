// Package segindex implements the ordered, random-access sequence of
// segment headers plus its trailing sentinel: owns header storage and
// drives allocator calls when segments are created or destroyed.
//
// Open Question resolution (sentinel ownership): the source's two sibling
// implementations disagree on what the trailing sentinel owns in the
// empty-container state. This implementation picks one uniform rule: the
// sentinel never owns a pool-backed area. It is built once, over a
// zero-capacity arena.NewEmptyArea, and is always dereferenceable as an
// empty, always-last segment — real headers never alias it.
package segindex

import (
	"go.uber.org/zap"

	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/internal/segment"
	segerrors "github.com/iamNilotpal/segtree/pkg/errors"
	"github.com/iamNilotpal/segtree/pkg/options"
)

// Config holds the parameters needed to construct an Index.
type Config[T any] struct {
	Pool   *arena.Pool[T]
	Layout options.HeaderLayout
	Logger *zap.SugaredLogger
}

// Index is the ordered sequence of segment headers plus a trailing
// sentinel. It owns header storage and requests/returns areas from its
// pool when segments are created or destroyed.
type Index[T any] struct {
	headers  []segment.Header[T]
	sentinel segment.Header[T]

	pool   *arena.Pool[T]
	layout options.HeaderLayout
	log    *zap.SugaredLogger

	size int // cached sum of all header sizes, maintained incrementally
}

// New constructs an empty Index: zero real segments and one sentinel.
func New[T any](cfg Config[T]) *Index[T] {
	return &Index[T]{
		pool:     cfg.Pool,
		layout:   cfg.Layout,
		log:      cfg.Logger,
		sentinel: segment.NewHeaderForLayout[T](cfg.Layout, arena.NewEmptyArea[T](), 0, 0),
	}
}

// Len returns the number of real (non-sentinel) segments.
func (x *Index[T]) Len() int { return len(x.headers) }

// Size returns the total number of live elements across all segments.
func (x *Index[T]) Size() int { return x.size }

// Capacity returns the fixed per-segment capacity C.
func (x *Index[T]) Capacity() int { return x.pool.Capacity() }

// Limit returns L = floor(C/2), the minimum occupancy for non-first segments.
func (x *Index[T]) Limit() int { return segment.Limit(x.Capacity()) }

// At returns the header at position i. i == Len() returns the sentinel.
func (x *Index[T]) At(i int) segment.Header[T] {
	if i == len(x.headers) {
		return x.sentinel
	}
	return x.headers[i]
}

// Sentinel returns the always-empty trailing header.
func (x *Index[T]) Sentinel() segment.Header[T] { return x.sentinel }

// AdjustSize updates the cached total element count. The planners invoke
// this whenever they move elements into or out of the container as a
// whole, rather than just between segments.
func (x *Index[T]) AdjustSize(delta int) { x.size += delta }

// InsertHeaders inserts n freshly allocated, empty (size-0) headers at
// position `at` and returns them. On allocation failure partway through,
// already-acquired areas are released and the index is left unchanged.
func (x *Index[T]) InsertHeaders(at, n int) ([]segment.Header[T], error) {
	if n <= 0 {
		return nil, nil
	}

	fresh := make([]segment.Header[T], 0, n)
	for i := 0; i < n; i++ {
		area, err := x.pool.Allocate()
		if err != nil {
			for _, h := range fresh {
				x.pool.Free(h.Area())
			}
			if x.log != nil {
				x.log.Warnw("segindex: rolled back partial header insertion", "acquired", len(fresh), "requested", n)
			}
			return nil, err
		}
		fresh = append(fresh, segment.NewHeaderForLayout[T](x.layout, area, 0, 0))
	}

	oldLen := len(x.headers)
	x.headers = append(x.headers, make([]segment.Header[T], n)...)
	copy(x.headers[at+n:], x.headers[at:oldLen])
	copy(x.headers[at:at+n], fresh)
	return fresh, nil
}

// EraseHeaders removes headers[from:to], returning their areas to the pool.
// Callers must have already destructed any live elements those headers held.
func (x *Index[T]) EraseHeaders(from, to int) {
	if from >= to {
		return
	}
	for i := from; i < to; i++ {
		x.pool.Free(x.headers[i].Area())
	}
	x.headers = append(x.headers[:from], x.headers[to:]...)
}

// ValidateCoordinate reports an error if pos does not address a real
// segment or the sentinel.
func (x *Index[T]) ValidateCoordinate(pos int) error {
	if pos < 0 || pos > len(x.headers) {
		return segerrors.NewStaleCoordinateError()
	}
	return nil
}
