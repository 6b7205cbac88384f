// Package segment defines the segment header: metadata describing one
// segment's live range [first, last) inside its backing area. Two layouts
// are provided behind a single Header interface, selected at container
// construction time (options.HeaderLayout):
//
//   - big:   (area, first, last) all stored inline in the header.
//   - small: the header stores the area reference and keeps (first, last)
//     in narrower int32 fields of the header itself, trading a little addressable
//     range (2^31 elements per segment, never a real limit at segment
//     capacity) for a smaller header footprint, the nearest Go analogue of
//     the original's "indices live in the area" layout without resorting
//     to unsafe byte-overlay tricks on a generic element type.
package segment

import (
	"github.com/iamNilotpal/segtree/internal/arena"
	"github.com/iamNilotpal/segtree/pkg/options"
)

// Header describes one segment: a reference to its backing area plus the
// [First, Last) indices bounding its live element run.
type Header[T any] interface {
	Area() *arena.Area[T]
	Data() []T

	First() int
	Last() int
	SetFirst(i int)
	SetLast(i int)

	Capacity() int
	Size() int
	FrontFree() int
	BackFree() int
	Available() int

	// Rebind replaces the header's area and resets its live range to
	// [first, last), letting a header be reused for another area. No
	// engine code calls it.
	Rebind(area *arena.Area[T], first, last int)
}

type bigHeader[T any] struct {
	area  *arena.Area[T]
	first int
	last  int
}

// NewBigHeader constructs a Header using the "big" (inline-indices) layout.
func NewBigHeader[T any](area *arena.Area[T], first, last int) Header[T] {
	return &bigHeader[T]{area: area, first: first, last: last}
}

func (h *bigHeader[T]) Area() *arena.Area[T] { return h.area }
func (h *bigHeader[T]) Data() []T            { return h.area.Slice() }
func (h *bigHeader[T]) First() int           { return h.first }
func (h *bigHeader[T]) Last() int            { return h.last }
func (h *bigHeader[T]) SetFirst(i int)       { h.first = i }
func (h *bigHeader[T]) SetLast(i int)        { h.last = i }
func (h *bigHeader[T]) Capacity() int        { return len(h.area.Slice()) }
func (h *bigHeader[T]) Size() int            { return h.last - h.first }
func (h *bigHeader[T]) FrontFree() int       { return h.first }
func (h *bigHeader[T]) BackFree() int        { return h.Capacity() - h.last }
func (h *bigHeader[T]) Available() int       { return h.Capacity() - h.Size() }

func (h *bigHeader[T]) Rebind(area *arena.Area[T], first, last int) {
	h.area, h.first, h.last = area, first, last
}

type smallHeader[T any] struct {
	area  *arena.Area[T]
	first int32
	last  int32
}

// NewSmallHeader constructs a Header using the "small" (packed-indices) layout.
func NewSmallHeader[T any](area *arena.Area[T], first, last int) Header[T] {
	return &smallHeader[T]{area: area, first: int32(first), last: int32(last)}
}

func (h *smallHeader[T]) Area() *arena.Area[T] { return h.area }
func (h *smallHeader[T]) Data() []T            { return h.area.Slice() }
func (h *smallHeader[T]) First() int           { return int(h.first) }
func (h *smallHeader[T]) Last() int            { return int(h.last) }
func (h *smallHeader[T]) SetFirst(i int)       { h.first = int32(i) }
func (h *smallHeader[T]) SetLast(i int)        { h.last = int32(i) }
func (h *smallHeader[T]) Capacity() int        { return len(h.area.Slice()) }
func (h *smallHeader[T]) Size() int            { return int(h.last - h.first) }
func (h *smallHeader[T]) FrontFree() int       { return int(h.first) }
func (h *smallHeader[T]) BackFree() int        { return h.Capacity() - int(h.last) }
func (h *smallHeader[T]) Available() int       { return h.Capacity() - h.Size() }

func (h *smallHeader[T]) Rebind(area *arena.Area[T], first, last int) {
	h.area, h.first, h.last = area, int32(first), int32(last)
}

// Limit returns the minimum live element count required of a non-first
// segment with the given capacity: L = floor(C/2).
func Limit(capacity int) int {
	return capacity / 2
}

// NewHeaderForLayout constructs a Header using the layout selected by opts.HeaderLayout.
func NewHeaderForLayout[T any](layout options.HeaderLayout, area *arena.Area[T], first, last int) Header[T] {
	if layout == options.HeaderLayoutSmall {
		return NewSmallHeader(area, first, last)
	}
	return NewBigHeader(area, first, last)
}
