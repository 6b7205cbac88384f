// Package arena implements the block pool allocator backing segment areas:
// a fixed-size block allocator that grows in chunks of ChunkSegments areas, returning raw
// storage for segment bodies and reclaiming it onto a free list when a
// segment is destroyed.
//
// The original C++ allocator threads its free list through the blocks
// themselves — each free block's first pointer-sized prefix holds the next
// free block's address, via reinterpret_cast over raw bytes. Go slices
// cannot be reinterpreted as pointers, so the free-list link lives beside
// the backing slice instead of inside it: every allocated Area carries its
// own `next` field, used only while the Area sits on the free list. This is
// the direct Go-idiomatic analogue of the byte-prefix free list.
package arena

import (
	"go.uber.org/zap"

	segerrors "github.com/iamNilotpal/segtree/pkg/errors"
)

// Area is one segment's backing storage: a capacity-C slice plus the
// free-list link used while the area is not in use by any segment.
type Area[T any] struct {
	data []T
	next *Area[T]
}

// Slice returns the area's backing storage. Its length is always the
// pool's configured capacity; callers address live elements through
// first/last indices, not through len/cap of the returned slice.
func (a *Area[T]) Slice() []T {
	return a.data
}

// Config holds the parameters needed to construct a Pool.
type Config struct {
	// Capacity is the number of element slots per area (segment capacity C).
	Capacity int

	// ChunkSegments is how many areas are allocated together whenever the
	// free list runs dry.
	ChunkSegments int

	// ReserveChunks pre-allocates this many chunks eagerly at construction.
	ReserveChunks int

	Logger *zap.SugaredLogger
}

// Pool is a fixed-size block allocator for segment areas of one capacity.
type Pool[T any] struct {
	capacity      int
	chunkSegments int
	log           *zap.SugaredLogger

	free            *Area[T]
	chunksAllocated int
}

// NewPool constructs a Pool, eagerly allocating cfg.ReserveChunks chunks.
func NewPool[T any](cfg Config) (*Pool[T], error) {
	p := &Pool[T]{
		capacity:      cfg.Capacity,
		chunkSegments: cfg.ChunkSegments,
		log:           cfg.Logger,
	}
	for i := 0; i < cfg.ReserveChunks; i++ {
		if err := p.addChunk(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// addChunk allocates chunkSegments new areas and threads them onto the
// front of the free list.
func (p *Pool[T]) addChunk() error {
	chunk := make([]Area[T], p.chunkSegments)
	for i := range chunk {
		chunk[i].data = make([]T, p.capacity)
		chunk[i].next = p.free
		p.free = &chunk[i]
	}
	p.chunksAllocated++
	if p.log != nil {
		p.log.Debugw("arena: allocated chunk", "chunkIndex", p.chunksAllocated-1, "segments", p.chunkSegments)
	}
	return nil
}

// Allocate pops the head of the free list, growing the pool by one chunk
// first if the free list is empty.
func (p *Pool[T]) Allocate() (*Area[T], error) {
	if p.free == nil {
		if err := p.addChunk(); err != nil {
			return nil, segerrors.NewChunkAllocationError(err, p.chunksAllocated, p.capacity)
		}
	}
	a := p.free
	p.free = a.next
	a.next = nil
	return a, nil
}

// Free returns an area to the pool. The caller must not retain any
// reference to the area's data after this call; the slots are zeroed so a
// generic T holding pointers does not keep stale elements reachable.
func (p *Pool[T]) Free(a *Area[T]) {
	if a == nil {
		return
	}
	var zero T
	for i := range a.data {
		a.data[i] = zero
	}
	a.next = p.free
	p.free = a
}

// Capacity returns the fixed number of slots in every area this pool hands out.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// NewEmptyArea returns a zero-capacity area that is never handed out by a
// Pool and never recycled through Free. It backs the segment index's
// trailing sentinel, which owns no area in the empty-container state but
// must still be dereferenceable as an always-empty segment.
func NewEmptyArea[T any]() *Area[T] {
	return &Area[T]{data: []T{}}
}
