// Package options provides data structures and functions for configuring
// the segmented container engine. It defines the parameters that control
// segment capacity, header layout, in-segment search strategy, the block
// pool allocator's chunk size, and a debug-assertions flag.
package options

// HeaderLayout selects how a segment header stores its first/last indices.
type HeaderLayout int

const (
	// HeaderLayoutBig stores (areaPtr, first, last) inline in the header,
	// with int-sized indices.
	HeaderLayoutBig HeaderLayout = iota

	// HeaderLayoutSmall also stores the area reference and (first, last)
	// in the header, with the indices packed into int32 fields for a
	// smaller header. The indices are not kept inside the area.
	HeaderLayoutSmall
)

// SearchStrategy names an in-segment search for the step after a two-level
// bound query narrows to a single candidate segment. The value is validated
// and stored in Options, but the bound queries in internal/cursor do not
// read it: they always binary-search within the candidate segment.
type SearchStrategy int

const (
	// SearchStrategyLinear names an element-by-element scan of the
	// candidate segment.
	// Preferable for small capacities where branch mispredicts on binary
	// search outweigh the asymptotic win.
	SearchStrategyLinear SearchStrategy = iota

	// SearchStrategyBinary binary-searches the candidate segment.
	SearchStrategyBinary
)

// Defines configurable parameters for the block pool allocator backing
// segment areas.
type allocatorOptions struct {
	// ChunkSegments is the number of areas allocated together whenever the
	// pool's free list runs dry.
	//
	//  - Default: 64
	//  - Minimum: 1
	ChunkSegments int `json:"chunkSegments"`

	// ReserveChunks is the number of chunks pre-allocated eagerly when the
	// pool is constructed, avoiding allocation latency on first use.
	//
	// Default: 0
	ReserveChunks int `json:"reserveChunks"`
}

// Defines the configuration parameters for a segmented ordered container.
type Options struct {
	// Capacity is the fixed number of element slots per segment area (C in
	// the engine's invariants). Limit L = Capacity / 2.
	//
	// Default: 64
	Capacity int `json:"capacity"`

	// HeaderLayout selects how segment headers store their indices.
	//
	// Default: HeaderLayoutBig
	HeaderLayout HeaderLayout `json:"headerLayout"`

	// SearchStrategy names the in-segment search for the two-level bound
	// queries. It is validated but not read by them; they always
	// binary-search.
	//
	// Default: SearchStrategyBinary
	SearchStrategy SearchStrategy `json:"searchStrategy"`

	// DebugAssertions is carried with the options, but no engine or facade
	// code reads it: no invariant-checking pass runs after mutations.
	//
	// Default: false
	DebugAssertions bool `json:"debugAssertions"`

	// AllocatorOptions configures the block pool allocator backing
	// segment areas.
	AllocatorOptions *allocatorOptions `json:"allocatorOptions"`
}

// OptionFunc is a function type that modifies the container's configuration.
type OptionFunc func(*Options)

// Applies a predefined set of default configuration values to the Options struct.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.Capacity = opts.Capacity
		o.HeaderLayout = opts.HeaderLayout
		o.SearchStrategy = opts.SearchStrategy
		o.DebugAssertions = opts.DebugAssertions
		o.AllocatorOptions = opts.AllocatorOptions
	}
}

// Sets the segment capacity C. Values below 2 are rejected by
// options.Validate rather than silently clamped here, since an invalid
// capacity is a configuration bug the caller should learn about.
func WithCapacity(capacity int) OptionFunc {
	return func(o *Options) {
		o.Capacity = capacity
	}
}

// Sets which header layout the segment index uses.
func WithHeaderLayout(layout HeaderLayout) OptionFunc {
	return func(o *Options) {
		o.HeaderLayout = layout
	}
}

// Sets Options.SearchStrategy, which the two-level bound queries do not read.
func WithSearchStrategy(strategy SearchStrategy) OptionFunc {
	return func(o *Options) {
		o.SearchStrategy = strategy
	}
}

// Sets Options.DebugAssertions, which no engine code reads.
func WithDebugAssertions(enabled bool) OptionFunc {
	return func(o *Options) {
		o.DebugAssertions = enabled
	}
}

// Sets the number of areas allocated together whenever the block pool's
// free list runs dry.
func WithChunkSegments(n int) OptionFunc {
	return func(o *Options) {
		if n > 0 {
			o.AllocatorOptions.ChunkSegments = n
		}
	}
}

// Sets the number of chunks pre-allocated eagerly at pool construction.
func WithReserveChunks(n int) OptionFunc {
	return func(o *Options) {
		if n >= 0 {
			o.AllocatorOptions.ReserveChunks = n
		}
	}
}
