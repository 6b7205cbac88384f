package options

const (
	// Specifies the default segment capacity C. Chosen small enough to
	// exercise balancing frequently in default-configured containers while
	// still amortizing per-segment overhead.
	DefaultCapacity = 64

	// MinCapacity is the smallest segment capacity the engine accepts;
	// below this, the centering and minimum-occupancy invariants can't
	// both be satisfied for a non-trivial segment.
	MinCapacity = 2

	// Specifies the default header layout.
	DefaultHeaderLayout = HeaderLayoutBig

	// Specifies the default in-segment search strategy.
	DefaultSearchStrategy = SearchStrategyBinary

	// Specifies the default number of areas allocated together whenever
	// the block pool's free list runs dry.
	DefaultChunkSegments = 64

	// Specifies the default number of chunks pre-allocated eagerly at
	// pool construction.
	DefaultReserveChunks = 0
)

// Holds the default configuration settings for a segmented container.
var defaultOptions = Options{
	Capacity:        DefaultCapacity,
	HeaderLayout:    DefaultHeaderLayout,
	SearchStrategy:  DefaultSearchStrategy,
	DebugAssertions: false,
	AllocatorOptions: &allocatorOptions{
		ChunkSegments: DefaultChunkSegments,
		ReserveChunks: DefaultReserveChunks,
	},
}

func NewDefaultOptions() Options {
	opts := defaultOptions
	allocCopy := *defaultOptions.AllocatorOptions
	opts.AllocatorOptions = &allocCopy
	return opts
}
