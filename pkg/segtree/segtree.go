// Package segtree is the top-level entry point for the segmented ordered
// container engine: construct an Instance, then open typed Multiset or
// Multimap containers from it. An Instance bundles a logger and a default
// set of options so a process can open many containers without repeating
// logger wiring at every call site.
package segtree

import (
	"context"

	"go.uber.org/zap"

	"github.com/iamNilotpal/segtree/internal/engine"
	"github.com/iamNilotpal/segtree/pkg/options"
	"github.com/iamNilotpal/segtree/pkg/ordered"
)

// Instance is a configured handle for opening segmented ordered containers.
// It holds no data itself; each Multiset/Multimap opened from it owns its
// own segment index and allocator pool.
type Instance struct {
	engine  *engine.Engine
	options *options.Options
}

// New creates an Instance for the named service, applying any functional
// options over the library defaults.
func New(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	log, err := newLogger(service)
	if err != nil {
		return nil, err
	}

	defaultOpts := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&defaultOpts)
	}
	if err := defaultOpts.Validate(); err != nil {
		return nil, err
	}

	eng, err := engine.New(ctx, &engine.Config{Logger: log, Options: &defaultOpts})
	if err != nil {
		return nil, err
	}
	return &Instance{engine: eng, options: &defaultOpts}, nil
}

// NewMultiset opens a Multiset[T] using this Instance's configured options
// and logger, sorted by less.
func NewMultiset[T any](i *Instance, less ordered.Less[T]) (*ordered.Multiset[T], error) {
	return ordered.NewMultiset(ordered.Config[T]{Options: i.options, Less: less, Logger: i.engine.Logger()})
}

// NewMultimap opens a Multimap[K, V] using this Instance's configured
// options and logger, keys sorted by less.
func NewMultimap[K, V any](i *Instance, less ordered.Less[K]) (*ordered.Multimap[K, V], error) {
	return ordered.NewMultimap(ordered.MultimapConfig[K, V]{Options: i.options, Less: less, Logger: i.engine.Logger()})
}

// Close releases the Instance's engine-level resources. Containers opened
// from it remain usable after Close; Close only tears down the shared
// logger/lifecycle state, since each container owns its own pool.
func (i *Instance) Close(ctx context.Context) error {
	return i.engine.Close()
}

func newLogger(service string) (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().With("service", service), nil
}
