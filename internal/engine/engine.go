// Package engine provides the shared lifecycle wrapper around a segmented
// container instance: the logger and options a segtree.Instance hands to
// every Multiset/Multimap it opens, plus the atomic open/closed state that
// guards against use after Close.
//
// The engine itself owns no segment data — each container opened through
// pkg/segtree or pkg/ordered constructs its own allocator pool and index.
// What the engine centralizes is configuration and the closed/open
// lifecycle signal shared across containers opened from the same Instance.
package engine

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/segtree/pkg/options"
)

// ErrEngineClosed is returned when attempting to use an engine after Close.
var ErrEngineClosed = errors.New("operation failed: cannot access closed engine")

// Engine holds the configuration and lifecycle state shared by every
// container opened from one segtree.Instance.
type Engine struct {
	options *options.Options
	log     *zap.SugaredLogger
	closed  atomic.Bool
}

// Config holds the parameters needed to construct a new Engine instance.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New validates config.Options and returns a ready-to-use Engine.
func New(ctx context.Context, config *Config) (*Engine, error) {
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}
	return &Engine{options: config.Options, log: config.Logger}, nil
}

// Options returns the configuration every container opened from this
// engine inherits by default.
func (e *Engine) Options() *options.Options { return e.options }

// Logger returns the structured logger every container opened from this
// engine shares.
func (e *Engine) Logger() *zap.SugaredLogger { return e.log }

// Closed reports whether Close has already been called.
func (e *Engine) Closed() bool { return e.closed.Load() }

// Close transitions the engine from open to closed. It is safe to call
// concurrently; only the first caller gets a nil error.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}
	if e.log != nil {
		e.log.Infow("engine: closed")
	}
	return nil
}
