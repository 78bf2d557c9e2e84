// Package execctx implements the "Context" collaborator of spec.md §5/§6:
// progress reporting, subtask scoping, recommended task/range counts, and a
// cancellation flag, backed by a standard context.Context and the
// workerpool.Pool that actually runs the parallel ranges of an elementary
// pass (C3).
package execctx

import (
	"context"

	"github.com/ajroetker/gomorph/config"
	"github.com/ajroetker/gomorph/morph/contrib/workerpool"
)

// Context bundles a cancellation-aware context.Context, a worker pool, and
// the planner configuration, plus an optional progress callback. A single
// dilation/erosion call creates one Context and threads it through every
// pass; Part carves out a sub-Context for one frame of work (e.g. one
// complex-summand recursion, §4.4 step 3) so progress nests correctly.
type Context struct {
	std      context.Context
	pool     *workerpool.Pool
	cfg      config.Config
	progress func(done, total int)

	partFrom, partTo float64 // this Context's share of the parent's [0,1] progress range
}

// New creates a root Context covering the full [0,1] progress range.
func New(std context.Context, pool *workerpool.Pool, cfg config.Config, progress func(done, total int)) *Context {
	if std == nil {
		std = context.Background()
	}
	return &Context{std: std, pool: pool, cfg: cfg, progress: progress, partTo: 1}
}

// Part returns a sub-Context scoped to report progress as the [from, to]
// slice of this Context's own range — spec.md §6's "subtask scoping
// (part(from, to) -> Context)". from and to are fractions of this Context's
// own [0,1] range.
func (c *Context) Part(from, to float64) *Context {
	span := c.partTo - c.partFrom
	return &Context{
		std:      c.std,
		pool:     c.pool,
		cfg:      c.cfg,
		progress: c.progress,
		partFrom: c.partFrom + from*span,
		partTo:   c.partFrom + to*span,
	}
}

// Pool returns the worker pool backing parallel passes.
func (c *Context) Pool() *workerpool.Pool { return c.pool }

// Config returns the planner configuration in effect.
func (c *Context) Config() config.Config { return c.cfg }

// Std returns the underlying standard context, for passing to
// workerpool.Pool.ParallelForRanges or any other cancellation-aware API.
func (c *Context) Std() context.Context { return c.std }

// Cancelled reports whether the context has been cancelled. The core checks
// this between passes (§5's "Cancellation and timeouts"): mid-pass
// cancellation is handled by ParallelForRanges itself via errgroup.
func (c *Context) Cancelled() bool {
	return c.std.Err() != nil
}

// RecommendedRanges returns how many parallel ranges a pass of length n
// should use, per the configuration's caps and the pool's worker count.
func (c *Context) RecommendedRanges(n int) int {
	workers := 1
	if c.pool != nil {
		workers = c.pool.NumWorkers()
	}
	return c.cfg.RecommendedRanges(n, workers)
}

// ReportProgress reports done/total work units completed within this
// Context's own scope, remapped into the root Context's [0,1] range. A nil
// progress callback makes this a no-op.
func (c *Context) ReportProgress(done, total int) {
	if c.progress == nil || total <= 0 {
		return
	}
	span := c.partTo - c.partFrom
	// Report in parts-per-million of the full [0,1] range so callers get a
	// single monotonically increasing counter regardless of nesting depth.
	const scale = 1_000_000
	overall := int(c.partFrom*scale + span*scale*float64(done)/float64(total))
	c.progress(overall, scale)
}
