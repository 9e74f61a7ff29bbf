package exec

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Parallel runs tasks concurrently up to a fixed worker limit using
// errgroup.Group (spec §4.11 notes the parallel pool itself is outside the
// core's boundary; this is the pack's own implementation for tests and
// benchmarks that want real concurrency). On the first task error, the
// group's derived context is cancelled and tasks that have not started yet
// are skipped. Tasks already running are not interrupted: RequireActive
// reports only Deactivate, not a sibling's failure.
type Parallel struct {
	workers int
	active  atomic.Bool
}

var _ Context = (*Parallel)(nil)

// NewParallel returns an active Parallel context limited to workers
// concurrent tasks (workers <= 0 means unlimited, matching errgroup.Group's
// SetLimit(-1) semantics).
func NewParallel(workers int) *Parallel {
	p := &Parallel{workers: workers}
	p.active.Store(true)
	return p
}

func (p *Parallel) IsActive() bool { return p.active.Load() }

func (p *Parallel) RequireActive() error {
	if !p.active.Load() {
		return activeErrorf("RequireActive")
	}
	return nil
}

// Parallelism returns the workers limit, or 1 when the limit is unbounded.
func (p *Parallel) Parallelism() int {
	if p.workers <= 0 {
		return 1
	}
	return p.workers
}

// Deactivate marks the context inactive; in-flight and future Call
// invocations observe this via RequireActive.
func (p *Parallel) Deactivate() { p.active.Store(false) }

// Call runs tasks concurrently (at most the workers limit at once, unbounded
// when that limit is <= 0), returning results in the same order as tasks.
// The first task error cancels the errgroup's derived context and is the
// error Call returns; tasks not yet started at that point are skipped. A
// caller-visible deactivation (Deactivate) surfaces via RequireActive
// inside each task.
func (p *Parallel) Call(tasks []Task) ([]any, error) {
	results := make([]any, len(tasks))
	if err := p.RequireActive(); err != nil {
		return results, err
	}

	g, gctx := errgroup.WithContext(context.Background())
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.RequireActive(); err != nil {
				return err
			}
			r, err := t(p)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
