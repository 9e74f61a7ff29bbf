package exec

import "sync"

// SingleThreaded wraps an underlying Context and serializes Call against
// it with a mutex, while forwarding IsActive/RequireActive/Parallelism
// unchanged (spec §4.11's "single-threaded wrapper"). Useful for adapting
// a context that otherwise permits concurrent Call invocations into one
// that processes them one at a time.
type SingleThreaded struct {
	mu  sync.Mutex
	ctx Context
}

var _ Context = (*SingleThreaded)(nil)

func NewSingleThreaded(ctx Context) *SingleThreaded {
	return &SingleThreaded{ctx: ctx}
}

func (s *SingleThreaded) IsActive() bool      { return s.ctx.IsActive() }
func (s *SingleThreaded) RequireActive() error { return s.ctx.RequireActive() }
func (s *SingleThreaded) Parallelism() int    { return s.ctx.Parallelism() }

func (s *SingleThreaded) Call(tasks []Task) ([]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Call(tasks)
}
