package exec

import "sync/atomic"

// Sequential runs every task in the caller's goroutine, one at a time
// (spec §4.11: "parallelism=1"). Deactivating it causes RequireActive, and
// any subsequent Call, to fail.
type Sequential struct {
	active atomic.Bool
}

var _ Context = (*Sequential)(nil)

// NewSequential returns an active Sequential context.
func NewSequential() *Sequential {
	s := &Sequential{}
	s.active.Store(true)
	return s
}

func (s *Sequential) IsActive() bool { return s.active.Load() }

func (s *Sequential) RequireActive() error {
	if !s.active.Load() {
		return activeErrorf("RequireActive")
	}
	return nil
}

func (s *Sequential) Parallelism() int { return 1 }

// Deactivate marks the context inactive; in-flight and future Call
// invocations observe this via RequireActive.
func (s *Sequential) Deactivate() { s.active.Store(false) }

// Call runs tasks one after another in the caller's goroutine. On the first
// error it stops submitting further tasks and returns that error; results
// for tasks that never ran are nil.
func (s *Sequential) Call(tasks []Task) ([]any, error) {
	results := make([]any, len(tasks))
	if err := s.RequireActive(); err != nil {
		return results, err
	}
	for i, t := range tasks {
		if err := s.RequireActive(); err != nil {
			return results, err
		}
		r, err := t(s)
		if err != nil {
			return results, err
		}
		results[i] = r
	}
	return results, nil
}
