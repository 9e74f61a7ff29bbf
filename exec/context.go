package exec

import (
	"fmt"

	"github.com/vectorframe/column/core"
)

// Task is a unit of cancellable work submitted to Context.Call. It receives
// the governing context so it can cooperatively check activity via
// ctx.RequireActive (spec §4.11: "a task must periodically call
// requireActive() to remain cancellable").
type Task func(ctx Context) (any, error)

// Context is the C12 execution contract (spec §4.11).
type Context interface {
	// IsActive reports whether the context is still accepting/running work.
	IsActive() bool
	// RequireActive returns core.ErrExecutionAborted if the context has been
	// deactivated, nil otherwise.
	RequireActive() error
	// Parallelism reports how many tasks this context may run concurrently.
	Parallelism() int
	// Call runs every task, returning results in the same order as tasks,
	// blocking until all finish. On the first failure, remaining tasks are
	// requested to cancel and the reported error is the first observed.
	Call(tasks []Task) ([]any, error)
}

func activeErrorf(op string) error {
	return fmt.Errorf("exec: %s: %w", op, core.ErrExecutionAborted)
}
