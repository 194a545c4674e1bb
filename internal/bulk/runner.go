package bulk

import (
	"context"
	"errors"
)

// ErrNilOperation is returned when Run is called without an operation.
var ErrNilOperation = errors.New("bulk operation cannot be nil")

// Operation processes a single item.
type Operation[T any] func(ctx context.Context, item T) error

// ProgressCallback is invoked after each item is recorded.
type ProgressCallback func(snapshot ProgressSnapshot)

// Runner applies an Operation to each item sequentially.
type Runner[T comparable] struct {
	onProgress ProgressCallback
}

// NewRunner creates a sequential runner.
func NewRunner[T comparable]() *Runner[T] {
	return &Runner[T]{}
}

// WithProgressCallback sets a callback invoked after every item.
func (r *Runner[T]) WithProgressCallback(callback ProgressCallback) *Runner[T] {
	r.onProgress = callback
	return r
}

// Run invokes op once per item, in order, waiting for each call to return
// before starting the next. Errors from op never stop the run; they are
// collected in the Result. If ctx is cancelled, remaining items are reported as
// skipped and ctx.Err() is returned alongside the partial Result.
func (r *Runner[T]) Run(ctx context.Context, items []T, op Operation[T]) (Result[T], error) {
	if op == nil {
		return Result[T]{}, ErrNilOperation
	}

	seq := NewSequence(items)
	for {
		if err := ctx.Err(); err != nil {
			seq.Abandon()
			return seq.Result(), err
		}

		item, ok := seq.Next()
		if !ok {
			break
		}

		opErr := op(ctx, item)
		// Record cannot fail here: item is exactly what Next returned.
		_ = seq.Record(item, opErr)

		if r.onProgress != nil {
			r.onProgress(seq.Progress().Snapshot())
		}
	}

	return seq.Result(), nil
}
