package bulk

import (
	"errors"
	"fmt"
)

// ErrOutOfOrder is returned by Sequence.Record when the recorded item is not the one
// most recently handed out by Next.
var ErrOutOfOrder = errors.New("recorded item does not match the pending item")

// Failure is an item whose operation returned an error.
type Failure[T any] struct {
	Item T
	Err  error
}

// Result is the aggregated outcome of a sequential run.
type Result[T any] struct {
	Succeeded []T
	Failed    []Failure[T]
	Skipped   []T
}

// Attempted returns how many items had their operation invoked.
func (r Result[T]) Attempted() int {
	return len(r.Succeeded) + len(r.Failed)
}

// Sequence hands out items one at a time and records each outcome.
// It is not safe for concurrent use; it is designed to be driven by a single
// event loop where the next item is requested only after the previous outcome
// has been recorded.
type Sequence[T comparable] struct {
	items    []T
	next     int
	pending  bool
	result   Result[T]
	progress *Progress
}

// NewSequence creates a sequence over a copy of items.
func NewSequence[T comparable](items []T) *Sequence[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Sequence[T]{
		items:    cp,
		progress: NewProgress(len(cp)),
	}
}

// Next returns the next item to process. It returns false once every item has
// been handed out, or while a previously returned item is still unrecorded.
func (s *Sequence[T]) Next() (T, bool) {
	var zero T
	if s.pending || s.next >= len(s.items) {
		return zero, false
	}
	s.pending = true
	return s.items[s.next], true
}

// Record stores the outcome for the item last returned by Next.
func (s *Sequence[T]) Record(item T, err error) error {
	if !s.pending || s.items[s.next] != item {
		return fmt.Errorf("%w: %v", ErrOutOfOrder, item)
	}
	s.pending = false
	s.next++

	if err != nil {
		s.result.Failed = append(s.result.Failed, Failure[T]{Item: item, Err: err})
	} else {
		s.result.Succeeded = append(s.result.Succeeded, item)
	}
	s.progress.AddProcessed(err == nil)
	return nil
}

// Abandon marks every item not yet recorded as skipped and ends the sequence.
func (s *Sequence[T]) Abandon() {
	if s.next < len(s.items) {
		s.result.Skipped = append(s.result.Skipped, s.items[s.next:]...)
	}
	s.next = len(s.items)
	s.pending = false
}

// Done reports whether every item has been recorded or skipped.
func (s *Sequence[T]) Done() bool {
	return s.next >= len(s.items)
}

// Len returns the total number of items in the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Position returns the 1-based position of the pending item, or the number of
// recorded items when nothing is pending.
func (s *Sequence[T]) Position() int {
	if s.pending {
		return s.next + 1
	}
	return s.next
}

// Progress returns the progress tracker for the sequence.
func (s *Sequence[T]) Progress() *Progress {
	return s.progress
}

// Result returns the outcome so far.
func (s *Sequence[T]) Result() Result[T] {
	return s.result
}
