// Package bulk runs one operation per item, strictly one after another, and
// aggregates the outcome.
//
// Unlike a fail-fast batch, every item is attempted exactly once regardless of
// earlier failures; the caller receives a Result listing what succeeded, what
// failed (with the error) and what was never attempted because the context was
// cancelled. Sequential execution bounds the load placed on the backend at the
// cost of latency that grows linearly with the number of items.
//
// Two entry points share the same bookkeeping:
//   - Runner.Run drives the whole sequence in the calling goroutine (CLI use).
//   - Sequence is stepped manually, one item per event, by the list view so
//     that each request completes before the next is issued on its event loop.
package bulk
