package customers

import (
	"github.com/rshade/licensedesk/internal/bulk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts with thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// DeleteFailure records why a single customer could not be deleted.
type DeleteFailure struct {
	ID  string
	Err error
}

// DeleteSummary aggregates the outcome of a bulk delete.
type DeleteSummary struct {
	Deleted  int
	Failed   int
	Skipped  int
	Failures []DeleteFailure
}

// NewDeleteSummary converts the outcome of a sequential delete run keyed by
// customer ID.
func NewDeleteSummary(result bulk.Result[string]) DeleteSummary {
	summary := DeleteSummary{
		Deleted: len(result.Succeeded),
		Failed:  len(result.Failed),
		Skipped: len(result.Skipped),
	}
	for _, f := range result.Failed {
		summary.Failures = append(summary.Failures, DeleteFailure{ID: f.Item, Err: f.Err})
	}
	return summary
}

// Attempted returns how many delete requests were actually issued.
func (s DeleteSummary) Attempted() int {
	return s.Deleted + s.Failed
}

// String renders the one-line notification shown after a bulk delete,
// e.g. "Deleted 4, 1 failed".
func (s DeleteSummary) String() string {
	msg := printer.Sprintf("Deleted %d", s.Deleted)
	if s.Failed > 0 {
		msg += printer.Sprintf(", %d failed", s.Failed)
	}
	if s.Skipped > 0 {
		msg += printer.Sprintf(", %d not attempted", s.Skipped)
	}
	return msg
}

// FormatCount formats n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
