package customers

import "strings"

// FilterState is the predicate currently applied to the customer list.
// The zero value is not the default; use DefaultFilter.
type FilterState struct {
	// Status restricts rows to one status, or StatusAll for no restriction.
	Status Status
	// ProductID restricts rows to one product. Empty means any product.
	ProductID string
	// Search is matched case-insensitively as a substring of name, email or license key.
	Search string
}

// DefaultFilter returns the filter a list view starts with: active customers, no search.
func DefaultFilter() FilterState {
	return FilterState{Status: StatusActive}
}

// Normalized returns a copy with the search term and product trimmed and an empty
// status replaced by the default.
func (f FilterState) Normalized() FilterState {
	f.Search = strings.TrimSpace(f.Search)
	f.ProductID = strings.TrimSpace(f.ProductID)
	if f.Status == "" {
		f.Status = StatusActive
	}
	return f
}

// IsDefault reports whether f is equivalent to DefaultFilter.
func (f FilterState) IsDefault() bool {
	return f.Normalized() == DefaultFilter()
}

// Matches reports whether row satisfies every constraint of the filter.
func (f FilterState) Matches(row Row) bool {
	f = f.Normalized()

	if f.Status != StatusAll && row.Status != f.Status {
		return false
	}
	if f.ProductID != "" && row.ProductID != f.ProductID {
		return false
	}
	if f.Search == "" {
		return true
	}

	query := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(row.Name), query) ||
		strings.Contains(strings.ToLower(row.Email), query) ||
		strings.Contains(strings.ToLower(row.LicenseKey), query)
}

// Apply returns the rows that match f, preserving order.
// The result is never nil so callers can distinguish "no matches" from "not loaded".
func (f FilterState) Apply(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
