package customers

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a customer's license as reported by the backend.
type Status string

const (
	// StatusActive is a customer with a usable license.
	StatusActive Status = "active"
	// StatusSuspended is a customer whose license is temporarily disabled.
	StatusSuspended Status = "suspended"
	// StatusRevoked is a customer whose license has been permanently revoked.
	StatusRevoked Status = "revoked"
	// StatusAll is only meaningful as a filter value and matches every status.
	StatusAll Status = "all"
)

// statusCycle is the order in which the list view steps through status filters.
//
//nolint:gochecknoglobals // Fixed lookup table.
var statusCycle = []Status{StatusActive, StatusSuspended, StatusRevoked, StatusAll}

// ParseStatus converts user input into a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusSuspended:
		return StatusSuspended, nil
	case StatusRevoked:
		return StatusRevoked, nil
	case StatusAll:
		return StatusAll, nil
	default:
		return "", fmt.Errorf("invalid status %q: must be one of active, suspended, revoked, all", s)
	}
}

// Next returns the status that follows s when cycling through filter values.
func (s Status) Next() Status {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusActive
}

// RowStatuses returns the concrete statuses a row can have (StatusAll excluded).
func RowStatuses() []Status {
	return []Status{StatusActive, StatusSuspended, StatusRevoked}
}

// Row is one customer as returned by GET /customers.
// It is treated as an immutable snapshot for the duration of one render.
type Row struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProductID  string `json:"product_id,omitempty"`
	Status     Status `json:"status"`
	LicenseKey string `json:"license_key,omitempty"`
}
