package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/licensedesk/internal/customers"
)

// Sortable customer fields.
const (
	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldProduct = "product"
	FieldStatus  = "status"
)

// CustomerSorter sorts customer rows by a named field.
type CustomerSorter struct {
	validFields map[string]bool
}

// NewCustomerSorter creates a sorter with the supported fields.
func NewCustomerSorter() *CustomerSorter {
	return &CustomerSorter{
		validFields: map[string]bool{
			FieldID:      true,
			FieldName:    true,
			FieldEmail:   true,
			FieldProduct: true,
			FieldStatus:  true,
		},
	}
}

// IsValidField reports whether field can be sorted on.
func (s *CustomerSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// ValidFields returns the sortable fields in alphabetical order.
func (s *CustomerSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField for fields the sorter does not know.
// An empty field means "keep backend order" and is valid.
func (s *CustomerSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
}

// Sort returns a sorted copy of rows. Text fields compare case-insensitively
// and ties keep backend order. Unknown fields return rows unchanged.
func (s *CustomerSorter) Sort(rows []customers.Row, field, order string) []customers.Row {
	if !s.IsValidField(field) {
		return rows
	}

	sorted := make([]customers.Row, len(rows))
	copy(sorted, rows)

	key := func(r customers.Row) string {
		switch field {
		case FieldID:
			return r.ID
		case FieldName:
			return strings.ToLower(r.Name)
		case FieldEmail:
			return strings.ToLower(r.Email)
		case FieldProduct:
			return r.ProductID
		default:
			return string(r.Status)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			return key(sorted[j]) < key(sorted[i])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}
