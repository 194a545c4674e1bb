package customers

// CheckState is the state of a three-state select-all checkbox.
type CheckState int

const (
	// Unchecked means no rendered row is selected.
	Unchecked CheckState = iota
	// Indeterminate means some but not all rendered rows are selected.
	Indeterminate
	// Checked means every rendered row is selected.
	Checked
)

// String returns the checkbox glyph used by the list view.
func (c CheckState) String() string {
	switch c {
	case Checked:
		return "[x]"
	case Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// Selection is the set of row IDs checked for a bulk action.
//
// A Selection is scoped to the rows of one render pass: Reset replaces the
// rendered set and empties the selection, and IDs that were not rendered can
// never be selected. After a failed fetch the rendered set is left alone, so
// the selection may refer to rows the backend no longer returns; treat it as
// a UI hint rather than an authoritative data set.
type Selection struct {
	rendered []string
	inRender map[string]struct{}
	selected map[string]struct{}
}

// NewSelection returns an empty selection over the given rows.
func NewSelection(rows []Row) *Selection {
	s := &Selection{}
	s.Reset(rows)
	return s
}

// Reset scopes the selection to rows and clears every selected ID.
func (s *Selection) Reset(rows []Row) {
	s.rendered = make([]string, 0, len(rows))
	s.inRender = make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, dup := s.inRender[r.ID]; dup {
			continue
		}
		s.rendered = append(s.rendered, r.ID)
		s.inRender[r.ID] = struct{}{}
	}
	s.selected = make(map[string]struct{})
}

// Toggle flips the selection of id and returns whether it is now selected.
// IDs outside the rendered set are ignored.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.inRender[id]; !ok {
		return false
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

// SetAll selects every rendered row when checked is true, otherwise clears the selection.
func (s *Selection) SetAll(checked bool) {
	s.selected = make(map[string]struct{}, len(s.rendered))
	if !checked {
		return
	}
	for _, id := range s.rendered {
		s.selected[id] = struct{}{}
	}
}

// Clear empties the selection without changing the rendered set.
func (s *Selection) Clear() {
	s.SetAll(false)
}

// IsSelected reports whether id is selected.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Count returns the number of selected rows.
func (s *Selection) Count() int {
	return len(s.selected)
}

// RenderedCount returns the number of rows in the current render pass.
func (s *Selection) RenderedCount() int {
	return len(s.rendered)
}

// IDs returns the selected IDs in render order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, id := range s.rendered {
		if _, ok := s.selected[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// State returns the select-all checkbox state for the current selection.
func (s *Selection) State() CheckState {
	switch n := s.Count(); {
	case n == 0:
		return Unchecked
	case n < s.RenderedCount():
		return Indeterminate
	default:
		return Checked
	}
}
