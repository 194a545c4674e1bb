package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders a single item. The cursor parameter reports whether the
// item sits under the cursor.
type RenderFunc[T any] func(item T, cursor bool) string

// KeyMap holds the navigation bindings understood by Model.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, page and vim-style navigation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
	}
}

// Model is a cursor-driven list that only renders the rows inside its
// viewport, so long customer lists stay cheap to redraw.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	keys   KeyMap

	cursor      int
	visibleFrom int
	visibleTo   int
	height      int
	width       int

	emptyText string
}

// New creates a list over items with the given viewport size.
func New[T any](items []T, height, width int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:  items,
		render: render,
		keys:   DefaultKeyMap(),
		height: height,
		width:  width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.SetCursor(m.cursor - m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.SetCursor(m.cursor + m.height)
	case key.Matches(msg, m.keys.Home):
		m.SetCursor(0)
	case key.Matches(msg, m.keys.End):
		m.SetCursor(len(m.items) - 1)
	}
}

// SetItems replaces the list contents. The cursor keeps its index, clamped
// to the new length.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetCursor(m.cursor)
}

// SetSize changes the viewport dimensions.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// SetEmptyText sets the text rendered when the list has no items.
func (m *Model[T]) SetEmptyText(text string) {
	m.emptyText = text
}

// SetCursor moves the cursor, clamping to valid bounds.
func (m *Model[T]) SetCursor(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.cursor = 0
	case index >= len(m.items):
		m.cursor = len(m.items) - 1
	default:
		m.cursor = index
	}
	m.updateVisibleRange()
}

// updateVisibleRange keeps the cursor inside the viewport, centering it
// when the list is long enough.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.cursor - m.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom, m.visibleTo = from, to
}

// View renders the rows inside the viewport.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return m.emptyText
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.render(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// Len returns the total number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the cursor index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// CursorItem returns the item under the cursor, or false when the list is empty.
func (m *Model[T]) CursorItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.cursor], true
}

// Items returns the list contents.
func (m *Model[T]) Items() []T {
	return m.items
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// KeyMap returns the navigation bindings, for help rendering.
func (m *Model[T]) KeyMap() KeyMap {
	return m.keys
}
