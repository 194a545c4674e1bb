package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/licensedesk/internal/tui/list"
)

func plainRender(item string, cursor bool) string {
	if cursor {
		return "> " + item
	}
	return "  " + item
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item%d", i)
	}
	return items
}

func TestModel_New(t *testing.T) {
	m := listview.New(makeItems(5), 20, 80, plainRender)

	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())
}

func TestModel_VisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		height     int
		cursor     int
		expectFrom int
		expectTo   int
	}{
		{name: "first page", total: 100, height: 20, cursor: 0, expectFrom: 0, expectTo: 20},
		{name: "middle page", total: 100, height: 20, cursor: 50, expectFrom: 40, expectTo: 60},
		{name: "last page", total: 100, height: 20, cursor: 99, expectFrom: 80, expectTo: 100},
		{name: "fewer items than viewport", total: 10, height: 20, cursor: 5, expectFrom: 0, expectTo: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := listview.New(makeItems(tt.total), tt.height, 80, plainRender)
			m.SetCursor(tt.cursor)

			assert.Equal(t, tt.expectFrom, m.VisibleFrom())
			assert.Equal(t, tt.expectTo, m.VisibleTo())
		})
	}
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		expect int
	}{
		{name: "down", keys: []tea.KeyMsg{{Type: tea.KeyDown}}, expect: 1},
		{name: "vim down twice", keys: []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
		}, expect: 2},
		{name: "up at top stays", keys: []tea.KeyMsg{{Type: tea.KeyUp}}, expect: 0},
		{name: "page down", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, expect: 10},
		{name: "end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, expect: 49},
		{name: "end then home", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, expect: 0},
		{name: "G", keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'G'}}}, expect: 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := listview.New(makeItems(50), 10, 80, plainRender)
			for _, k := range tt.keys {
				m.Update(k)
			}
			assert.Equal(t, tt.expect, m.Cursor())
		})
	}
}

func TestModel_SetItemsClampsCursor(t *testing.T) {
	m := listview.New(makeItems(10), 5, 80, plainRender)
	m.SetCursor(8)

	m.SetItems(makeItems(3))
	assert.Equal(t, 2, m.Cursor())

	m.SetItems(nil)
	assert.Equal(t, 0, m.Cursor())
	_, ok := m.CursorItem()
	assert.False(t, ok)
}

func TestModel_ViewRendersOnlyViewport(t *testing.T) {
	m := listview.New(makeItems(1000), 5, 80, plainRender)
	m.SetCursor(500)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines, "> item500")
	assert.Equal(t, "  item498", lines[0])
}

func TestModel_EmptyText(t *testing.T) {
	m := listview.New[string](nil, 5, 80, plainRender)
	assert.Empty(t, m.View())

	m.SetEmptyText("nothing here")
	assert.Equal(t, "nothing here", m.View())
}

func TestModel_WindowResize(t *testing.T) {
	m := listview.New(makeItems(100), 5, 80, plainRender)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 30, m.Height())
	assert.Equal(t, 30, m.VisibleTo())
}
