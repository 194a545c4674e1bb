package tui

import (
	"github.com/charmbracelet/bubbles/key"

	listview "github.com/rshade/licensedesk/internal/tui/list"
)

// customerListKeyMap is declared once per view; the bindings never change
// when rows are re-rendered.
type customerListKeyMap struct {
	nav listview.KeyMap

	Search      key.Binding
	ClearSearch key.Binding
	Status      key.Binding
	Product     key.Binding
	Clear       key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	Delete      key.Binding
	Retry       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func newCustomerListKeyMap(nav listview.KeyMap) customerListKeyMap {
	return customerListKeyMap{
		nav:         nav,
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys(keyEsc), key.WithHelp("esc", "clear search")),
		Status:      key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "status")),
		Product:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "product")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete selected")),
		Retry:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys(keyCtrlC)),
	}
}

// ShortHelp implements help.KeyMap.
func (k customerListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Status, k.Product, k.Toggle, k.SelectAll, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k customerListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nav.Up, k.nav.Down, k.nav.PageUp, k.nav.PageDown, k.nav.Home, k.nav.End},
		{k.Search, k.ClearSearch, k.Status, k.Product, k.Clear},
		{k.Toggle, k.SelectAll, k.Delete, k.Retry},
		{k.Help, k.Quit},
	}
}
