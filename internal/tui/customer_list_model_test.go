package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/licensedesk/internal/api"
	"github.com/rshade/licensedesk/internal/api/apitest"
	"github.com/rshade/licensedesk/internal/customers"
	"github.com/rshade/licensedesk/internal/session"
)

// fakeService returns every stored row and lets the model filter client-side.
type fakeService struct {
	mu         sync.Mutex
	rows       []customers.Row
	listErr    error
	deleteErrs map[string]error
	listCalls  []customers.FilterState
	deleted    []string
}

func newFakeService(rows ...customers.Row) *fakeService {
	return &fakeService{rows: rows, deleteErrs: make(map[string]error)}
}

func (f *fakeService) ListCustomers(_ context.Context, filter customers.FilterState) ([]customers.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]customers.Row(nil), f.rows...), nil
}

func (f *fakeService) DeleteCustomer(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if err := f.deleteErrs[id]; err != nil {
		return err
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeService) calls() []customers.FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]customers.FilterState(nil), f.listCalls...)
}

func activeRow(id, name string) customers.Row {
	return customers.Row{
		ID:         id,
		Name:       name,
		Email:      id + "@example.com",
		ProductID:  "prod-1",
		Status:     customers.StatusActive,
		LicenseKey: "KEY-" + id,
	}
}

func newTestModel(t *testing.T, svc CustomerService) *CustomerListModel {
	t.Helper()
	m := NewCustomerListModel(context.Background(), svc, CustomerListOptions{
		Debounce: time.Millisecond,
		Logger:   zerolog.Nop(),
	})
	m.searchInput.Cursor.SetMode(cursor.CursorStatic)
	m.productInput.Cursor.SetMode(cursor.CursorStatic)
	return m
}

// drain executes cmd and every command it produces, feeding the model's own
// messages back into Update until nothing is left.
func drain(t *testing.T, m *CustomerListModel, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 1000, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case customersFetchedMsg, searchDebounceMsg, customerDeletedMsg:
			_, c := m.Update(msg)
			queue = append(queue, c)
		}
	}
}

func press(t *testing.T, m *CustomerListModel, keys ...string) {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case keyEnter:
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case keyEsc:
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case keyCtrlC:
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := m.Update(msg)
		drain(t, m, cmd)
	}
}

func rowIDs(rows []customers.Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestNewCustomerListModel(t *testing.T) {
	m := newTestModel(t, newFakeService())

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Equal(t, customers.DefaultFilter(), m.Filter())
	assert.Equal(t, customers.Unchecked, m.SelectAllState())
	assert.Equal(t, DefaultDebounce, NewCustomerListModel(context.Background(), newFakeService(),
		CustomerListOptions{}).debounce)
}

func TestCustomerList_InitFetchesWithDefaults(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)

	cmd := m.Init()
	assert.Equal(t, PhaseLoading, m.Phase())
	drain(t, m, cmd)

	require.Len(t, svc.calls(), 1)
	assert.Equal(t, customers.DefaultFilter(), svc.calls()[0])
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Equal(t, []string{"1"}, rowIDs(m.Rows()))
}

func TestCustomerList_StatusThenSearchScenario(t *testing.T) {
	revoked := activeRow("2", "Bob")
	revoked.Status = customers.StatusRevoked
	svc := newFakeService(activeRow("1", "Ann"), revoked)
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	assert.Equal(t, []string{"1"}, rowIDs(m.Rows()))

	drain(t, m, m.SetSearchTerm("zzz"))

	assert.Empty(t, m.Rows())
	assert.Contains(t, m.View(), EmptyPlaceholder)
	assert.Equal(t, customers.Unchecked, m.SelectAllState())
}

func TestCustomerList_RenderedRowsMatchFilter(t *testing.T) {
	suspended := activeRow("2", "Bob")
	suspended.Status = customers.StatusSuspended
	otherProduct := activeRow("3", "Cleo")
	otherProduct.ProductID = "prod-2"
	rows := []customers.Row{activeRow("1", "Ann"), suspended, otherProduct}

	tests := []struct {
		name   string
		apply  func(m *CustomerListModel) tea.Cmd
		expect []string
	}{
		{
			name:   "status suspended",
			apply:  func(m *CustomerListModel) tea.Cmd { return m.SetStatusFilter(customers.StatusSuspended) },
			expect: []string{"2"},
		},
		{
			name:   "status all",
			apply:  func(m *CustomerListModel) tea.Cmd { return m.SetStatusFilter(customers.StatusAll) },
			expect: []string{"1", "2", "3"},
		},
		{
			name:   "product",
			apply:  func(m *CustomerListModel) tea.Cmd { return m.SetProductFilter(" prod-2 ") },
			expect: []string{"3"},
		},
		{
			name:   "search is case-insensitive",
			apply:  func(m *CustomerListModel) tea.Cmd { return m.SetSearchTerm("  ANN ") },
			expect: []string{"1"},
		},
		{
			name:   "search on license key",
			apply:  func(m *CustomerListModel) tea.Cmd { return m.SetSearchTerm("key-3") },
			expect: []string{"3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, newFakeService(rows...))
			drain(t, m, m.Init())
			drain(t, m, tt.apply(m))

			assert.Equal(t, tt.expect, rowIDs(m.Rows()))
			for _, r := range m.Rows() {
				assert.True(t, m.Filter().Matches(r), "row %s does not match the filter", r.ID)
			}
		})
	}
}

func TestCustomerList_SearchDebounceCoalesces(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Annabel"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())
	require.Len(t, svc.calls(), 1)

	cmds := []tea.Cmd{
		m.SetSearchTerm("a"),
		m.SetSearchTerm("an"),
		m.SetSearchTerm("annab"),
	}
	for _, cmd := range cmds {
		drain(t, m, cmd)
	}

	calls := svc.calls()
	require.Len(t, calls, 2, "three keystrokes inside the window must cause one fetch")
	assert.Equal(t, "annab", calls[1].Search)
	assert.Equal(t, []string{"2"}, rowIDs(m.Rows()))
}

func TestCustomerList_StaleResponseDropped(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	m.SetSearchTerm("a")
	_, fetchA := m.Update(searchDebounceMsg{gen: m.debounceGen})
	require.NotNil(t, fetchA)

	m.SetSearchTerm("b")
	_, fetchB := m.Update(searchDebounceMsg{gen: m.debounceGen})
	require.NotNil(t, fetchB)

	// Responses arrive out of order: "b" first, then the stale "a".
	msgB := fetchB()
	msgA := fetchA()
	m.Update(msgB)
	m.Update(msgA)

	assert.Equal(t, []string{"2"}, rowIDs(m.Rows()))
	assert.Equal(t, "b", m.Filter().Search)
}

func TestCustomerList_StatusChangeSupersedesPendingSearch(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	tick := m.SetSearchTerm("zzz")
	drain(t, m, m.SetStatusFilter(customers.StatusAll))
	before := len(svc.calls())

	drain(t, m, tick)

	assert.Len(t, svc.calls(), before, "superseded debounce tick must not fetch")
}

func TestCustomerList_SelectAllTriState(t *testing.T) {
	m := newTestModel(t, newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"), activeRow("3", "Cleo")))
	drain(t, m, m.Init())

	assert.Equal(t, customers.Unchecked, m.SelectAllState())
	assert.Contains(t, m.View(), "[ ] 0 of 3 selected")

	m.ToggleRow("2")
	assert.Equal(t, customers.Indeterminate, m.SelectAllState())
	assert.Contains(t, m.View(), "[-] 1 of 3 selected")

	m.ToggleRow("1")
	m.ToggleRow("3")
	assert.Equal(t, customers.Checked, m.SelectAllState())
	assert.Contains(t, m.View(), "[x] 3 of 3 selected")

	m.ToggleRow("3")
	assert.Equal(t, customers.Indeterminate, m.SelectAllState())
}

func TestCustomerList_SelectAllRoundTrip(t *testing.T) {
	m := newTestModel(t, newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob")))
	drain(t, m, m.Init())

	m.ToggleSelectAll(true)
	assert.Equal(t, []string{"1", "2"}, m.SelectedIDs())

	m.ToggleSelectAll(false)
	assert.Empty(t, m.SelectedIDs())
	assert.Equal(t, customers.Unchecked, m.SelectAllState())
}

func TestCustomerList_SelectionKeys(t *testing.T) {
	m := newTestModel(t, newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob")))
	drain(t, m, m.Init())

	press(t, m, " ")
	assert.Equal(t, []string{"1"}, m.SelectedIDs())

	press(t, m, "j", "x")
	assert.Equal(t, []string{"1", "2"}, m.SelectedIDs())

	press(t, m, "a")
	assert.Empty(t, m.SelectedIDs(), "select-all on a fully checked box unchecks it")

	press(t, m, "a")
	assert.Equal(t, []string{"1", "2"}, m.SelectedIDs())
}

func TestCustomerList_RenderResetsSelection(t *testing.T) {
	rows := []customers.Row{activeRow("1", "Ann"), activeRow("2", "Bob")}
	m := newTestModel(t, newFakeService(rows...))
	drain(t, m, m.Init())

	m.ToggleSelectAll(true)
	m.Render(rows)

	assert.Empty(t, m.SelectedIDs())
	assert.False(t, m.ToggleRow("missing"))
	assert.Empty(t, m.SelectedIDs())
}

func TestCustomerList_BulkDeleteSummary(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"), activeRow("3", "Cleo"))
	svc.deleteErrs["2"] = &api.BusinessError{StatusCode: 409, Message: "customer has active licenses"}
	m := newTestModel(t, svc)
	drain(t, m, m.Init())
	callsBefore := len(svc.calls())

	m.ToggleSelectAll(true)
	press(t, m, "d")
	assert.Equal(t, ViewStateConfirmDelete, m.State())
	assert.Empty(t, svc.deleted, "first confirmation must not delete")

	press(t, m, "y")
	assert.Equal(t, ViewStateConfirmDeleteFinal, m.State())
	assert.Empty(t, svc.deleted, "second confirmation prompt must not delete")

	press(t, m, "y")

	assert.Equal(t, []string{"1", "2", "3"}, svc.deleted)
	assert.Equal(t, "Deleted 2, 1 failed", m.Notice())
	assert.Equal(t, ViewStateList, m.State())
	assert.Empty(t, m.SelectedIDs())
	assert.Len(t, svc.calls(), callsBefore+1, "a bulk delete always re-fetches")
	assert.Equal(t, []string{"2"}, rowIDs(m.Rows()))
}

func TestCustomerList_BulkDeleteProgress(t *testing.T) {
	m := newTestModel(t, newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"), activeRow("3", "Cleo")))
	drain(t, m, m.Init())
	m.ToggleSelectAll(true)

	press(t, m, "d", "y")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)

	assert.Equal(t, ViewStateDeleting, m.State())
	assert.Equal(t, "Deleting 1/3...", m.DeleteProgress())
	assert.Contains(t, m.View(), "Deleting 1/3...")

	// Keys other than ctrl+c are ignored while deleting.
	_, ignored := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, ignored)
	assert.Equal(t, ViewStateDeleting, m.State())

	drain(t, m, cmd)
	assert.Equal(t, "Deleted 3", m.Notice())
}

func TestCustomerList_BulkDeleteCancelled(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{name: "cancel at first prompt", keys: []string{"d", "n"}},
		{name: "cancel at second prompt", keys: []string{"d", "y", keyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(activeRow("1", "Ann"))
			m := newTestModel(t, svc)
			drain(t, m, m.Init())
			m.ToggleSelectAll(true)

			press(t, m, tt.keys...)

			assert.Empty(t, svc.deleted)
			assert.Equal(t, ViewStateList, m.State())
			assert.Equal(t, "Delete cancelled.", m.Notice())
			assert.Equal(t, []string{"1"}, m.SelectedIDs())
		})
	}
}

func TestCustomerList_BulkDeleteRequiresSelection(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	press(t, m, "d")

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, "Select at least one customer to delete.", m.Notice())
	assert.Empty(t, svc.deleted)
}

func TestCustomerList_FetchDuringConfirmCancelsDelete(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want ViewState
	}{
		{name: "at first prompt", keys: []string{"d"}, want: ViewStateConfirmDelete},
		{name: "at second prompt", keys: []string{"d", "y"}, want: ViewStateConfirmDeleteFinal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"))
			m := newTestModel(t, svc)
			drain(t, m, m.Init())

			pending := m.SetStatusFilter(customers.StatusAll)
			m.ToggleSelectAll(true)
			press(t, m, tt.keys...)
			require.Equal(t, tt.want, m.State())

			drain(t, m, pending)

			assert.Equal(t, ViewStateList, m.State())
			assert.Empty(t, m.SelectedIDs())
			assert.Equal(t, "Selection changed; delete cancelled.", m.Notice())
			assert.NotContains(t, m.View(), "Delete 0 customers")

			press(t, m, "y", "y")
			assert.Empty(t, svc.deleted)
			assert.Equal(t, ViewStateList, m.State())
			assert.NotContains(t, m.Notice(), "Deleted")
		})
	}
}

func TestCustomerList_FinalConfirmWithEmptySelectionDeletesNothing(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())
	callsBefore := len(svc.calls())

	m.ToggleSelectAll(true)
	press(t, m, "d", "y")
	require.Equal(t, ViewStateConfirmDeleteFinal, m.State())

	m.ToggleSelectAll(false)
	press(t, m, "y")

	assert.Empty(t, svc.deleted)
	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, "Select at least one customer to delete.", m.Notice())
	assert.Len(t, svc.calls(), callsBefore, "an empty delete must not re-fetch")
}

func TestCustomerList_FetchErrorKeepsRowsAndRetries(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())
	m.ToggleRow("2")

	svc.listErr = &api.TransportError{Op: "GET /customers", Err: errors.New("connection refused")}
	drain(t, m, m.SetStatusFilter(customers.StatusSuspended))

	assert.Equal(t, PhaseError, m.Phase())
	require.Error(t, m.Err())
	assert.Equal(t, []string{"1", "2"}, rowIDs(m.Rows()))
	assert.Equal(t, []string{"2"}, m.SelectedIDs())
	assert.Contains(t, m.View(), "[r] retry")

	svc.listErr = nil
	press(t, m, "r")

	assert.Equal(t, PhaseIdle, m.Phase())
	assert.NoError(t, m.Err())
	assert.Empty(t, m.Rows(), "both rows are active, the filter asks for suspended")
}

func TestCustomerList_RetryIgnoredWithoutError(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	press(t, m, "r")

	assert.Len(t, svc.calls(), 1)
}

func TestCustomerList_UnauthorizedExits(t *testing.T) {
	svc := newFakeService()
	svc.listErr = fmt.Errorf("listing customers: %w", api.ErrUnauthorized)
	m := newTestModel(t, svc)

	drain(t, m, m.Init())

	assert.Equal(t, ViewStateQuitting, m.State())
	require.ErrorIs(t, m.ExitErr(), api.ErrUnauthorized)
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
	assert.Empty(t, m.View())
}

func TestCustomerList_QuitAbandonsPendingWork(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	tick := m.SetSearchTerm("zzz")
	fetch := m.SetStatusFilter(customers.StatusAll)

	_, quit := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)

	calls := len(svc.calls())
	drain(t, m, tick)
	assert.Len(t, svc.calls(), calls, "debounce tick after quit must not fetch")

	svc.rows = nil
	drain(t, m, fetch)
	assert.Equal(t, []string{"1"}, rowIDs(m.Rows()), "completion after quit must be ignored")
	assert.NoError(t, m.ExitErr())
}

func TestCustomerList_FilterKeys(t *testing.T) {
	suspended := activeRow("2", "Bob")
	suspended.Status = customers.StatusSuspended
	svc := newFakeService(activeRow("1", "Ann"), suspended)
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	press(t, m, "s")
	assert.Equal(t, customers.StatusSuspended, m.Filter().Status)
	assert.Equal(t, []string{"2"}, rowIDs(m.Rows()))

	press(t, m, "p")
	assert.Equal(t, ViewStateProductInput, m.State())
	press(t, m, "p", "r", "o", "d", "-", "9", keyEnter)
	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, "prod-9", m.Filter().ProductID)
	assert.Empty(t, m.Rows())

	press(t, m, "c")
	assert.Equal(t, customers.DefaultFilter(), m.Filter())
	assert.Equal(t, []string{"1"}, rowIDs(m.Rows()))
}

func TestCustomerList_ProductInputEscRestores(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	press(t, m, "p", "x", "y", keyEsc)

	assert.Equal(t, ViewStateList, m.State())
	assert.Empty(t, m.Filter().ProductID)
	assert.Len(t, svc.calls(), 1)
}

func TestCustomerList_SearchKeys(t *testing.T) {
	svc := newFakeService(activeRow("1", "Ann"), activeRow("2", "Bob"))
	m := newTestModel(t, svc)
	drain(t, m, m.Init())

	press(t, m, "/")
	assert.Equal(t, ViewStateSearch, m.State())

	press(t, m, "b", "o")
	assert.Equal(t, "bo", m.Filter().Search)
	assert.Equal(t, []string{"2"}, rowIDs(m.Rows()))

	// q is text while the search input has focus.
	press(t, m, "q")
	assert.Equal(t, ViewStateSearch, m.State())
	assert.Equal(t, "boq", m.Filter().Search)

	press(t, m, keyEnter)
	assert.Equal(t, ViewStateList, m.State())

	press(t, m, keyEsc)
	assert.Empty(t, m.Filter().Search)
	assert.Equal(t, []string{"1", "2"}, rowIDs(m.Rows()))
}

func TestCustomerList_WithBackend(t *testing.T) {
	const token = "secret-token"
	suspended := activeRow("2", "Bob")
	suspended.Status = customers.StatusSuspended
	backend := apitest.NewBackend(t, token, []customers.Row{activeRow("1", "Ann"), suspended, activeRow("3", "Cleo")})
	backend.FailDelete("3", "customer is locked")

	client, err := api.New(api.Options{
		BaseURL: backend.URL(),
		Tokens:  session.NewStaticToken(token),
		Timeout: 5 * time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	m := newTestModel(t, client)
	drain(t, m, m.Init())
	require.Equal(t, []string{"1", "3"}, rowIDs(m.Rows()))

	m.ToggleSelectAll(true)
	press(t, m, "d", "y", "y")

	assert.Equal(t, "Deleted 1, 1 failed", m.Notice())
	assert.Equal(t, []string{"3"}, rowIDs(m.Rows()))
	assert.Len(t, backend.Rows(), 2)
}

func TestCustomerList_WindowResize(t *testing.T) {
	m := newTestModel(t, newFakeService())
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	assert.Equal(t, 140, m.list.Width())
	assert.Equal(t, 40-chromeLines, m.list.Height())

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	assert.Equal(t, minListHeight, m.list.Height())
}

func TestCustomerList_PageHeightAddsChrome(t *testing.T) {
	tests := []struct {
		name string
		opts CustomerListOptions
		want int
	}{
		{name: "page height", opts: CustomerListOptions{PageHeight: 12}, want: 12},
		{name: "explicit height wins", opts: CustomerListOptions{PageHeight: 12, Height: 30}, want: 30 - chromeLines},
		{name: "defaults", opts: CustomerListOptions{}, want: defaultHeight - chromeLines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = zerolog.Nop()
			m := NewCustomerListModel(context.Background(), newFakeService(), tt.opts)
			assert.Equal(t, tt.want, m.list.Height())
		})
	}
}

func TestRenderCustomerTable(t *testing.T) {
	assert.Equal(t, EmptyPlaceholder+"\n", RenderCustomerTable(nil))

	out := RenderCustomerTable([]customers.Row{activeRow("1", "Ann")})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "1@example.com")
	assert.Contains(t, out, "KEY-1")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "é", truncate("éé", 1))
}
