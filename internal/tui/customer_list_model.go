package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/licensedesk/internal/api"
	"github.com/rshade/licensedesk/internal/bulk"
	"github.com/rshade/licensedesk/internal/customers"
	"github.com/rshade/licensedesk/internal/logging"
	listview "github.com/rshade/licensedesk/internal/tui/list"
)

// DefaultDebounce is the search inactivity window used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// EmptyPlaceholder is shown in place of the table when no row matches.
const EmptyPlaceholder = "No customers match the current filters."

// CustomerService is the backend surface the list view needs.
type CustomerService interface {
	ListCustomers(ctx context.Context, filter customers.FilterState) ([]customers.Row, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerListOptions configures a CustomerListModel.
type CustomerListOptions struct {
	// Filter is the state restored by ClearFilters and used for the first
	// fetch. The zero value means customers.DefaultFilter().
	Filter   customers.FilterState
	Debounce time.Duration
	Width    int
	Height   int
	// PageHeight is the number of table rows to show before the terminal
	// reports its size. It is ignored when Height is set.
	PageHeight int
	Logger     zerolog.Logger
}

type searchDebounceMsg struct {
	gen uint64
}

type customersFetchedMsg struct {
	seq    uint64
	filter customers.FilterState
	rows   []customers.Row
	err    error
}

type customerDeletedMsg struct {
	id  string
	err error
}

// CustomerListModel is the interactive customer list. It owns the filter
// state, the rendered rows, the bulk selection and the request lifecycle.
type CustomerListModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	svc    CustomerService
	log    zerolog.Logger

	state         ViewState
	phase         RequestPhase
	filter        customers.FilterState
	defaultFilter customers.FilterState
	rows          []customers.Row
	selection     *customers.Selection
	list          *listview.Model[customers.Row]
	err           error
	exitErr       error
	notice        string
	noticeIsError bool

	searchInput  textinput.Model
	productInput textinput.Model
	keys         customerListKeyMap
	help         help.Model
	loading      *LoadingState

	debounce    time.Duration
	debounceGen uint64
	requestSeq  uint64

	deletion *bulk.Sequence[string]

	width  int
	height int
}

// NewCustomerListModel creates the list view. The view owns a child of ctx
// that is cancelled when the view is left.
func NewCustomerListModel(ctx context.Context, svc CustomerService, opts CustomerListOptions) *CustomerListModel {
	ctx, cancel := context.WithCancel(ctx)

	filter := opts.Filter.Normalized()
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 && opts.PageHeight > 0 {
		height = opts.PageHeight + chromeLines
	}
	if height <= 0 {
		height = defaultHeight
	}

	search := textinput.New()
	search.Placeholder = "name, email or license key"
	search.Prompt = "Search: "
	search.CharLimit = 128
	search.SetValue(filter.Search)

	product := textinput.New()
	product.Placeholder = "product id, empty for any"
	product.Prompt = "Product: "
	product.CharLimit = 64

	m := &CustomerListModel{
		ctx:           ctx,
		cancel:        cancel,
		svc:           svc,
		log:           logging.ComponentLogger(opts.Logger, "tui"),
		state:         ViewStateList,
		filter:        filter,
		defaultFilter: filter,
		selection:     customers.NewSelection(nil),
		searchInput:   search,
		productInput:  product,
		help:          help.New(),
		loading:       NewLoadingState("Loading customers..."),
		debounce:      debounce,
		width:         width,
		height:        height,
	}
	m.list = listview.New(nil, m.listHeight(), width, m.renderRow)
	m.list.SetEmptyText(SubtleStyle.Render(EmptyPlaceholder))
	m.keys = newCustomerListKeyMap(m.list.KeyMap())
	return m
}

// Init starts the spinner and issues the first fetch.
func (m *CustomerListModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetch())
}

// Update dispatches messages to the handler for the current state.
func (m *CustomerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.width, m.listHeight())
		m.help.Width = m.width
		return m, nil
	case customersFetchedMsg:
		return m, m.handleFetched(msg)
	case searchDebounceMsg:
		return m, m.handleSearchDebounce(msg)
	case customerDeletedMsg:
		return m, m.handleDeleted(msg)
	case spinner.TickMsg:
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards cursor blink and similar messages to the input
// that currently has focus.
func (m *CustomerListModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state {
	case ViewStateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case ViewStateProductInput:
		m.productInput, cmd = m.productInput.Update(msg)
	}
	return cmd
}

// SetSearchTerm stores the trimmed term and schedules a fetch once input has
// been idle for the debounce window. Each call supersedes the pending one.
func (m *CustomerListModel) SetSearchTerm(term string) tea.Cmd {
	m.filter.Search = strings.TrimSpace(term)
	m.debounceGen++
	gen := m.debounceGen
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{gen: gen}
	})
}

// SetStatusFilter changes the status filter and fetches immediately.
func (m *CustomerListModel) SetStatusFilter(status customers.Status) tea.Cmd {
	m.filter.Status = status
	m.debounceGen++
	return m.fetch()
}

// SetProductFilter changes the product filter and fetches immediately. An
// empty id means any product.
func (m *CustomerListModel) SetProductFilter(productID string) tea.Cmd {
	m.filter.ProductID = strings.TrimSpace(productID)
	m.debounceGen++
	return m.fetch()
}

// ClearFilters restores the initial filter state and fetches.
func (m *CustomerListModel) ClearFilters() tea.Cmd {
	m.filter = m.defaultFilter
	m.searchInput.SetValue(m.filter.Search)
	m.productInput.SetValue(m.filter.ProductID)
	m.debounceGen++
	return m.fetch()
}

// Render replaces the displayed rows. The selection is reset to the new row
// set on every call, even when the rows are unchanged. A pending delete
// confirmation is cancelled since the rows it named are gone.
func (m *CustomerListModel) Render(rows []customers.Row) {
	if rows == nil {
		rows = []customers.Row{}
	}
	m.rows = rows
	m.selection.Reset(rows)
	m.list.SetItems(rows)

	if m.state == ViewStateConfirmDelete || m.state == ViewStateConfirmDeleteFinal {
		m.state = ViewStateList
		m.setNotice("Selection changed; delete cancelled.", true)
	}
}

// ToggleRow flips the selection of a rendered row. It reports whether the
// row is selected afterwards; IDs not in the current render are ignored.
func (m *CustomerListModel) ToggleRow(id string) bool {
	return m.selection.Toggle(id)
}

// ToggleSelectAll selects every rendered row, or none.
func (m *CustomerListModel) ToggleSelectAll(checked bool) {
	m.selection.SetAll(checked)
}

// BulkDelete asks for the first of two confirmations. Nothing is deleted
// until both have been given.
func (m *CustomerListModel) BulkDelete() tea.Cmd {
	if m.state != ViewStateList {
		return nil
	}
	if m.selection.Count() == 0 {
		m.setNotice("Select at least one customer to delete.", true)
		return nil
	}
	m.state = ViewStateConfirmDelete
	return nil
}

// Filter returns the current filter state.
func (m *CustomerListModel) Filter() customers.FilterState {
	return m.filter
}

// Rows returns the rendered rows.
func (m *CustomerListModel) Rows() []customers.Row {
	return m.rows
}

// SelectedIDs returns the selected IDs in render order.
func (m *CustomerListModel) SelectedIDs() []string {
	return m.selection.IDs()
}

// SelectAllState returns the select-all checkbox state.
func (m *CustomerListModel) SelectAllState() customers.CheckState {
	return m.selection.State()
}

// State returns the interaction mode.
func (m *CustomerListModel) State() ViewState {
	return m.state
}

// Phase returns the state of the most recent fetch.
func (m *CustomerListModel) Phase() RequestPhase {
	return m.phase
}

// Err returns the error of the last failed fetch.
func (m *CustomerListModel) Err() error {
	return m.err
}

// Notice returns the last notification, e.g. a bulk delete summary.
func (m *CustomerListModel) Notice() string {
	return m.notice
}

// ExitErr returns the error that made the view exit, if any.
func (m *CustomerListModel) ExitErr() error {
	return m.exitErr
}

func (m *CustomerListModel) fetch() tea.Cmd {
	m.requestSeq++
	seq := m.requestSeq
	filter := m.filter
	m.phase = PhaseLoading

	m.log.Debug().
		Str("operation", "list_customers").
		Uint64("seq", seq).
		Str("status", string(filter.Status)).
		Str("product_id", filter.ProductID).
		Str("search", filter.Search).
		Msg("fetching customers")

	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		rows, err := svc.ListCustomers(ctx, filter)
		return customersFetchedMsg{seq: seq, filter: filter, rows: rows, err: err}
	}
}

func (m *CustomerListModel) handleSearchDebounce(msg searchDebounceMsg) tea.Cmd {
	if m.state == ViewStateQuitting || msg.gen != m.debounceGen {
		return nil
	}
	return m.fetch()
}

func (m *CustomerListModel) handleFetched(msg customersFetchedMsg) tea.Cmd {
	if m.state == ViewStateQuitting {
		return nil
	}
	if msg.seq != m.requestSeq {
		m.log.Debug().
			Uint64("seq", msg.seq).
			Uint64("latest", m.requestSeq).
			Msg("dropping stale customer list response")
		return nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return m.exitWith(msg.err)
		}
		m.log.Warn().Err(msg.err).Str("operation", "list_customers").Msg("customer fetch failed")
		m.phase = PhaseError
		m.err = msg.err
		return nil
	}

	m.phase = PhaseIdle
	m.err = nil
	rows := msg.filter.Apply(msg.rows)
	m.log.Debug().Int("fetched", len(msg.rows)).Int("rendered", len(rows)).Msg("customers loaded")
	m.Render(rows)
	return nil
}

func (m *CustomerListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch m.state {
	case ViewStateSearch:
		return m.handleSearchKey(msg)
	case ViewStateProductInput:
		return m.handleProductKey(msg)
	case ViewStateConfirmDelete, ViewStateConfirmDeleteFinal:
		return m.handleConfirmKey(msg)
	case ViewStateDeleting, ViewStateQuitting:
		return nil
	default:
		return m.handleListKey(msg)
	}
}

//nolint:cyclop // One case per key binding.
func (m *CustomerListModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search):
		m.state = ViewStateSearch
		return m.searchInput.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		if m.searchInput.Value() == "" && m.filter.Search == "" {
			return nil
		}
		m.searchInput.SetValue("")
		return m.SetSearchTerm("")
	case key.Matches(msg, m.keys.Status):
		return m.SetStatusFilter(m.filter.Status.Next())
	case key.Matches(msg, m.keys.Product):
		m.state = ViewStateProductInput
		m.productInput.SetValue(m.filter.ProductID)
		m.productInput.CursorEnd()
		return m.productInput.Focus()
	case key.Matches(msg, m.keys.Clear):
		return m.ClearFilters()
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.list.CursorItem(); ok {
			m.ToggleRow(row.ID)
		}
		return nil
	case key.Matches(msg, m.keys.SelectAll):
		m.ToggleSelectAll(m.selection.State() != customers.Checked)
		return nil
	case key.Matches(msg, m.keys.Delete):
		return m.BulkDelete()
	case key.Matches(msg, m.keys.Retry):
		if m.phase == PhaseError {
			return m.fetch()
		}
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	_, cmd := m.list.Update(msg)
	return cmd
}

func (m *CustomerListModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.state = ViewStateList
		m.searchInput.Blur()
		return nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != before {
		return tea.Batch(cmd, m.SetSearchTerm(value))
	}
	return cmd
}

func (m *CustomerListModel) handleProductKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEnter:
		m.state = ViewStateList
		m.productInput.Blur()
		if strings.TrimSpace(m.productInput.Value()) == m.filter.ProductID {
			return nil
		}
		return m.SetProductFilter(m.productInput.Value())
	case keyEsc:
		m.state = ViewStateList
		m.productInput.Blur()
		m.productInput.SetValue(m.filter.ProductID)
		return nil
	}

	var cmd tea.Cmd
	m.productInput, cmd = m.productInput.Update(msg)
	return cmd
}

func (m *CustomerListModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() != keyYes {
		m.state = ViewStateList
		m.setNotice("Delete cancelled.", false)
		return nil
	}

	if m.state == ViewStateConfirmDelete {
		m.state = ViewStateConfirmDeleteFinal
		return nil
	}
	return m.startDeletion()
}

func (m *CustomerListModel) startDeletion() tea.Cmd {
	ids := m.selection.IDs()
	if len(ids) == 0 {
		m.state = ViewStateList
		m.setNotice("Select at least one customer to delete.", true)
		return nil
	}
	m.deletion = bulk.NewSequence(ids)
	m.state = ViewStateDeleting
	m.log.Info().Str("operation", "bulk_delete").Int("count", len(ids)).Msg("deleting customers")
	return m.nextDeletion()
}

func (m *CustomerListModel) nextDeletion() tea.Cmd {
	id, ok := m.deletion.Next()
	if !ok {
		return m.finishDeletion()
	}
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return customerDeletedMsg{id: id, err: svc.DeleteCustomer(ctx, id)}
	}
}

func (m *CustomerListModel) handleDeleted(msg customerDeletedMsg) tea.Cmd {
	if m.state != ViewStateDeleting || m.deletion == nil {
		return nil
	}
	if err := m.deletion.Record(msg.id, msg.err); err != nil {
		m.log.Warn().Err(err).Str("customer_id", msg.id).Msg("unexpected delete completion")
		return nil
	}
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Str("customer_id", msg.id).Msg("customer delete failed")
	}
	return m.nextDeletion()
}

func (m *CustomerListModel) finishDeletion() tea.Cmd {
	summary := customers.NewDeleteSummary(m.deletion.Result())
	m.deletion = nil
	m.selection.Clear()
	m.state = ViewStateList
	m.setNotice(summary.String(), summary.Failed > 0)

	m.log.Info().
		Str("operation", "bulk_delete").
		Int("deleted", summary.Deleted).
		Int("failed", summary.Failed).
		Msg("bulk delete finished")

	for _, f := range summary.Failures {
		if errors.Is(f.Err, api.ErrUnauthorized) {
			return m.exitWith(f.Err)
		}
	}
	return m.fetch()
}

// DeleteProgress describes a running bulk delete, e.g. "Deleting 2/5...".
func (m *CustomerListModel) DeleteProgress() string {
	if m.deletion == nil {
		return ""
	}
	return fmt.Sprintf("Deleting %s/%s...",
		customers.FormatCount(m.deletion.Position()),
		customers.FormatCount(m.deletion.Len()))
}

func (m *CustomerListModel) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeIsError = isError
}

func (m *CustomerListModel) exitWith(err error) tea.Cmd {
	m.exitErr = err
	return m.quit()
}

// quit leaves the view. Pending debounce ticks and in-flight requests are
// abandoned; their completions are ignored.
func (m *CustomerListModel) quit() tea.Cmd {
	m.state = ViewStateQuitting
	m.debounceGen++
	if m.deletion != nil {
		m.deletion.Abandon()
	}
	m.cancel()
	return tea.Quit
}

func (m *CustomerListModel) listHeight() int {
	return max(m.height-chromeLines, minListHeight)
}
