package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewState is the interaction mode of the customer list view.
type ViewState int

const (
	// ViewStateList is the default mode: navigation and filter keys are live.
	ViewStateList ViewState = iota
	// ViewStateSearch routes keystrokes to the search input.
	ViewStateSearch
	// ViewStateProductInput routes keystrokes to the product filter input.
	ViewStateProductInput
	// ViewStateConfirmDelete waits for the first delete confirmation.
	ViewStateConfirmDelete
	// ViewStateConfirmDeleteFinal waits for the second delete confirmation.
	ViewStateConfirmDeleteFinal
	// ViewStateDeleting runs the sequential delete; input is ignored.
	ViewStateDeleting
	// ViewStateQuitting means the view has been left.
	ViewStateQuitting
)

// String returns a short name for logging.
func (s ViewState) String() string {
	switch s {
	case ViewStateList:
		return "list"
	case ViewStateSearch:
		return "search"
	case ViewStateProductInput:
		return "product"
	case ViewStateConfirmDelete:
		return "confirm"
	case ViewStateConfirmDeleteFinal:
		return "confirm_final"
	case ViewStateDeleting:
		return "deleting"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// RequestPhase is the state of the most recent list fetch.
type RequestPhase int

const (
	// PhaseIdle means the last fetch succeeded or none has been issued.
	PhaseIdle RequestPhase = iota
	// PhaseLoading means a fetch is in flight.
	PhaseLoading
	// PhaseError means the last fetch failed.
	PhaseError
)

// String returns a short name for logging.
func (p RequestPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Key strings handled outside the key map.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyYes   = "y"
	keyCtrlC = "ctrl+c"
)

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24

	// chromeLines is the number of lines around the list: title, filters,
	// selection header, status line, table header, prompt line and help.
	chromeLines = 9

	minListHeight = 3
)

// LoadingState wraps the spinner shown while a fetch is in flight.
type LoadingState struct {
	Spinner spinner.Model
	Message string
}

// NewLoadingState creates a loading indicator with the given message.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSpinner)
	return &LoadingState{Spinner: s, Message: message}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.Spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.Spinner, cmd = l.Spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner line.
func RenderLoading(l *LoadingState) string {
	return l.Spinner.View() + " " + InfoStyle.Render(l.Message)
}
