package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("86")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorSubtle    = lipgloss.Color("240")
	ColorInfo      = lipgloss.Color("39")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorSpinner   = lipgloss.Color("205")
	ColorCursorFg  = lipgloss.Color("229")
	ColorCursorBg  = lipgloss.Color("57")
	ColorSuspended = lipgloss.Color("214")
	ColorRevoked   = lipgloss.Color("160")
)

//nolint:gochecknoglobals // lipgloss styles are shared package-level values.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorInfo)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCritical).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorSubtle).
				BorderBottom(true).
				Bold(true)

	TableCursorStyle = lipgloss.NewStyle().
				Foreground(ColorCursorFg).
				Background(ColorCursorBg)
)
