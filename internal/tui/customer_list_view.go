package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/licensedesk/internal/customers"
)

// Column widths for the customer table.
const (
	colWidthName    = 24
	colWidthEmail   = 30
	colWidthProduct = 14
	colWidthStatus  = 10
	colWidthLicense = 24
)

const anyProduct = "any"

// View renders the current frame.
func (m *CustomerListModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("CUSTOMERS"))
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	b.WriteString(m.renderSelectionHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(customerTableHeader()))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.renderPromptLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *CustomerListModel) renderFilterLine() string {
	product := m.filter.ProductID
	if product == "" {
		product = anyProduct
	}
	parts := []string{
		LabelStyle.Render("Status: ") + ValueStyle.Render(string(m.filter.Status)),
		LabelStyle.Render("Product: ") + ValueStyle.Render(product),
	}
	if m.filter.Search != "" {
		parts = append(parts, LabelStyle.Render("Search: ")+ValueStyle.Render(fmt.Sprintf("%q", m.filter.Search)))
	}
	return strings.Join(parts, "   ")
}

// renderSelectionHeader shows the tri-state select-all box and the count.
func (m *CustomerListModel) renderSelectionHeader() string {
	header := fmt.Sprintf("%s %s of %s selected",
		m.selection.State(),
		customers.FormatCount(m.selection.Count()),
		customers.FormatCount(m.selection.RenderedCount()))
	if m.selection.Count() > 0 {
		header += SubtleStyle.Render("   [d] delete selected")
	}
	return header
}

func (m *CustomerListModel) renderStatusLine() string {
	switch {
	case m.state == ViewStateDeleting:
		return WarningStyle.Render(m.DeleteProgress())
	case m.phase == PhaseLoading:
		return RenderLoading(m.loading)
	case m.phase == PhaseError:
		return ErrorBoxStyle.Render(
			CriticalStyle.Render("Could not load customers: ") + m.err.Error() +
				SubtleStyle.Render("   [r] retry"))
	case m.notice != "" && m.noticeIsError:
		return CriticalStyle.Render(m.notice)
	case m.notice != "":
		return OKStyle.Render(m.notice)
	default:
		return SubtleStyle.Render(customers.FormatCount(len(m.rows)) + " customers")
	}
}

func (m *CustomerListModel) renderPromptLine() string {
	switch m.state {
	case ViewStateSearch:
		return m.searchInput.View()
	case ViewStateProductInput:
		return m.productInput.View()
	case ViewStateConfirmDelete:
		return WarningStyle.Render(fmt.Sprintf("Delete %s customers? [y/N]",
			customers.FormatCount(m.selection.Count())))
	case ViewStateConfirmDeleteFinal:
		return CriticalStyle.Render(fmt.Sprintf("This cannot be undone. Really delete %s customers? [y/N]",
			customers.FormatCount(m.selection.Count())))
	default:
		return ""
	}
}

func (m *CustomerListModel) renderRow(row customers.Row, cursor bool) string {
	box := "[ ]"
	if m.selection.IsSelected(row.ID) {
		box = "[x]"
	}
	line := box + " " + formatCustomerRow(row)
	if cursor {
		return TableCursorStyle.Render(line)
	}
	if style, ok := statusStyle(row.Status); ok {
		return box + " " + formatCustomerColumns(row, style)
	}
	return line
}

func statusStyle(status customers.Status) (lipgloss.Style, bool) {
	switch status {
	case customers.StatusSuspended:
		return lipgloss.NewStyle().Foreground(ColorSuspended), true
	case customers.StatusRevoked:
		return lipgloss.NewStyle().Foreground(ColorRevoked), true
	default:
		return lipgloss.Style{}, false
	}
}

func customerTableHeader() string {
	return fmt.Sprintf("    %-*s  %-*s  %-*s  %-*s  %s",
		colWidthName, "Name",
		colWidthEmail, "Email",
		colWidthProduct, "Product",
		colWidthStatus, "Status",
		"License")
}

func formatCustomerRow(row customers.Row) string {
	return fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s",
		colWidthName, truncate(row.Name, colWidthName),
		colWidthEmail, truncate(row.Email, colWidthEmail),
		colWidthProduct, truncate(row.ProductID, colWidthProduct),
		colWidthStatus, string(row.Status),
		truncate(row.LicenseKey, colWidthLicense))
}

// formatCustomerColumns is formatCustomerRow with the status column colored.
// Padding is applied before styling so escape codes do not skew alignment.
func formatCustomerColumns(row customers.Row, status lipgloss.Style) string {
	return fmt.Sprintf("%-*s  %-*s  %-*s  %s  %s",
		colWidthName, truncate(row.Name, colWidthName),
		colWidthEmail, truncate(row.Email, colWidthEmail),
		colWidthProduct, truncate(row.ProductID, colWidthProduct),
		status.Render(fmt.Sprintf("%-*s", colWidthStatus, row.Status)),
		truncate(row.LicenseKey, colWidthLicense))
}

// RenderCustomerTable renders rows as a plain-text table for non-interactive
// output. Empty input yields the placeholder line.
func RenderCustomerTable(rows []customers.Row) string {
	if len(rows) == 0 {
		return EmptyPlaceholder + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-*s  %-*s  %-*s  %-*s  %s\n",
		colWidthProduct, "ID",
		colWidthName, "NAME",
		colWidthEmail, "EMAIL",
		colWidthProduct, "PRODUCT",
		colWidthStatus, "STATUS",
		"LICENSE")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s  %s\n", colWidthProduct, truncate(row.ID, colWidthProduct), formatCustomerRow(row))
	}
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
