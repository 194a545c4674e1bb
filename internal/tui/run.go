package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunCustomerList runs the interactive customer list until the user quits.
// It returns the error that ended the view, such as api.ErrUnauthorized.
func RunCustomerList(ctx context.Context, svc CustomerService, opts CustomerListOptions) error {
	m := NewCustomerListModel(ctx, svc, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running customer list: %w", err)
	}
	if fm, ok := final.(*CustomerListModel); ok {
		return fm.ExitErr()
	}
	return nil
}
