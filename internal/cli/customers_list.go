package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/cli/pagination"
	"github.com/rshade/licensedesk/internal/customers"
	"github.com/rshade/licensedesk/internal/tui"
)

type customersListFlags struct {
	status    string
	productID string
	search    string
	plain     bool
	sort      string
	paging    pagination.Params
}

// newCustomersListCmd creates `customers list`: the interactive view on a
// terminal, a plain table otherwise.
func newCustomersListCmd(a *app) *cobra.Command {
	var flags customersListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse customers",
		Long: `Shows the customer list of the licensing backend.

On a terminal this opens an interactive view: type / to search (debounced),
s to cycle the status filter, p to filter by product, space to select rows,
a to select all and d to delete the selection after two confirmations.

When stdout is not a terminal, or with --plain, the filtered list is printed
as a table instead. --sort and the paging flags only apply to that table.`,
		Example: `  # Interactive view, starting on suspended customers
  licensedesk customers list --status suspended

  # Second page of customers matching "acme", sorted by email
  licensedesk customers list --search acme --plain --sort email --page 2 --page-size 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCustomersList(cmd, a, flags)
		},
	}

	cmd.Flags().StringVar(&flags.status, "status", "", "initial status filter: active, suspended, revoked, all")
	cmd.Flags().StringVar(&flags.productID, "product", "", "initial product filter")
	cmd.Flags().StringVar(&flags.search, "search", "", "initial search term (name, email or license key)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print a table instead of the interactive view")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort the table by field[:asc|desc] (id, name, email, product, status)")
	cmd.Flags().IntVar(&flags.paging.Limit, "limit", 0, "maximum rows to print (0 = all)")
	cmd.Flags().IntVar(&flags.paging.Offset, "offset", 0, "rows to skip")
	cmd.Flags().IntVar(&flags.paging.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&flags.paging.PageSize, "page-size", 0, "rows per page")

	return cmd
}

func runCustomersList(cmd *cobra.Command, a *app, flags customersListFlags) error {
	ctx := cmd.Context()

	filter, err := ParseFilter(ctx, a.cfg.DefaultFilter(), flags.status, flags.productID, flags.search)
	if err != nil {
		return err
	}

	if !flags.plain && isTerminal(os.Stdout) && isTerminal(os.Stdin) {
		return runCustomersView(cmd, a, filter)
	}
	return printCustomersTable(cmd, a, filter, flags)
}

func runCustomersView(cmd *cobra.Command, a *app, filter customers.FilterState) error {
	ctx := cmd.Context()
	log := a.viewLogger(ctx)

	client, err := a.newClient(log)
	if err != nil {
		return err
	}

	err = tui.RunCustomerList(ctx, client, tui.CustomerListOptions{
		Filter:     filter,
		Debounce:   a.cfg.List.Debounce.Duration(),
		PageHeight: a.cfg.List.PageHeight,
		Logger:     log,
	})
	if warning := client.VersionWarning(); warning != "" {
		cmd.PrintErrln("Warning: " + warning)
	}
	return withLoginHint(err)
}

func printCustomersTable(cmd *cobra.Command, a *app, filter customers.FilterState, flags customersListFlags) error {
	ctx := cmd.Context()
	log := commandLogger(ctx)

	if err := flags.paging.Validate(); err != nil {
		return err
	}
	sorter := pagination.NewCustomerSorter()
	field, order, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return err
	}
	if err = sorter.Validate(field); err != nil {
		return err
	}

	client, err := a.newClient(log)
	if err != nil {
		return err
	}

	rows, err := client.ListCustomers(ctx, filter)
	if err != nil {
		return withLoginHint(fmt.Errorf("listing customers: %w", err))
	}
	if warning := client.VersionWarning(); warning != "" {
		cmd.PrintErrln("Warning: " + warning)
	}

	rows = sorter.Sort(filter.Apply(rows), field, order)
	total := len(rows)
	page := pagination.Apply(flags.paging, rows)

	log.Info().Ctx(ctx).
		Str("operation", "list_customers").
		Int("total", total).
		Int("printed", len(page)).
		Msg("customers listed")

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.RenderCustomerTable(page))
	if flags.paging.IsEnabled() && total > 0 {
		fmt.Fprintln(out, pagination.NewMeta(flags.paging, total).String())
	}
	return nil
}
