package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/customers"
)

// newCustomersStatsCmd creates `customers stats`.
func newCustomersStatsCmd(a *app) *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count customers per status",
		Example: `  licensedesk customers stats
  licensedesk customers stats --product pro-annual`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := commandLogger(ctx)

			client, err := a.newClient(log)
			if err != nil {
				return err
			}
			counts, err := client.CountByStatus(ctx, productID)
			if err != nil {
				return withLoginHint(err)
			}

			out := cmd.OutOrStdout()
			total := 0
			fmt.Fprintf(out, "%-10s  %10s\n", "STATUS", "CUSTOMERS")
			for _, st := range customers.RowStatuses() {
				total += counts[st]
				fmt.Fprintf(out, "%-10s  %10s\n", st, customers.FormatCount(counts[st]))
			}
			fmt.Fprintf(out, "%-10s  %10s\n", "total", customers.FormatCount(total))

			log.Debug().Ctx(ctx).Int("total", total).Str("product_id", productID).Msg("customer stats")
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "restrict counts to one product")
	return cmd
}
