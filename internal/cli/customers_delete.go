package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/api"
	"github.com/rshade/licensedesk/internal/bulk"
	"github.com/rshade/licensedesk/internal/customers"
)

// newCustomersDeleteCmd creates `customers delete`: a non-interactive bulk
// delete with the same double confirmation as the list view.
func newCustomersDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete customers by id",
		Long: `Deletes the given customers, one request at a time.

Every id is attempted exactly once, even when earlier deletes fail. A single
summary line reports how many succeeded and failed. Two confirmations are
required unless --force is given. Answers are read from stdin, so scripts
can pipe "y" twice.`,
		Example: `  # Delete two customers, confirming interactively
  licensedesk customers delete 41 42

  # Delete without prompting
  licensedesk customers delete 41 42 --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomersDelete(cmd, a, args, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip both confirmations")
	return cmd
}

func runCustomersDelete(cmd *cobra.Command, a *app, args []string, force bool) error {
	ctx := cmd.Context()
	log := commandLogger(ctx)

	ids := uniqueIDs(args)
	if len(ids) == 0 {
		return api.ErrEmptyID
	}

	if !force {
		p := NewPrompter(cmd.OutOrStdout(), cmd.InOrStdin())
		res := p.ConfirmTwice(
			fmt.Sprintf("Delete %s customers (%s)?", customers.FormatCount(len(ids)), strings.Join(ids, ", ")),
			fmt.Sprintf("This cannot be undone. Really delete %s customers?", customers.FormatCount(len(ids))),
		)
		if !res.Accepted {
			log.Info().Ctx(ctx).Str("operation", "bulk_delete").Msg("delete cancelled by user")
			cmd.Println("Delete cancelled.")
			return nil
		}
	}

	client, err := a.newClient(log)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	runner := bulk.NewRunner[string]().WithProgressCallback(func(s bulk.ProgressSnapshot) {
		fmt.Fprintf(errOut, "Deleting %d/%d...\n", s.Processed, s.Total)
	})

	result, runErr := runner.Run(ctx, ids, func(ctx context.Context, id string) error {
		delErr := client.DeleteCustomer(ctx, id)
		if delErr != nil {
			log.Warn().Ctx(ctx).Err(delErr).Str("customer_id", id).Msg("customer delete failed")
		}
		return delErr
	})

	summary := customers.NewDeleteSummary(result)
	cmd.Println(summary.String())
	for _, f := range summary.Failures {
		cmd.PrintErrf("  %s: %v\n", f.ID, f.Err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "bulk_delete").
		Int("deleted", summary.Deleted).
		Int("failed", summary.Failed).
		Int("skipped", summary.Skipped).
		Msg("bulk delete finished")

	if runErr != nil {
		return fmt.Errorf("bulk delete interrupted: %w", runErr)
	}
	for _, f := range summary.Failures {
		if errors.Is(f.Err, api.ErrUnauthorized) {
			return withLoginHint(f.Err)
		}
	}
	if summary.Failed > 0 {
		return &ExitError{
			Code: ExitCodePartial,
			Err:  fmt.Errorf("%d of %d deletes failed", summary.Failed, summary.Attempted()),
		}
	}
	return nil
}

// uniqueIDs trims ids and drops blanks and repeats, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
