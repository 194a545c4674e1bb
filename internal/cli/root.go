package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the licensedesk CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.Args[1:], os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with explicit args and env
// lookup for testability. A nil args slice leaves cobra's default (os.Args).
func NewRootCmdWithArgs(
	ver string,
	args []string,
	lookupEnv func(string) (string, bool),
) *cobra.Command {
	a := newApp(lookupEnv)

	cmd := &cobra.Command{
		Use:           "licensedesk",
		Short:         "Licensing admin console",
		Long:          "licensedesk: browse, filter and bulk-manage customers of a licensing backend",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			a.setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.cleanupLogging()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.flags.debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "",
		"config file (default ~/.licensedesk/config.yaml, or $LICENSEDESK_CONFIG)")
	cmd.PersistentFlags().StringVar(&a.flags.apiURL, "api-url", "",
		"licensing backend base URL (overrides config file and $LICENSEDESK_API_URL)")

	cmd.AddCommand(
		newCustomersCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newConfigCmd(a),
	)

	if args != nil {
		cmd.SetArgs(args)
	}
	return cmd
}

const rootCmdExample = `  # Browse active customers interactively
  licensedesk customers list

  # Print suspended customers of one product as a table
  licensedesk customers list --status suspended --product pro-annual --plain

  # Delete customers by id (asks twice)
  licensedesk customers delete 41 42 57

  # Count customers per status
  licensedesk customers stats

  # Store a bearer token for later commands
  licensedesk login --token "$TOKEN"

  # Write a default configuration file
  licensedesk config init`

// newCustomersCmd creates the customers command group.
func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "Customer list commands"}
	cmd.AddCommand(newCustomersListCmd(a), newCustomersDeleteCmd(a), newCustomersStatsCmd(a))
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a), newConfigValidateCmd(a))
	return cmd
}
