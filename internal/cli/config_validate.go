package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/customers"
)

// newConfigValidateCmd creates `config validate`. Loading already validates,
// so reaching RunE means the configuration is usable.
func newConfigValidateCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness:
backend URL, timeouts, API version constraint, list defaults, logging format
and session TTL.`,
		Example: `  licensedesk config validate
  licensedesk config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.configSeen {
				cmd.Printf("No configuration file at %s; defaults are valid\n", a.configPath)
			} else {
				cmd.Printf("Configuration is valid: %s\n", a.configPath)
			}
			if verbose {
				printVerboseDetails(cmd, a)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

// printVerboseDetails prints the effective settings.
func printVerboseDetails(cmd *cobra.Command, a *app) {
	cfg := a.cfg
	filter := cfg.DefaultFilter()
	product := filter.ProductID
	if product == "" {
		product = "any"
	}

	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Backend: %s (timeout %s)\n", cfg.API.BaseURL, cfg.API.Timeout)
	if cfg.API.MinVersion != "" {
		cmd.Printf("  Required API version: %s\n", cfg.API.MinVersion)
	}
	cmd.Printf("  Default filter: status=%s product=%s\n", filter.Status, product)
	cmd.Printf("  Search debounce: %s\n", cfg.List.Debounce)
	cmd.Printf("  Page height: %s rows\n", customers.FormatCount(cfg.List.PageHeight))
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Session file: %s (ttl %s)\n", cfg.Session.File, cfg.Session.TTL)
	if cfg.API.Token != "" {
		cmd.Println("  Token: from environment")
	}
}
