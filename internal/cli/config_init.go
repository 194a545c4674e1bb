package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/config"
)

// newConfigInitCmd creates `config init`, which writes the default configuration.
func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
~/.licensedesk/config.yaml, or at --config / $LICENSEDESK_CONFIG when set.
The API token is never written to the file; use 'licensedesk login'.`,
		Example: `  # Create configuration
  licensedesk config init

  # Create configuration, overwriting existing
  licensedesk config init --force`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, a.configPath, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Save(config.New(), path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)

	created, err := config.EnsureStateIgnore(filepath.Dir(path))
	if err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	} else if created {
		cmd.Printf("Added .gitignore for session and log files in %s\n", filepath.Dir(path))
	}
	return nil
}
