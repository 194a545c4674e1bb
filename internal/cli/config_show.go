package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/config"
)

// newConfigShowCmd creates `config show`, which prints the effective
// configuration (file, environment and flags applied) as YAML.
func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
