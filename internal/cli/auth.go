package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/session"
)

// newLoginCmd creates `login`, which stores a bearer token in the session file.
func newLoginCmd(a *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token for later commands",
		Long: `Stores the bearer token issued by the licensing backend in the session
file. The session expires after session.ttl; a 401 from the backend also
discards it. Without --token the token is read from the first line of stdin.`,
		Example: `  licensedesk login --token "$TOKEN"
  pass show licensing/admin | licensedesk login`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.sessionStore()
			if err != nil {
				return err
			}

			if token == "" {
				token, err = readTokenLine(cmd)
				if err != nil {
					return err
				}
			}
			if err = store.Save(token); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			entry, err := store.Load()
			if err != nil {
				return fmt.Errorf("reading back session: %w", err)
			}
			a.logger.Info().Ctx(cmd.Context()).
				Str("operation", "login").
				Time("expires_at", entry.ExpiresAt).
				Msg("session stored")
			cmd.Printf("Logged in. Session expires at %s\n", entry.ExpiresAt.Local().Format("2006-01-02 15:04 MST"))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token (read from stdin when omitted)")
	return cmd
}

// newLogoutCmd creates `logout`, which removes the session file.
func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.sessionStore()
			if err != nil {
				return err
			}
			if err = store.Discard(); err != nil {
				return err
			}
			a.logger.Info().Ctx(cmd.Context()).Str("operation", "logout").Msg("session discarded")
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func readTokenLine(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading token from stdin: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("%w: pass --token or pipe the token on stdin", session.ErrEmptyToken)
	}
	return token, nil
}
