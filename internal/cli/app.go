package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/api"
	"github.com/rshade/licensedesk/internal/config"
	"github.com/rshade/licensedesk/internal/logging"
	"github.com/rshade/licensedesk/internal/session"
)

// annotationSkipConfig marks commands that must run even when the config
// file is unreadable, such as `config init --force`.
const annotationSkipConfig = "licensedesk/skip-config"

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	apiURL     string
	debug      bool
}

// app is the state one invocation builds in PersistentPreRunE and hands to
// its subcommands.
type app struct {
	lookupEnv func(string) (string, bool)
	flags     rootFlags

	cfg        *config.Config
	configPath string
	configSeen bool
	logResult  *logging.LogPathResult
	logger     zerolog.Logger
}

func newApp(lookupEnv func(string) (string, bool)) *app {
	return &app{lookupEnv: lookupEnv, logger: zerolog.Nop()}
}

// loadConfig resolves the effective configuration: file, then environment,
// then flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	path := a.flags.configPath
	if path == "" {
		path = config.Path(a.lookupEnv)
	}
	a.configPath = path

	skip := cmd.Annotations[annotationSkipConfig] != ""
	result := config.LoadResult{Config: config.New()}
	if !skip {
		var err error
		result, err = config.Load(path)
		if err != nil {
			return err
		}
	}
	a.configSeen = result.Found

	cfg := result.Config
	cfg.ApplyEnv(a.lookupEnv)
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = a.flags.apiURL
	}

	for _, key := range result.UnknownKeys {
		cmd.PrintErrf("Warning: ignoring unknown config key %q in %s\n", key, path)
	}

	if !skip {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	a.cfg = cfg
	return nil
}

// sessionStore returns the file-backed session store from config.
func (a *app) sessionStore() (*session.FileStore, error) {
	return session.NewFileStore(a.cfg.Session.File, a.cfg.Session.TTL.Duration())
}

// tokenSource prefers a token from the environment over the session file.
func (a *app) tokenSource() (session.TokenSource, error) {
	if a.cfg.API.Token != "" {
		return session.NewStaticToken(a.cfg.API.Token), nil
	}
	return a.sessionStore()
}

// newClient builds an API client that logs through log.
func (a *app) newClient(log zerolog.Logger) (*api.Client, error) {
	tokens, err := a.tokenSource()
	if err != nil {
		return nil, err
	}
	return api.New(api.Options{
		BaseURL:    a.cfg.API.BaseURL,
		Timeout:    a.cfg.API.Timeout.Duration(),
		Tokens:     tokens,
		MinVersion: a.cfg.API.MinVersion,
		Logger:     log,
	})
}

// viewLogger returns the logger for code running under the full-screen view.
// Only file logging is allowed there; anything else would tear the frame.
func (a *app) viewLogger(ctx context.Context) zerolog.Logger {
	if a.logResult != nil && a.logResult.UsingFile {
		return *logging.FromContext(ctx)
	}
	return zerolog.Nop()
}

// commandLogger returns the context logger tagged for the CLI component.
func commandLogger(ctx context.Context) zerolog.Logger {
	return logging.ComponentLogger(*logging.FromContext(ctx), "cli")
}
