package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/licensedesk/internal/logging"
)

// setupLogging configures logging from config, environment and the --debug
// flag, and stores a trace-tagged logger in the command context.
func (a *app) setupLogging(cmd *cobra.Command) {
	loggingCfg := a.cfg.Logging

	if a.flags.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if err := loggingCfg.EnsureLogDir(); err != nil {
		cmd.PrintErrf("Warning: could not create log directory: %v\n", err)
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	a.logResult = &result

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if result.UsingFile && result.Logger.GetLevel() <= zerolog.DebugLevel {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := logging.WithTrace(cmd.Context(), result.Logger)
	cmd.SetContext(ctx)
	a.logger = commandLogger(ctx)

	a.logger.Info().
		Str("command", cmd.CommandPath()).
		Str("config", a.configPath).
		Bool("config_found", a.configSeen).
		Msg("command started")
}

// cleanupLogging closes the log file handle.
func (a *app) cleanupLogging() error {
	if a.logResult == nil {
		return nil
	}
	return a.logResult.Close()
}
