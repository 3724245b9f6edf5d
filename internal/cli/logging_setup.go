package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/wxlookup/internal/config"
	"github.com/rshade/wxlookup/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
//
// The interactive UI owns the terminal, so it always logs to the configured
// file. Other commands switch to console output on stderr under --debug.
func setupLogging(cmd *cobra.Command, interactive bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		if interactive {
			// stderr belongs to the UI.
			result.Logger = zerolog.Nop()
		}
	} else if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if err := config.GlobalConfigError(); err != nil {
		logger.Warn().Err(err).Msg("config file could not be loaded, using defaults")
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}

	ctx := commandContext(cmd)
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
