package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/wxlookup/internal/config"
	"github.com/rshade/wxlookup/internal/logging"
	"github.com/rshade/wxlookup/internal/weather"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the wxlookup CLI.
// Run without a subcommand it starts the interactive lookup UI; the lookup,
// config and fixture subcommands cover scripted use.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "wxlookup [id]",
		Short: "Look up stored weather records",
		Long: `wxlookup looks up a weather record by identifier on the weather service
and shows its location, conditions, temperature, humidity and wind speed.

Without a subcommand it opens an interactive terminal UI. An optional
identifier pre-fills the input.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          rootArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			if timeout < 0 {
				return fmt.Errorf("timeout must be >= 0, got %s", timeout)
			}

			result := setupLogging(cmd, cmd == cmd.Root())
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			return runInteractive(cmd, initial)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("endpoint", "",
		"weather service base URL (overrides config file and WXLOOKUP_ENDPOINT)")
	cmd.PersistentFlags().Duration("timeout", 0,
		"request timeout, e.g. 5s (0 = use config default)")
	cmd.AddCommand(NewLookupCmd(), newConfigCmd(), newFixtureCmd())

	return cmd
}

// rootArgs accepts at most one identifier. An argument that looks like a
// mistyped subcommand is reported as unknown rather than opening the UI.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			return fmt.Errorf("unknown command %q for %q\n\nDid you mean this?\n\t%s",
				args[0], cmd.CommandPath(), strings.Join(suggestions, "\n\t"))
		}
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

const rootCmdExample = `  # Open the interactive lookup UI
  wxlookup

  # Open the UI with an identifier pre-filled
  wxlookup paris-01

  # Look up a record once and print it
  wxlookup lookup paris-01

  # Print the raw payload as JSON
  wxlookup lookup paris-01 --output json

  # Point at a different service
  wxlookup --endpoint https://weather.example.com lookup paris-01

  # Serve fixture records locally for development
  wxlookup fixture serve --data records.yaml`

// newClient builds the weather client from config, environment and flags.
// Flags win over WXLOOKUP_ENDPOINT, which wins over the config file.
func newClient(cmd *cobra.Command) *weather.Client {
	cfg := config.GetGlobalConfig()

	baseURL := cfg.Service.BaseURL
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		baseURL = endpoint
	}

	timeout := cfg.Service.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	client := weather.NewClient(baseURL,
		weather.WithTimeout(timeout),
		weather.WithRequestID(logging.TraceIDFromContext),
	)
	logger.Debug().Stringer("client", client).Dur("timeout", timeout).Msg("weather client configured")
	return client
}

// commandContext returns the command context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
