package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/wxlookup/internal/fixture"
	"github.com/rshade/wxlookup/internal/logging"
)

// defaultFixtureAddr matches the default service base URL.
const defaultFixtureAddr = "127.0.0.1:8000"

// newFixtureCmd creates the fixture command group.
func newFixtureCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "fixture", Short: "Local stand-in for the weather service"}
	cmd.AddCommand(NewFixtureServeCmd())
	return cmd
}

// NewFixtureServeCmd creates the "fixture serve" command that serves records
// from a YAML file on GET /weather/{id} until interrupted.
func NewFixtureServeCmd() *cobra.Command {
	var (
		addr string
		data string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve weather records from a YAML file",
		Long: `Serves weather records from a YAML file for local development.

The file maps identifiers to payloads under a top-level "records" key.
Unknown identifiers answer 404 with {"detail":"Weather data not found"}.`,
		Example: `  wxlookup fixture serve --data records.yaml
  wxlookup fixture serve --data records.yaml --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if data == "" {
				return errors.New("--data is required")
			}
			store, err := fixture.LoadStore(data)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fixtureLog := logging.ComponentLogger(*logging.FromContext(ctx), "fixture")
			cmd.Printf("Serving %d records on http://%s\n", len(store.IDs()), addr)

			if err := fixture.Serve(ctx, addr, fixture.NewHandler(store, fixtureLog), fixtureLog); err != nil {
				return fmt.Errorf("fixture server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultFixtureAddr, "listen address")
	cmd.Flags().StringVar(&data, "data", "", "YAML file of records (required)")
	return cmd
}
