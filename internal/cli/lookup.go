package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/wxlookup/internal/config"
	"github.com/rshade/wxlookup/internal/logging"
	"github.com/rshade/wxlookup/internal/tui"
	"github.com/rshade/wxlookup/internal/weather"
)

// Output formats for the lookup command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// LookupError reports a failed lookup. Its message is the text the
// interactive UI would show for the same failure.
type LookupError struct {
	ID  string
	Err error
}

func (e *LookupError) Error() string {
	return weather.Message(e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupCmd creates the "lookup" command that fetches one record and
// prints it.
func NewLookupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "lookup <id>",
		Short: "Look up one weather record and print it",
		Long: `Fetches the weather record with the given identifier and prints it.

The table format prints the location, optional notes and the weather,
temperature, humidity and wind speed rows. Records missing any of those
print "Incomplete weather data"; records without a current conditions block
print nothing. The json format prints the payload as returned.`,
		Example: `  wxlookup lookup paris-01
  wxlookup lookup paris-01 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output format: table or json (default from config output.default_format)")
	return cmd
}

func runLookup(cmd *cobra.Command, id, outputFlag string) error {
	format := config.GetOutputFormat(outputFlag)
	if format != outputTable && format != outputJSON {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	ctx := commandContext(cmd)
	client := newClient(cmd)

	payload, err := client.Lookup(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("identifier", id).Msg("lookup failed")
		return &LookupError{ID: id, Err: err}
	}

	w := cmd.OutOrStdout()
	if format == outputJSON {
		return renderJSON(w, payload)
	}
	return renderTable(w, payload, styledOutput(w))
}

func renderJSON(w io.Writer, payload *weather.Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	return nil
}

// renderTable prints the rendering of payload, styled when writing to a
// terminal.
func renderTable(w io.Writer, payload *weather.Payload, styled bool) error {
	r := weather.Render(payload)

	var out string
	switch {
	case styled:
		out = tui.RenderWeather(r, terminalWidth())
		if out != "" {
			out += "\n"
		}
	case r.Kind == weather.RenderIncomplete:
		out = r.Message() + "\n"
	case r.Kind == weather.RenderDisplay:
		out = r.Display.Text()
	}

	_, err := io.WriteString(w, out)
	return err
}

// styledOutput reports whether w is a terminal that can take styled output.
func styledOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// terminalWidth returns the stdout width, or 0 when unknown.
func terminalWidth() int {
	width, _, err := termSize(os.Stdout)
	if err != nil {
		return 0
	}
	return width
}
