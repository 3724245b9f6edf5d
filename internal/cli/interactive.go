package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/wxlookup/internal/tui"
)

// ErrNotInteractive is returned when the UI is requested without a terminal.
var ErrNotInteractive = errors.New("interactive mode requires a terminal; use 'wxlookup lookup <id>' instead")

// termSize returns the size of the terminal behind f.
func termSize(f *os.File) (int, int, error) {
	return term.GetSize(int(f.Fd()))
}

// runInteractive starts the lookup UI with the identifier pre-filled.
func runInteractive(cmd *cobra.Command, initial string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotInteractive
	}

	ctx := commandContext(cmd)
	model := tui.NewLookupModel(ctx, newClient(cmd))
	if initial != "" {
		model.SetIdentifier(initial)
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
