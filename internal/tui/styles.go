package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorAccent  = lipgloss.Color("#2563eb")
	ColorHeading = lipgloss.Color("#b5cdfa")
	ColorLabel   = lipgloss.Color("#8fb4ff")
	ColorValue   = lipgloss.Color("#ffffff")
	ColorError   = lipgloss.Color("#f87171")
	ColorMuted   = lipgloss.Color("#8fa2c7")
	ColorBorder  = lipgloss.Color("#232c47")
	ColorSpinner = lipgloss.Color("#8fb4ff")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by all views.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)

	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)
	NotesStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorLabel)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorMuted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorValue).
			Background(ColorAccent).
			Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
				Underline(true)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Background(ColorBorder).
				Padding(0, 2)
)
