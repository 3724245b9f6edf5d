package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wxlookup/internal/weather"
)

// Button labels.
const (
	ButtonLabelIdle    = "Lookup"
	ButtonLabelLoading = "Loading..."
)

// Card geometry.
const (
	cardMaxWidth = 48 // content columns
	cardChrome   = 6  // border plus horizontal padding
	cardPadding  = 4  // horizontal padding alone
)

// RenderButton renders the lookup button in its idle, loading, focused or
// disabled look.
func RenderButton(loading, disabled, focused bool) string {
	label := ButtonLabelIdle
	if loading {
		label = ButtonLabelLoading
	}

	switch {
	case disabled:
		return ButtonDisabledStyle.Render(label)
	case focused:
		return ButtonFocusedStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

// RenderError renders an inline error line.
func RenderError(msg string) string {
	if msg == "" {
		return ""
	}
	return ErrorStyle.Render(msg)
}

// RenderWeather renders the outcome of weather.Render.
// RenderNone yields "", RenderIncomplete the inline indicator, and
// RenderDisplay a bordered card with the heading, notes and rows.
func RenderWeather(r weather.Rendering, width int) string {
	switch r.Kind {
	case weather.RenderIncomplete:
		return ErrorStyle.Render(r.Message())
	case weather.RenderDisplay:
		return renderCard(r.Display, width)
	case weather.RenderNone:
		return ""
	default:
		return ""
	}
}

func renderCard(d *weather.Display, width int) string {
	if d == nil {
		return ""
	}

	inner := cardMaxWidth
	if width > 0 && width-cardChrome < inner {
		inner = max(width-cardChrome, 1)
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, HeadingStyle.Render(d.Location)))
	if d.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, NotesStyle.Render(d.Notes)))
	}
	sb.WriteString("\n")

	for _, row := range d.Rows {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(row.Label + ":"))
		sb.WriteString(" ")
		sb.WriteString(ValueStyle.Render(row.Value))
	}

	return CardStyle.Width(inner + cardPadding).Render(sb.String())
}

// RenderLookupHelp renders the keyboard shortcut help text.
func RenderLookupHelp() string {
	shortcuts := []string{
		"Enter: Lookup",
		"Tab: Switch focus",
		"Esc/Ctrl+C: Quit",
	}
	return HelpStyle.Render(strings.Join(shortcuts, " | "))
}
