package weather

import "strings"

// MessageIncomplete is shown in place of the display when required fields
// are missing from an otherwise well-formed payload.
const MessageIncomplete = "Incomplete weather data"

// descriptionSeparator joins multiple weather descriptions.
const descriptionSeparator = ", "

// RenderKind classifies the outcome of Render.
type RenderKind int

const (
	// RenderNone means nothing should be shown.
	RenderNone RenderKind = iota
	// RenderIncomplete means the incomplete-data indicator should be shown.
	RenderIncomplete
	// RenderDisplay means Display holds the rows to show.
	RenderDisplay
)

// String returns the kind name.
func (k RenderKind) String() string {
	switch k {
	case RenderNone:
		return "none"
	case RenderIncomplete:
		return "incomplete"
	case RenderDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// Row is one labelled line of the display.
type Row struct {
	Label string
	Value string
}

// Display is the renderable form of a complete payload.
type Display struct {
	Location string
	Notes    string
	Rows     []Row
}

// Rendering is the result of Render.
type Rendering struct {
	Kind    RenderKind
	Display *Display
}

// Message returns the indicator text for RenderIncomplete, or "".
func (r Rendering) Message() string {
	if r.Kind == RenderIncomplete {
		return MessageIncomplete
	}
	return ""
}

// Render maps a payload to what should be shown.
//
// A payload without a weather.current block renders nothing. A payload that
// has the block but lacks the location or any of the four condition fields
// renders the incomplete indicator. These two cases stay distinct.
func Render(p *Payload) Rendering {
	if !p.hasStructure() {
		return Rendering{Kind: RenderNone}
	}

	cur := p.Weather.Current
	if p.Location == nil || *p.Location == "" ||
		cur.WeatherDescriptions == nil ||
		cur.Temperature == nil ||
		cur.Humidity == nil ||
		cur.WindSpeed == nil {
		return Rendering{Kind: RenderIncomplete}
	}

	d := &Display{Location: *p.Location}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}

	if cur.WeatherDescriptions != nil {
		d.Rows = append(d.Rows, Row{
			Label: "Weather",
			Value: strings.Join(cur.WeatherDescriptions, descriptionSeparator),
		})
	}
	if cur.Temperature != nil {
		d.Rows = append(d.Rows, Row{Label: "Temperature", Value: FormatNumber(*cur.Temperature) + "°C"})
	}
	if cur.Humidity != nil {
		d.Rows = append(d.Rows, Row{Label: "Humidity", Value: FormatNumber(*cur.Humidity) + "%"})
	}
	if cur.WindSpeed != nil {
		d.Rows = append(d.Rows, Row{Label: "Wind Speed", Value: FormatNumber(*cur.WindSpeed) + " km/h"})
	}

	return Rendering{Kind: RenderDisplay, Display: d}
}

// Text renders the display as plain lines: the location, the notes line when
// present, then one "Label: value" line per row.
func (d *Display) Text() string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(d.Location)
	sb.WriteString("\n")
	if d.Notes != "" {
		sb.WriteString(d.Notes)
		sb.WriteString("\n")
	}
	for _, row := range d.Rows {
		sb.WriteString(row.Label)
		sb.WriteString(": ")
		sb.WriteString(row.Value)
		sb.WriteString("\n")
	}
	return sb.String()
}
