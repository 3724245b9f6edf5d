package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) *Payload {
	t.Helper()
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func fullPayload() *Payload {
	return &Payload{
		Location: String("Paris"),
		Weather: &Weather{Current: &Current{
			WeatherDescriptions: []string{"Sunny"},
			Temperature:         Float(20),
			Humidity:            Float(50),
			WindSpeed:           Float(10),
		}},
	}
}

func TestRender_CompletePayload(t *testing.T) {
	p := decode(t, `{"location":"Paris","weather":{"current":{"weather_descriptions":["Sunny"],"temperature":20,"humidity":50,"wind_speed":10}}}`)

	r := Render(p)

	require.Equal(t, RenderDisplay, r.Kind)
	require.NotNil(t, r.Display)
	assert.Equal(t, "Paris", r.Display.Location)
	assert.Empty(t, r.Display.Notes)
	assert.Equal(t, []Row{
		{Label: "Weather", Value: "Sunny"},
		{Label: "Temperature", Value: "20°C"},
		{Label: "Humidity", Value: "50%"},
		{Label: "Wind Speed", Value: "10 km/h"},
	}, r.Display.Rows)

	text := r.Display.Text()
	for _, want := range []string{"Paris", "Sunny", "20°C", "50%", "10 km/h"} {
		assert.Contains(t, text, want)
	}
}

func TestRender_Incomplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Payload)
	}{
		{"missing temperature", func(p *Payload) { p.Weather.Current.Temperature = nil }},
		{"missing humidity", func(p *Payload) { p.Weather.Current.Humidity = nil }},
		{"missing wind speed", func(p *Payload) { p.Weather.Current.WindSpeed = nil }},
		{"missing descriptions", func(p *Payload) { p.Weather.Current.WeatherDescriptions = nil }},
		{"missing location", func(p *Payload) { p.Location = nil }},
		{"empty location", func(p *Payload) { p.Location = String("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fullPayload()
			tt.mutate(p)

			r := Render(p)

			assert.Equal(t, RenderIncomplete, r.Kind)
			assert.Nil(t, r.Display)
			assert.Equal(t, MessageIncomplete, r.Message())
		})
	}
}

func TestRender_TemperatureAbsentFromJSON(t *testing.T) {
	p := decode(t, `{"location":"Paris","weather":{"current":{"weather_descriptions":["Sunny"],"humidity":50,"wind_speed":10}}}`)

	assert.Equal(t, RenderIncomplete, Render(p).Kind)
}

func TestRender_LocationAbsentFromJSON(t *testing.T) {
	p := decode(t, `{"weather":{"current":{"weather_descriptions":["Sunny"],"temperature":20,"humidity":50,"wind_speed":10}}}`)

	assert.Equal(t, RenderIncomplete, Render(p).Kind)
}

func TestRender_NothingWithoutStructure(t *testing.T) {
	tests := []struct {
		name string
		p    *Payload
	}{
		{"nil payload", nil},
		{"empty object", decode(t, `{}`)},
		{"weather without current", decode(t, `{"location":"Paris","weather":{}}`)},
		{"null current", decode(t, `{"location":"Paris","weather":{"current":null}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Render(tt.p)

			assert.Equal(t, RenderNone, r.Kind)
			assert.Nil(t, r.Display)
			assert.Empty(t, r.Message())
		})
	}
}

func TestRender_ZeroValuesArePresent(t *testing.T) {
	p := decode(t, `{"location":"Oslo","weather":{"current":{"weather_descriptions":[],"temperature":0,"humidity":0,"wind_speed":0}}}`)

	r := Render(p)

	require.Equal(t, RenderDisplay, r.Kind)
	assert.Equal(t, []Row{
		{Label: "Weather", Value: ""},
		{Label: "Temperature", Value: "0°C"},
		{Label: "Humidity", Value: "0%"},
		{Label: "Wind Speed", Value: "0 km/h"},
	}, r.Display.Rows)
}

func TestRender_NotesAndDescriptions(t *testing.T) {
	p := fullPayload()
	p.Notes = String("Sensor recalibrated")
	p.Weather.Current.WeatherDescriptions = []string{"Partly cloudy", "Mist"}

	r := Render(p)

	require.Equal(t, RenderDisplay, r.Kind)
	assert.Equal(t, "Sensor recalibrated", r.Display.Notes)
	assert.Equal(t, "Partly cloudy, Mist", r.Display.Rows[0].Value)
	assert.Equal(t, "Paris\nSensor recalibrated\nWeather: Partly cloudy, Mist\nTemperature: 20°C\nHumidity: 50%\nWind Speed: 10 km/h\n",
		r.Display.Text())
}

func TestRender_EmptyNotesOmitted(t *testing.T) {
	p := fullPayload()
	p.Notes = String("")

	r := Render(p)

	require.Equal(t, RenderDisplay, r.Kind)
	assert.NotContains(t, r.Display.Text(), "\n\n")
}

func TestRenderKind_String(t *testing.T) {
	assert.Equal(t, "none", RenderNone.String())
	assert.Equal(t, "incomplete", RenderIncomplete.String())
	assert.Equal(t, "display", RenderDisplay.String())
	assert.Equal(t, "unknown", RenderKind(42).String())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{20, "20"},
		{20.5, "20.5"},
		{-3, "-3"},
		{-0.5, "-0.5"},
		{1234.5, "1,234.5"},
		{1000000, "1,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}
