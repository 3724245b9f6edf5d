package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/wxlookup/internal/weather"
)

func TestRenderButton(t *testing.T) {
	assert.Contains(t, RenderButton(false, false, false), ButtonLabelIdle)
	assert.Contains(t, RenderButton(false, true, false), ButtonLabelIdle)
	assert.Contains(t, RenderButton(true, true, false), ButtonLabelLoading)
	assert.Contains(t, RenderButton(false, false, true), ButtonLabelIdle)
}

func TestRenderError(t *testing.T) {
	assert.Empty(t, RenderError(""))
	assert.Contains(t, RenderError("unknown id"), "unknown id")
}

func TestRenderWeather(t *testing.T) {
	t.Run("none renders empty", func(t *testing.T) {
		assert.Empty(t, RenderWeather(weather.Rendering{Kind: weather.RenderNone}, 80))
	})

	t.Run("incomplete renders indicator", func(t *testing.T) {
		out := RenderWeather(weather.Rendering{Kind: weather.RenderIncomplete}, 80)
		assert.Contains(t, out, weather.MessageIncomplete)
	})

	t.Run("display renders card", func(t *testing.T) {
		p := parisPayload()
		p.Notes = weather.String("Station 12")

		out := RenderWeather(weather.Render(p), 80)

		for _, want := range []string{"Paris", "Station 12", "Weather:", "Sunny", "Temperature:", "20°C", "Humidity:", "50%", "Wind Speed:", "10 km/h"} {
			assert.Contains(t, out, want)
		}
		assert.Less(t, strings.Index(out, "Paris"), strings.Index(out, "Sunny"))
	})

	t.Run("display without notes has no notes line", func(t *testing.T) {
		out := RenderWeather(weather.Render(parisPayload()), 80)
		assert.NotContains(t, out, "Station")
	})
}

func TestRenderLookupHelp(t *testing.T) {
	help := RenderLookupHelp()
	assert.Contains(t, help, "Enter")
	assert.Contains(t, help, "Tab")
}
