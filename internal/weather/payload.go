// Package weather provides the weather record payload types, the HTTP client
// for the lookup service, and the renderer that turns a payload into display
// rows.
package weather

// Payload is the decoded body of a successful lookup response.
// Every field is optional; nil means the key was absent from the JSON.
type Payload struct {
	Location *string  `json:"location,omitempty" yaml:"location,omitempty"`
	Notes    *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Weather  *Weather `json:"weather,omitempty" yaml:"weather,omitempty"`
}

// Weather wraps the current conditions block.
type Weather struct {
	Current *Current `json:"current,omitempty" yaml:"current,omitempty"`
}

// Current holds the observed conditions. Numeric fields are pointers so that
// a reported zero can be told apart from a missing value.
type Current struct {
	WeatherDescriptions []string `json:"weather_descriptions" yaml:"weather_descriptions"`
	Temperature         *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Humidity            *float64 `json:"humidity,omitempty" yaml:"humidity,omitempty"`
	WindSpeed           *float64 `json:"wind_speed,omitempty" yaml:"wind_speed,omitempty"`
}

// hasStructure reports whether the payload carries a current conditions block.
func (p *Payload) hasStructure() bool {
	return p != nil && p.Weather != nil && p.Weather.Current != nil
}

// String returns a pointer to s. Handy for building payloads in code.
func String(s string) *string {
	return &s
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}
