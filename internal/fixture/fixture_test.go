package fixture

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wxlookup/internal/weather"
)

const sampleYAML = `
records:
  paris-01:
    location: Paris
    notes: Rooftop station
    weather:
      current:
        weather_descriptions: [Sunny]
        temperature: 20
        humidity: 50
        wind_speed: 10
  calm 02:
    location: Oslo
    weather:
      current:
        weather_descriptions: []
        temperature: 0
        humidity: 0
        wind_speed: 0
  partial:
    location: Lyon
    weather:
      current:
        weather_descriptions: [Rain]
        humidity: 80
        wind_speed: 5
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0600))
	return path
}

func TestLoadStore(t *testing.T) {
	store, err := LoadStore(writeFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"calm 02", "paris-01", "partial"}, store.IDs())

	p, ok := store.Get("paris-01")
	require.True(t, ok)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Paris", *p.Location)
	assert.Equal(t, []string{"Sunny"}, p.Weather.Current.WeatherDescriptions)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestLoadStore_Errors(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("records: [oops"), 0600))
	_, err = LoadStore(bad)
	assert.Error(t, err)
}

func TestStore_Put(t *testing.T) {
	store := NewStore(nil)
	store.Put("x", weather.Payload{Location: weather.String("X")})

	p, ok := store.Get("x")
	require.True(t, ok)
	assert.Equal(t, "X", *p.Location)
}

// TestHandler_WithClient drives the fixture through the real client.
func TestHandler_WithClient(t *testing.T) {
	store, err := LoadStore(writeFixture(t))
	require.NoError(t, err)
	srv := httptest.NewServer(NewHandler(store, zerolog.Nop()))
	defer srv.Close()

	client := weather.NewClient(srv.URL)
	ctx := context.Background()

	t.Run("complete record renders", func(t *testing.T) {
		p, err := client.Lookup(ctx, "paris-01")
		require.NoError(t, err)

		r := weather.Render(p)
		require.Equal(t, weather.RenderDisplay, r.Kind)
		assert.Equal(t, "Rooftop station", r.Display.Notes)
	})

	t.Run("identifier with space round-trips", func(t *testing.T) {
		p, err := client.Lookup(ctx, "calm 02")
		require.NoError(t, err)

		r := weather.Render(p)
		require.Equal(t, weather.RenderDisplay, r.Kind)
		assert.Equal(t, "0%", r.Display.Rows[2].Value)
	})

	t.Run("partial record is incomplete", func(t *testing.T) {
		p, err := client.Lookup(ctx, "partial")
		require.NoError(t, err)
		assert.Equal(t, weather.RenderIncomplete, weather.Render(p).Kind)
	})

	t.Run("identifiers are decoded exactly once", func(t *testing.T) {
		location := "Escaped"
		for _, id := range []string{"a%41", "a/b", "50%", "x/%2F"} {
			store.Put(id, weather.Payload{Location: &location})

			p, err := client.Lookup(ctx, id)
			require.NoError(t, err, id)
			require.NotNil(t, p.Location, id)
			assert.Equal(t, location, *p.Location, id)
		}

		_, err := client.Lookup(ctx, "aA")
		assert.True(t, weather.IsNotFound(err))
	})

	t.Run("unknown id returns detail", func(t *testing.T) {
		_, err := client.Lookup(ctx, "missing")
		require.Error(t, err)
		assert.True(t, weather.IsNotFound(err))
		assert.Equal(t, MessageNotFound, weather.Message(err))
	})
}

func TestHandler_ListAndHealth(t *testing.T) {
	store := NewStore(map[string]weather.Payload{"b": {}, "a": {}})
	srv := httptest.NewServer(NewHandler(store, zerolog.Nop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/weather")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ids":["a","b"]}`, string(body))

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, NewHandler(NewStore(nil), zerolog.Nop()), zerolog.Nop())
	}()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + addr + "/healthz")
		if getErr != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
