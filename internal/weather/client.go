package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the weather service address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout bounds a single lookup request.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failure body is read looking for "detail".
const maxErrorBody = 64 << 10

// RequestIDHeader carries the per-lookup trace ID to the service.
const RequestIDHeader = "X-Request-ID"

// Fetcher looks up a weather record by identifier.
type Fetcher interface {
	Lookup(ctx context.Context, id string) (*Payload, error)
}

// Client talks to the weather lookup service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	requestID  func(context.Context) string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRequestID sets the function used to derive the X-Request-ID header
// from the request context. An empty result omits the header.
func WithRequestID(fn func(context.Context) string) Option {
	return func(c *Client) {
		c.requestID = fn
	}
}

// NewClient creates a Client for the service at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody mirrors the failure response of the service.
type errorBody struct {
	Detail string `json:"detail"`
}

// Lookup issues GET {base}/weather/{id} and decodes the payload.
// Non-success responses yield *StatusError; anything that prevents a decoded
// response yields *TransportError.
func (c *Client) Lookup(ctx context.Context, id string) (*Payload, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + "/weather/" + url.PathEscape(id)
	log := zerolog.Ctx(ctx).With().Str("component", "weather").Str("endpoint", endpoint).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newTransportError("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.requestID != nil {
		if rid := c.requestID(ctx); rid != "" {
			req.Header.Set(RequestIDHeader, rid)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("weather lookup transport failure")
		return nil, &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("weather lookup response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body),
		}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newTransportError("decoding response: %w", err)
	}
	return &payload, nil
}

// readDetail extracts the "detail" string from a failure body.
// Bodies that are not JSON objects, or whose detail is not a string, give "".
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Detail
}

// String describes the client for log output.
func (c *Client) String() string {
	return fmt.Sprintf("weather.Client(%s)", c.baseURL)
}
